package user

const (
	SelectUserByEmail = `
		SELECT uuid, email, password_hash, role, name, lastname, created_at
		FROM users
		WHERE email = $1
	`
	SelectUserIDs = `
		SELECT uuid
		FROM users
	`
)
