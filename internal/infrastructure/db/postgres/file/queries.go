package file

const fileColumns = `uuid, user_id, file_name, file_type, size_bytes, storage_key, file_url, created_at, updated_at`

const (
	InsertFile = `
		INSERT INTO files (user_id, file_name, file_type, size_bytes, storage_key, file_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fileColumns + `
	`
	SelectFileByID = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE uuid = $1 AND user_id = $2
	`
	SelectFileSizeForUpdate = `
		SELECT size_bytes
		FROM files
		WHERE uuid = $1 AND user_id = $2
		FOR UPDATE
	`
	// Rename is metadata-only and keeps updated_at untouched.
	RenameFile = `
		UPDATE files
		SET file_name = $3
		WHERE uuid = $1 AND user_id = $2
		RETURNING ` + fileColumns + `
	`
	ReplaceFile = `
		UPDATE files
		SET size_bytes = $3,
		    storage_key = $4,
		    file_url = $5,
		    updated_at = now()
		WHERE uuid = $1 AND user_id = $2
		RETURNING ` + fileColumns + `
	`
	DeleteFile = `
		DELETE FROM files
		WHERE uuid = $1 AND user_id = $2
		RETURNING size_bytes
	`
	SelectFiles = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1 AND ($2::text IS NULL OR file_type = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	CountFiles = `
		SELECT COUNT(*)
		FROM files
		WHERE user_id = $1 AND ($2::text IS NULL OR file_type = $2)
	`

	// analytics reads
	CountFilesByType = `
		SELECT file_type, COUNT(*)
		FROM files
		WHERE user_id = $1
		GROUP BY file_type
	`
	SelectCreatedPerDay = `
		SELECT (created_at AT TIME ZONE 'utc')::date AS day, COUNT(*), COALESCE(SUM(size_bytes), 0)
		FROM files
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY day
		ORDER BY day
	`
	SelectRecentlyModified = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2
	`
	SelectFilesAtLeast = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE user_id = $1 AND size_bytes >= $2
		ORDER BY size_bytes DESC
		LIMIT $3
	`
)
