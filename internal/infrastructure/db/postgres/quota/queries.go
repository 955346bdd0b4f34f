package quota

const (
	InsertAccountIfAbsent = `
		INSERT INTO storage_quotas (user_id, total_bytes, used_bytes)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO NOTHING
	`
	SelectAccount = `
		SELECT uuid, user_id, total_bytes, used_bytes, created_at, updated_at
		FROM storage_quotas
		WHERE user_id = $1
	`
	SelectUsageForUpdate = `
		SELECT total_bytes, used_bytes
		FROM storage_quotas
		WHERE user_id = $1
		FOR UPDATE
	`
	AddUsedBytes = `
		UPDATE storage_quotas
		SET used_bytes = used_bytes + $2,
		    updated_at = now()
		WHERE user_id = $1
	`
	SubtractUsedBytes = `
		UPDATE storage_quotas
		SET used_bytes = GREATEST(used_bytes - $2, 0),
		    updated_at = now()
		WHERE user_id = $1
	`
	UpdateAccountTotal = `
		UPDATE storage_quotas
		SET total_bytes = $2,
		    updated_at = now()
		WHERE user_id = $1
		RETURNING uuid, user_id, total_bytes, used_bytes, created_at, updated_at
	`
	UpdateAccountTotalAndUsed = `
		UPDATE storage_quotas
		SET total_bytes = $2,
		    used_bytes = $3,
		    updated_at = now()
		WHERE user_id = $1
		RETURNING uuid, user_id, total_bytes, used_bytes, created_at, updated_at
	`
)
