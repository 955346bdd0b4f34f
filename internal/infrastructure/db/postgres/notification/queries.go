package notification

const notificationColumns = `uuid, sender_id, title, message, created_at`

const (
	InsertNotification = `
		INSERT INTO notifications (sender_id, title, message)
		VALUES ($1, $2, $3)
		RETURNING ` + notificationColumns + `
	`
	InsertRecipientLink = `
		INSERT INTO notification_recipients (notification_id, user_id, is_read)
		VALUES ($1, $2, false)
	`
	SelectUnreadByUser = `
		SELECT n.uuid, n.sender_id, n.title, n.message, n.created_at
		FROM notifications n
		JOIN notification_recipients nr ON nr.notification_id = n.uuid
		WHERE nr.user_id = $1 AND nr.is_read = false
		ORDER BY n.created_at DESC
	`
	MarkLinkRead = `
		UPDATE notification_recipients
		SET is_read = true
		WHERE notification_id = $1 AND user_id = $2
	`
	SelectNotificationByID = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE uuid = $1
	`
	SelectAllWithRecipients = `
		SELECT n.uuid, n.sender_id, n.title, n.message, n.created_at,
		       u.uuid, u.name, u.lastname, u.email, nr.is_read
		FROM notifications n
		JOIN notification_recipients nr ON nr.notification_id = n.uuid
		JOIN users u ON u.uuid = nr.user_id
		ORDER BY n.created_at DESC, n.uuid
	`
)
