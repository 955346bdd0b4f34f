package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// files
	RouteFiles       = RouteApiV1 + "/files"
	RouteFile        = RouteFiles + "/:file_id"
	RouteFileRename  = RouteFile + "/rename"
	RouteFileReplace = RouteFile + "/replace"

	// storage quota
	RouteStorage     = RouteApiV1 + "/storage"
	RouteStorageUser = RouteStorage + "/:user_id"

	// analytics
	RouteAnalytics             = RouteApiV1 + "/analytics"
	RouteAnalyticsDistribution = RouteAnalytics + "/type-distribution"
	RouteAnalyticsTrends       = RouteAnalytics + "/usage-trends"
	RouteAnalyticsRecent       = RouteAnalytics + "/recent-activity"
	RouteAnalyticsLargeFiles   = RouteAnalytics + "/large-files"
	RouteAnalyticsDashboard    = RouteAnalytics + "/dashboard"

	// notifications
	RouteNotifications        = RouteApiV1 + "/notifications"
	RouteNotificationsUnread  = RouteNotifications + "/user/unread"
	RouteNotificationsAll     = RouteNotifications + "/all"
	RouteNotificationMarkRead = RouteNotifications + "/:notification_id/mark-as-read"
	RouteNotificationsWS      = RouteNotifications + "/ws"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
