package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/infrastructure/jwt"
	analyticsDTO "file-manager-api/internal/interface/api/rest/dto/analytics"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365
	defaultItemLimit = 10
	maxItemLimit     = 100
	defaultMinSizeMB = 10
	maxMinSizeMB     = 10240
)

type AnalyticsController struct {
	analyticsService ports.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsController(
	r *gin.Engine,
	analyticsService ports.AnalyticsService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AnalyticsController {
	anc := &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}

	authorized := r.Group("", middleware.AuthMiddleware(jwtService))
	authorized.GET(RouteAnalyticsDistribution, anc.TypeDistributionHandler)
	authorized.GET(RouteAnalyticsTrends, anc.UsageTrendHandler)
	authorized.GET(RouteAnalyticsRecent, anc.RecentActivityHandler)
	authorized.GET(RouteAnalyticsLargeFiles, anc.LargeFilesHandler)
	authorized.GET(RouteAnalyticsDashboard, anc.DashboardHandler)

	return anc
}

func (anc *AnalyticsController) TypeDistributionHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dist, err := anc.analyticsService.TypeDistribution(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get type distribution"},
		)
		anc.logger.Error("TypeDistribution() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, analyticsDTO.ToResponseDistribution(dist))
}

func (anc *AnalyticsController) UsageTrendHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	days, err := validator.ValidatePositiveInt(c.Query("days"), defaultTrendDays, maxTrendDays)
	if err != nil || days == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	buckets, err := anc.analyticsService.UsageTrend(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get usage trend"},
		)
		anc.logger.Error("UsageTrend() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, analyticsDTO.UsageTrend{
		Days:    days,
		Buckets: analyticsDTO.ToResponseTrend(buckets),
	})
}

func (anc *AnalyticsController) RecentActivityHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	limit, err := validator.ValidatePositiveInt(c.Query("limit"), defaultItemLimit, maxItemLimit)
	if err != nil || limit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	items, err := anc.analyticsService.RecentActivity(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get recent activity"},
		)
		anc.logger.Error("RecentActivity() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, analyticsDTO.RecentActivity{
		Data: analyticsDTO.ToResponseActivity(items),
	})
}

func (anc *AnalyticsController) LargeFilesHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	minSizeMB, err := validator.ValidatePositiveInt(c.Query("min_size_mb"), defaultMinSizeMB, maxMinSizeMB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_size_mb must be a non-negative integer"})
		return
	}
	limit, err := validator.ValidatePositiveInt(c.Query("limit"), defaultItemLimit, maxItemLimit)
	if err != nil || limit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	files, err := anc.analyticsService.LargeFiles(c.Request.Context(), userID, minSizeMB, limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get large files"},
		)
		anc.logger.Error("LargeFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, analyticsDTO.LargeFiles{
		Data: analyticsDTO.ToResponseLargeFiles(files),
	})
}

func (anc *AnalyticsController) DashboardHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	days, err := validator.ValidatePositiveInt(c.Query("days"), defaultTrendDays, maxTrendDays)
	if err != nil || days == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	d, err := anc.analyticsService.Dashboard(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get dashboard"},
		)
		anc.logger.Error("Dashboard() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, analyticsDTO.ToResponseDashboard(d))
}
