package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/quota"
	"file-manager-api/internal/infrastructure/jwt"
	quotaDTO "file-manager-api/internal/interface/api/rest/dto/quota"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

const roleAdmin = "admin"

type StorageController struct {
	quotaService ports.QuotaService
	logger       *zap.Logger
}

func NewStorageController(
	r *gin.Engine,
	quotaService ports.QuotaService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *StorageController {
	sc := &StorageController{
		quotaService: quotaService,
		logger:       logger,
	}

	authorized := r.Group("", middleware.AuthMiddleware(jwtService))
	authorized.GET(RouteStorage, sc.GetUsageHandler)
	authorized.GET(RouteStorageUser, sc.GetUserUsageHandler)
	authorized.PATCH(RouteStorageUser, sc.ExtendHandler)

	return sc
}

func (sc *StorageController) GetUsageHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	a, err := sc.quotaService.Usage(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get storage usage"},
		)
		sc.logger.Error("Usage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, quotaDTO.ToResponseAccount(a))
}

func (sc *StorageController) GetUserUsageHandler(c *gin.Context) {
	if c.GetString(middleware.CtxUserRole) != roleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid UUID"})
		return
	}

	a, err := sc.quotaService.Usage(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get storage usage"},
		)
		sc.logger.Error("Usage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, quotaDTO.ToResponseAccount(a))
}

func (sc *StorageController) ExtendHandler(c *gin.Context) {
	if c.GetString(middleware.CtxUserRole) != roleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid UUID"})
		return
	}

	var req quotaDTO.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.TotalBytes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_bytes must be positive"})
		return
	}
	if req.UsedBytes != nil && *req.UsedBytes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "used_bytes must be non-negative"})
		return
	}

	a, err := sc.quotaService.Extend(c.Request.Context(), userID, req.TotalBytes, req.UsedBytes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "storage account not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to extend storage quota"},
		)
		sc.logger.Error("Extend() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, quotaDTO.ToResponseAccount(a))
}
