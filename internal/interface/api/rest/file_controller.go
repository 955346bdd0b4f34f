package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/quota"
	"file-manager-api/internal/infrastructure/jwt"
	fileDTO "file-manager-api/internal/interface/api/rest/dto/file"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

// 100MB
const maxSize = int64(100 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authorized := r.Group("", middleware.AuthMiddleware(jwtService))
	authorized.POST(RouteFiles, fc.CreateFileHandler)
	authorized.GET(RouteFiles, fc.GetFilesHandler)
	authorized.GET(RouteFile, fc.GetFileHandler)
	authorized.PATCH(RouteFileRename, fc.RenameFileHandler)
	authorized.PUT(RouteFileReplace, fc.ReplaceFileHandler)
	authorized.DELETE(RouteFile, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) CreateFileHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	var fileType domain.Type
	if raw := c.PostForm("file_type"); raw != "" {
		fileType, err = domain.ParseType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	f, err := fc.fileService.CreateFile(c.Request.Context(), userID, fh, fileType)
	if err != nil {
		fc.writeFileError(c, "CreateFile", err)
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ToResponseFile(f))
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	skip, limit, err := validator.ValidateSkipLimit(c.Query("skip"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := domain.ListFilter{Skip: skip, Limit: limit}
	if raw := c.Query("file_type"); raw != "" {
		t, err := domain.ParseType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Type = &t
	}

	files, total, err := fc.fileService.FindFiles(c.Request.Context(), userID, filter)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDTO.ListResponse{
		Data:  fileDTO.ToResponseFiles(files),
		Total: total,
	})
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	userID, fileID, ok := fc.identify(c)
	if !ok {
		return
	}

	f, err := fc.fileService.FindFile(c.Request.Context(), userID, fileID)
	if err != nil {
		fc.writeFileError(c, "FindFile", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(f))
}

func (fc *FileController) RenameFileHandler(c *gin.Context) {
	userID, fileID, ok := fc.identify(c)
	if !ok {
		return
	}

	var req struct {
		FileName string `json:"file_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	newName, err := validator.ValidateFileName(req.FileName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fc.fileService.RenameFile(c.Request.Context(), userID, fileID, newName)
	if err != nil {
		fc.writeFileError(c, "RenameFile", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(f))
}

func (fc *FileController) ReplaceFileHandler(c *gin.Context) {
	userID, fileID, ok := fc.identify(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.ReplaceFile(c.Request.Context(), userID, fileID, fh)
	if err != nil {
		fc.writeFileError(c, "ReplaceFile", err)
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToResponseFile(f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	userID, fileID, ok := fc.identify(c)
	if !ok {
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), userID, fileID); err != nil {
		fc.writeFileError(c, "DeleteFile", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) identify(c *gin.Context) (userID, fileID uuid.UUID, ok bool) {
	userID, hasUser := middleware.UserID(c)
	if !hasUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return userID, fileID, false
	}
	validID, id := validator.IsUUID(c.Param("file_id"))
	if !validID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid UUID"})
		return userID, fileID, false
	}

	return userID, id, true
}

func (fc *FileController) writeFileError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, domain.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": "a file with this name already exists"})
	case errors.Is(err, quota.ErrInsufficientSpace):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "storage quota exceeded"})
	case errors.Is(err, domain.ErrStorageFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "object storage unavailable"})
		fc.logger.Error(op+"() storage error", zap.Error(err))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		fc.logger.Error(op+"() error", zap.Error(err))
	}
}
