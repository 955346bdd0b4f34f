package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/infrastructure/mq"
	fileDTO "file-manager-api/internal/interface/api/rest/dto/file"
)

const maxBaseNameLen = 100

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

type FileService struct {
	s3             ports.S3Client
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewFileService(
	s3 ports.S3Client,
	fileRepository domain.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.FileService {
	return &FileService{
		s3:             s3,
		fileRepository: fileRepository,
		mq:             rbMQ,
		mCounter:       mCounter,
		logger:         logger,
	}
}

// CreateFile uploads the object first, then commits metadata and the
// quota reservation in one transaction. A crash between the two leaves an
// orphaned object, which is cheap to garbage-collect; the reverse order
// would leave a quota-charged record with no backing object.
func (fs *FileService) CreateFile(
	ctx context.Context,
	userID uuid.UUID,
	in *multipart.FileHeader,
	fileType domain.Type,
) (*domain.FileRecord, error) {
	name := sanitizeFileName(in.Filename)
	key := storageKey(userID, name)
	if fileType == "" {
		fileType = domain.TypeFromName(name)
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	url, err := fs.s3.PutObject(ctx, key, f, in.Header.Get("Content-Type"), in.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	rec := &domain.FileRecord{
		UserID:     userID,
		FileName:   name,
		FileType:   fileType,
		SizeBytes:  in.Size,
		StorageKey: key,
		FileURL:    url,
	}

	out, err := fs.fileRepository.Create(ctx, rec)
	if err != nil {
		fs.cleanupObject(ctx, key)
		return nil, err
	}

	fs.publishEvent(mq.ActionFileCreated, out)
	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

func (fs *FileService) RenameFile(ctx context.Context, userID, fileID uuid.UUID, newName string) (*domain.FileRecord, error) {
	return fs.fileRepository.Rename(ctx, userID, fileID, sanitizeFileName(newName))
}

// ReplaceFile uploads the new content under a fresh key, then applies the
// size delta and metadata swap transactionally. On a quota reject the old
// locator stays authoritative and the new object is removed best-effort.
func (fs *FileService) ReplaceFile(
	ctx context.Context,
	userID, fileID uuid.UUID,
	in *multipart.FileHeader,
) (*domain.FileRecord, error) {
	if _, err := fs.fileRepository.Fetch(ctx, userID, fileID); err != nil {
		return nil, err
	}

	key := storageKey(userID, sanitizeFileName(in.Filename))
	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	url, err := fs.s3.PutObject(ctx, key, f, in.Header.Get("Content-Type"), in.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	out, err := fs.fileRepository.Replace(ctx, userID, fileID, in.Size, key, url)
	if err != nil {
		fs.cleanupObject(ctx, key)
		return nil, err
	}

	fs.publishEvent(mq.ActionFileReplaced, out)
	fs.mCounter.WithLabelValues("files_replaced_total").Inc()

	return out, nil
}

// DeleteFile removes the backing object first; if that fails the whole
// operation fails and metadata/quota are untouched.
func (fs *FileService) DeleteFile(ctx context.Context, userID, fileID uuid.UUID) error {
	rec, err := fs.fileRepository.Fetch(ctx, userID, fileID)
	if err != nil {
		return err
	}

	if err = fs.s3.DeleteObject(ctx, rec.StorageKey); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	if err = fs.fileRepository.Delete(ctx, userID, fileID); err != nil {
		return err
	}

	fs.publishEvent(mq.ActionFileDeleted, rec)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) FindFile(ctx context.Context, userID, fileID uuid.UUID) (*domain.FileRecord, error) {
	return fs.fileRepository.Fetch(ctx, userID, fileID)
}

func (fs *FileService) FindFiles(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (domain.FileRecords, int, error) {
	return fs.fileRepository.FetchList(ctx, userID, filter)
}

func (fs *FileService) publishEvent(action string, rec *domain.FileRecord) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  rec.UserID.String(),
		Payload: fileDTO.ToResponseFile(rec),
	}
}

func (fs *FileService) cleanupObject(ctx context.Context, key string) {
	if err := fs.s3.DeleteObject(ctx, key); err != nil {
		// an orphaned object is recoverable; log and move on
		fs.logger.Warn("orphaned object left in storage",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// storageKey derives a collision-resistant locator: the user id plus a
// fresh random segment keeps identical filenames from ever sharing a key.
func storageKey(userID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", userID, uuid.New(), fileName)
}

// DetermineFileType resolves the upload's enum type: an explicit form
// value wins, otherwise the filename extension decides.
func DetermineFileType(explicit, filename string) domain.Type {
	if explicit != "" {
		if t, err := domain.ParseType(explicit); err == nil {
			return t
		}
	}
	return domain.TypeFromName(filename)
}

// sanitizeFileName makes the file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' and '_', dot/space -> '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
