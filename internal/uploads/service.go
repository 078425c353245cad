package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/mgfilms/site-service/internal/config"
	uploadTypes "github.com/mgfilms/site-service/internal/types/uploads"
)

const DefaultFolder = "general"

var (
	ErrNoFile        = errors.New("no file provided")
	ErrTooManyFiles  = errors.New("too many files")
	ErrFileTooLarge  = errors.New("file exceeds the maximum upload size")
	ErrFileType      = errors.New("only image files (jpg, png, gif, webp, svg) and videos (mp4, webm) are allowed")
	ErrInvalidFolder = errors.New("invalid folder")
)

// allowedTypes maps a lower case extension to the MIME type stored with it.
var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".webm": "video/webm",
}

var folderSegment = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Service struct {
	backend    Backend
	maxSize    int64
	maxFiles   int
	presignTTL time.Duration
}

func NewService(backend Backend, cfg config.Upload) *Service {
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 20
	}
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{
		backend:    backend,
		maxSize:    cfg.MaxFileSize,
		maxFiles:   maxFiles,
		presignTTL: ttl,
	}
}

func (s *Service) Backend() Backend { return s.backend }

func (s *Service) MaxFiles() int { return s.maxFiles }

func (s *Service) MaxFileSize() int64 { return s.maxSize }

// SanitizeFolder returns a slash separated folder made of safe segments.
// Empty input gives DefaultFolder.
func SanitizeFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return DefaultFolder, nil
	}
	parts := strings.Split(folder, "/")
	for _, p := range parts {
		if !folderSegment.MatchString(p) {
			return "", fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
		}
	}
	return strings.Join(parts, "/"), nil
}

func newKey(folder, ext string) string {
	return path.Join(folder, uuid.NewString()+ext)
}

// detect sniffs the content and checks it against the type implied by the
// extension. The sniffed type or one of its parents must match.
func detect(r io.Reader, ext string) (string, error) {
	want, ok := allowedTypes[ext]
	if !ok {
		return "", ErrFileType
	}

	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(want) {
			return want, nil
		}
	}
	return "", fmt.Errorf("%w: got %s for %s", ErrFileType, mt.String(), ext)
}

// Store validates one file and writes it to the backend under folder.
func (s *Service) Store(ctx context.Context, name string, size int64, r io.ReadSeeker, folder string) (uploadTypes.File, error) {
	if size > s.maxSize {
		return uploadTypes.File{}, ErrFileTooLarge
	}

	folder, err := SanitizeFolder(folder)
	if err != nil {
		return uploadTypes.File{}, err
	}

	ext := strings.ToLower(filepath.Ext(name))
	contentType, err := detect(r, ext)
	if err != nil {
		return uploadTypes.File{}, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return uploadTypes.File{}, fmt.Errorf("rewind upload: %w", err)
	}

	key := newKey(folder, ext)
	if err := s.backend.Put(ctx, key, r, size, contentType); err != nil {
		return uploadTypes.File{}, err
	}

	slog.Info("File uploaded",
		slog.String("key", key),
		slog.Int64("size", size),
		slog.String("backend", s.backend.Name()))

	return uploadTypes.File{
		URL:          s.backend.PublicURL(key),
		Key:          key,
		Size:         size,
		ContentType:  contentType,
		OriginalName: name,
	}, nil
}

// Upload stores a multipart file.
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (uploadTypes.File, error) {
	if fh == nil {
		return uploadTypes.File{}, ErrNoFile
	}
	if fh.Size > s.maxSize {
		return uploadTypes.File{}, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return uploadTypes.File{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return s.Store(ctx, fh.Filename, fh.Size, f, folder)
}

// UploadMany validates every file before storing any of them.
func (s *Service) UploadMany(ctx context.Context, files []*multipart.FileHeader, folder string) ([]uploadTypes.File, error) {
	if len(files) == 0 {
		return nil, ErrNoFile
	}
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManyFiles, s.maxFiles)
	}
	for _, fh := range files {
		if fh.Size > s.maxSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
		}
		if _, ok := allowedTypes[strings.ToLower(filepath.Ext(fh.Filename))]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrFileType, fh.Filename)
		}
	}

	out := make([]uploadTypes.File, 0, len(files))
	for _, fh := range files {
		file, err := s.Upload(ctx, fh, folder)
		if err != nil {
			return out, err
		}
		out = append(out, file)
	}
	return out, nil
}

// extensionFor returns the preferred extension for an allowed content type.
func extensionFor(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/gif":
		return ".gif", true
	case "image/webp":
		return ".webp", true
	case "image/svg+xml":
		return ".svg", true
	case "video/mp4":
		return ".mp4", true
	case "video/webm":
		return ".webm", true
	}
	return "", false
}

// Presign returns a URL the browser can PUT the file to directly.
func (s *Service) Presign(ctx context.Context, req uploadTypes.PresignRequest) (uploadTypes.PresignResponse, error) {
	ext, ok := extensionFor(strings.ToLower(strings.TrimSpace(req.ContentType)))
	if !ok {
		return uploadTypes.PresignResponse{}, ErrFileType
	}
	folder, err := SanitizeFolder(req.Folder)
	if err != nil {
		return uploadTypes.PresignResponse{}, err
	}

	key := newKey(folder, ext)
	u, err := s.backend.PresignPut(ctx, key, req.ContentType, s.presignTTL)
	if err != nil {
		return uploadTypes.PresignResponse{}, err
	}

	return uploadTypes.PresignResponse{
		UploadURL: u,
		Key:       key,
		PublicURL: s.backend.PublicURL(key),
		ExpiresIn: int(s.presignTTL.Seconds()),
	}, nil
}

// Delete removes an object. Keys are checked like folders so a request
// cannot reach outside the upload space.
func (s *Service) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	dir, file := path.Split(key)
	if file == "" || strings.HasPrefix(file, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidFolder, key)
	}
	if dir != "" {
		if _, err := SanitizeFolder(dir); err != nil {
			return err
		}
	}
	if err := s.backend.Delete(ctx, key); err != nil {
		return err
	}
	slog.Info("File deleted", slog.String("key", key), slog.String("backend", s.backend.Name()))
	return nil
}
