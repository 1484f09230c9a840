package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/rgsuhas/fitness-buddy-sub001/pkg/storage"
	"github.com/rs/zerolog/log"
)

// Upload limits
const (
	MaxUploadSize = 10 << 20 // 10 MB
	MaxImageSide  = 4096     // pixels

	// DownloadLinkTTL bounds presigned download links for private buckets
	DownloadLinkTTL = 15 * time.Minute
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MediaUploadResult describes a stored media file
type MediaUploadResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// MediaService media upload business logic interface
type MediaService interface {
	UploadImage(ctx context.Context, userID string, file *multipart.FileHeader) (*MediaUploadResult, error)
	DownloadURL(ctx context.Context, key string) (string, error)
	DeleteMedia(ctx context.Context, key string) error
}

type mediaService struct {
	s3 *storage.S3Client
}

// NewMediaService creates a new MediaService
func NewMediaService(s3 *storage.S3Client) MediaService {
	return &mediaService{s3: s3}
}

// UploadImage validates and stores an image, returning its public URL.
// Validation decodes the image header so a renamed non-image is rejected
// regardless of its extension.
func (s *mediaService) UploadImage(ctx context.Context, userID string, file *multipart.FileHeader) (*MediaUploadResult, error) {
	if s.s3 == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}
	if file.Size > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %dMB upload limit", MaxUploadSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %dMB upload limit", MaxUploadSize>>20)
	}

	// webp is not in the stdlib decoder set; rely on the extension check
	if ext != ".webp" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("file is not a valid image")
		}
		if cfg.Width > MaxImageSide || cfg.Height > MaxImageSide {
			return nil, fmt.Errorf("image exceeds %dpx on a side", MaxImageSide)
		}
	}

	key := storage.GenerateKey("uploads/"+userID, file.Filename)
	result, err := s.s3.Upload(ctx, key, bytes.NewReader(data), contentType, int64(len(data)))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("key", key).Msg("Failed to upload media")
		return nil, err
	}

	return &MediaUploadResult{
		Key:  result.Key,
		URL:  result.URL,
		Size: int64(len(data)),
	}, nil
}

// DownloadURL returns a short-lived link for fetching a stored object out of
// a private bucket
func (s *mediaService) DownloadURL(ctx context.Context, key string) (string, error) {
	if s.s3 == nil {
		return "", fmt.Errorf("media storage is not configured")
	}
	return s.s3.PresignedURL(ctx, key, DownloadLinkTTL)
}

// DeleteMedia removes a stored object
func (s *mediaService) DeleteMedia(ctx context.Context, key string) error {
	if s.s3 == nil {
		return fmt.Errorf("media storage is not configured")
	}
	return s.s3.Delete(ctx, key)
}
