package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageService stores uploaded post images on disk and hands back an opaque
// reference string. The reference, not the path, is what lands on the post.
type ImageService struct {
	baseDir string
	maxSize int64
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

func NewImageService(baseDir string, maxSize int64) (*ImageService, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "posts"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &ImageService{baseDir: baseDir, maxSize: maxSize}, nil
}

// Store validates and saves an uploaded image, returning its reference.
func (s *ImageService) Store(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", &ValidationError{Fields: map[string]string{
			"image": fmt.Sprintf("image too large, max size is %d MB", s.maxSize/1024/1024),
		}}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", &ValidationError{Fields: map[string]string{
			"image": "image type not allowed",
		}}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ref := filepath.ToSlash(filepath.Join("posts", uuid.NewString()+ext))

	dst, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(ref)))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

// BaseDir returns the directory references resolve against, for static
// serving.
func (s *ImageService) BaseDir() string {
	return s.baseDir
}
