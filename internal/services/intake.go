package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// allowedExtensions mirrors the file types the analyzer backend accepts.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// IntakeService validates and reads a single staged upload before any
// network call is made. Violations are local validation errors.
type IntakeService interface {
	ReadFile(file *multipart.FileHeader) (string, []byte, error)
}

type intakeService struct {
	maxFileSize int64
}

func NewIntakeService(maxFileSize int64) IntakeService {
	return &intakeService{
		maxFileSize: maxFileSize,
	}
}

// ReadFile implements IntakeService. It enforces the extension
// allow-list and the size cap, then returns the filename and content.
func (s *intakeService) ReadFile(file *multipart.FileHeader) (string, []byte, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", nil, fmt.Errorf("%w: unsupported file type %q, allowed: pdf, docx, txt", ErrValidation, ext)
	}

	if file.Size > s.maxFileSize {
		return "", nil, fmt.Errorf("%w: file too large, limit is %d bytes", ErrValidation, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Cap the read as well in case the reported size lies.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return "", nil, fmt.Errorf("%w: file too large, limit is %d bytes", ErrValidation, s.maxFileSize)
	}

	return file.Filename, data, nil
}
