package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/storage"
	"wqtc-api/internal/validator"
)

var (
	errOnlyPDF    = errors.New("only PDF files allowed")
	errOnlyImages = errors.New("only image files allowed")
)

// EBookService manages e-books and their uploaded files.
type EBookService struct {
	repo      repository.EBookRepository
	files     FileStore
	validator *validator.Validator
}

// NewEBookService creates a new EBookService.
func NewEBookService(repo repository.EBookRepository, files FileStore, v *validator.Validator) *EBookService {
	return &EBookService{repo: repo, files: files, validator: v}
}

// List returns e-books ordered by creation date.
func (s *EBookService) List(ctx context.Context, filter domain.EBookFilter) ([]domain.EBook, error) {
	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ebooks: %w", err)
	}
	return books, nil
}

// Create adds an e-book whose files were uploaded beforehand.
func (s *EBookService) Create(ctx context.Context, session domain.Session, in domain.EBookInput) (*domain.EBook, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEBookInput(&in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in, domain.DefaultCreatedBy)
}

// Update applies a partial update.
func (s *EBookService) Update(ctx context.Context, session domain.Session, id int64, patch domain.EBookPatch) (*domain.EBook, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEBookPatch(&patch); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes an e-book.
func (s *EBookService) Delete(ctx context.Context, session domain.Session, id int64) error {
	if err := session.RequireAdmin(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// UploadPDF stores a PDF and returns its stored file name.
func (s *EBookService) UploadPDF(ctx context.Context, session domain.Session, filename, contentType string, r io.Reader) (string, error) {
	if err := session.RequireAdmin(); err != nil {
		return "", err
	}
	if mediaType(contentType) != "application/pdf" {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, errOnlyPDF)
	}
	return s.save(ctx, storage.DirPDFs, filename, r)
}

// UploadCover stores a cover image and returns its public path.
func (s *EBookService) UploadCover(ctx context.Context, session domain.Session, filename, contentType string, r io.Reader) (string, error) {
	if err := session.RequireAdmin(); err != nil {
		return "", err
	}
	if !strings.HasPrefix(mediaType(contentType), "image/") {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, errOnlyImages)
	}

	name, err := s.save(ctx, storage.DirCovers, filename, r)
	if err != nil {
		return "", err
	}
	return "/" + storage.DirCovers + "/" + name, nil
}

func (s *EBookService) save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	name, err := s.files.Save(ctx, dir, filename, r)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return "", fmt.Errorf("store upload: %w", err)
	}

	logger.FromContext(ctx).Info("File uploaded",
		slog.String("dir", dir),
		slog.String("stored_as", name))
	return name, nil
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}
