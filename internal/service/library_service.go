package service

import (
	"context"
	"fmt"
	"log/slog"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/validator"
)

// LibraryService manages the video library.
type LibraryService struct {
	videoRepo repository.VideoRepository
	surahRepo repository.SurahRepository
	validator *validator.Validator
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(videoRepo repository.VideoRepository, surahRepo repository.SurahRepository, v *validator.Validator) *LibraryService {
	return &LibraryService{videoRepo: videoRepo, surahRepo: surahRepo, validator: v}
}

// Search lists videos matching filter.
func (s *LibraryService) Search(ctx context.Context, filter domain.VideoFilter) ([]domain.Video, error) {
	videos, err := s.videoRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}
	return videos, nil
}

// Create adds a single video.
func (s *LibraryService) Create(ctx context.Context, session domain.Session, in domain.VideoInput) (*domain.Video, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &in); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.Create(ctx, in, domain.DefaultCreatedBy)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Video created",
		slog.Int64("video_id", video.ID),
		slog.String("user", session.Email))
	return video, nil
}

// Update replaces a video's editable fields.
func (s *LibraryService) Update(ctx context.Context, session domain.Session, id int64, in domain.VideoInput) (*domain.Video, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &in); err != nil {
		return nil, err
	}
	return s.videoRepo.Update(ctx, id, in)
}

// Delete removes a video.
func (s *LibraryService) Delete(ctx context.Context, session domain.Session, id int64) error {
	if err := session.RequireAdmin(); err != nil {
		return err
	}
	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Video deleted",
		slog.Int64("video_id", id),
		slog.String("user", session.Email))
	return nil
}

// prepare validates in and fills surah_name from the chapter table when the
// caller left it out.
func (s *LibraryService) prepare(ctx context.Context, in *domain.VideoInput) error {
	if err := s.validator.ValidateVideoInput(in); err != nil {
		return err
	}
	if in.SurahName != nil && *in.SurahName != "" {
		return nil
	}

	surah, err := s.surahRepo.GetByID(ctx, in.SurahNo)
	if err != nil {
		return err
	}
	name := surah.Name
	in.SurahName = &name
	return nil
}
