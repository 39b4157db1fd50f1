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

// SurahService manages the chapter reference table.
type SurahService struct {
	repo      repository.SurahRepository
	validator *validator.Validator
}

// NewSurahService creates a new SurahService.
func NewSurahService(repo repository.SurahRepository, v *validator.Validator) *SurahService {
	return &SurahService{repo: repo, validator: v}
}

// List returns all surahs in chapter order.
func (s *SurahService) List(ctx context.Context) ([]domain.Surah, error) {
	surahs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surahs: %w", err)
	}
	return surahs, nil
}

// Create adds a surah under its chapter number.
func (s *SurahService) Create(ctx context.Context, session domain.Session, surah domain.Surah) (*domain.Surah, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSurah(&surah); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, surah)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Surah created",
		slog.Int("surah_id", created.ID),
		slog.String("user", session.Email))
	return created, nil
}

// Delete removes a surah.
func (s *SurahService) Delete(ctx context.Context, session domain.Session, id int) error {
	if err := session.RequireAdmin(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
