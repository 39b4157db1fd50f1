package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/validator"
)

// Paging bounds for the registration listing.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// RegistrationService handles class sign-ups.
type RegistrationService struct {
	repo      repository.RegistrationRepository
	validator *validator.Validator
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(repo repository.RegistrationRepository, v *validator.Validator) *RegistrationService {
	return &RegistrationService{repo: repo, validator: v}
}

// Register stores a public sign-up as a pending lead. The response echoes
// the form fields that have no column of their own.
func (s *RegistrationService) Register(ctx context.Context, in domain.RegistrationInput) (*domain.RegistrationView, error) {
	if err := s.validator.ValidateRegistration(&in); err != nil {
		return nil, err
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = domain.DefaultCountry
	}

	reg, err := s.repo.Create(ctx, domain.Registration{
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		Country:           country,
		PreferredLanguage: in.Language,
		PreferredDay:      in.Days,
		PreferredTime:     in.Timing,
		Status:            domain.RegistrationStatusPending,
		Notes:             in.CombinedNotes(),
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Class registration received",
		slog.Int64("registration_id", reg.ID),
		slog.String("language", reg.PreferredLanguage))

	view := reg.View()
	view.ClassType = in.ClassType
	view.ContactNumber = in.ContactNumber
	view.WhatsApp = ""
	if in.WhatsApp != nil {
		view.WhatsApp = *in.WhatsApp
	}
	view.AdditionalNotes = ""
	if in.AdditionalNotes != nil {
		view.AdditionalNotes = *in.AdditionalNotes
	}
	return &view, nil
}

// List returns one page of registrations and the total match count.
func (s *RegistrationService) List(ctx context.Context, session domain.Session, filter domain.RegistrationFilter) ([]domain.RegistrationView, int, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = DefaultPerPage
	}
	if filter.PerPage > MaxPerPage {
		filter.PerPage = MaxPerPage
	}

	regs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}

	views := make([]domain.RegistrationView, len(regs))
	for i, reg := range regs {
		views[i] = reg.View()
	}
	return views, total, nil
}

// UpdateStatus moves a registration to a new status.
func (s *RegistrationService) UpdateStatus(ctx context.Context, session domain.Session, id int64, update domain.RegistrationStatusUpdate) (*domain.RegistrationView, error) {
	if err := session.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateStatusUpdate(&update); err != nil {
		return nil, err
	}

	reg, err := s.repo.UpdateStatus(ctx, id, update.Status)
	if err != nil {
		return nil, err
	}
	view := reg.View()
	return &view, nil
}
