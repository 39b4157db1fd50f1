package repository

import (
	"context"

	"wqtc-api/internal/domain"
)

// VideoRepository defines methods for video data access.
type VideoRepository interface {
	Search(ctx context.Context, filter domain.VideoFilter) ([]domain.Video, error)
	GetByID(ctx context.Context, id int64) (*domain.Video, error)
	Create(ctx context.Context, in domain.VideoInput, createdBy string) (*domain.Video, error)
	Update(ctx context.Context, id int64, in domain.VideoInput) (*domain.Video, error)
	Delete(ctx context.Context, id int64) error
	InsertBatch(ctx context.Context, records []domain.ValidatedVideo, createdBy string) (int, error)
	StreamAll(ctx context.Context, callback func(domain.Video) error) error
}

// SurahRepository defines methods for chapter data access.
type SurahRepository interface {
	ListChapters(ctx context.Context) (domain.ChapterReference, error)
	List(ctx context.Context) ([]domain.Surah, error)
	GetByID(ctx context.Context, id int) (*domain.Surah, error)
	Create(ctx context.Context, s domain.Surah) (*domain.Surah, error)
	Delete(ctx context.Context, id int) error
}

// EBookRepository defines methods for e-book data access.
type EBookRepository interface {
	List(ctx context.Context, filter domain.EBookFilter) ([]domain.EBook, error)
	GetByID(ctx context.Context, id int64) (*domain.EBook, error)
	Create(ctx context.Context, in domain.EBookInput, createdBy string) (*domain.EBook, error)
	Update(ctx context.Context, id int64, patch domain.EBookPatch) (*domain.EBook, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrationRepository defines methods for class registration data access.
type RegistrationRepository interface {
	Create(ctx context.Context, reg domain.Registration) (*domain.Registration, error)
	List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Registration, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}
