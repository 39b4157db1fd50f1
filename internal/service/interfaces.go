package service

import (
	"context"
	"io"

	"wqtc-api/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// FileStore persists uploaded files and returns the stored name.
type FileStore interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (string, error)
}

// ImportServiceInterface defines the bulk video import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// Preview parses and validates an upload without storing anything.
	Preview(ctx context.Context, filename string, data []byte) (*domain.ImportPreviewResult, error)
	// Commit stores previously validated records in one transaction.
	Commit(ctx context.Context, session domain.Session, records []domain.ValidatedVideo) (int, error)
}

// ExportServiceInterface defines template and export operations.
type ExportServiceInterface interface {
	// Template renders an empty bulk import sheet in the given format.
	Template(format string) (*ExportFile, error)
	// StreamVideos writes every video as import-compatible CSV.
	StreamVideos(ctx context.Context, writer StreamWriter) (int, error)
}

// LibraryServiceInterface defines video library operations.
type LibraryServiceInterface interface {
	Search(ctx context.Context, filter domain.VideoFilter) ([]domain.Video, error)
	Create(ctx context.Context, session domain.Session, in domain.VideoInput) (*domain.Video, error)
	Update(ctx context.Context, session domain.Session, id int64, in domain.VideoInput) (*domain.Video, error)
	Delete(ctx context.Context, session domain.Session, id int64) error
}

// SurahServiceInterface defines chapter operations.
type SurahServiceInterface interface {
	List(ctx context.Context) ([]domain.Surah, error)
	Create(ctx context.Context, session domain.Session, s domain.Surah) (*domain.Surah, error)
	Delete(ctx context.Context, session domain.Session, id int) error
}

// EBookServiceInterface defines e-book operations.
type EBookServiceInterface interface {
	List(ctx context.Context, filter domain.EBookFilter) ([]domain.EBook, error)
	Create(ctx context.Context, session domain.Session, in domain.EBookInput) (*domain.EBook, error)
	Update(ctx context.Context, session domain.Session, id int64, patch domain.EBookPatch) (*domain.EBook, error)
	Delete(ctx context.Context, session domain.Session, id int64) error
	UploadPDF(ctx context.Context, session domain.Session, filename, contentType string, r io.Reader) (string, error)
	UploadCover(ctx context.Context, session domain.Session, filename, contentType string, r io.Reader) (string, error)
}

// RegistrationServiceInterface defines class registration operations.
type RegistrationServiceInterface interface {
	Register(ctx context.Context, in domain.RegistrationInput) (*domain.RegistrationView, error)
	List(ctx context.Context, session domain.Session, filter domain.RegistrationFilter) ([]domain.RegistrationView, int, error)
	UpdateStatus(ctx context.Context, session domain.Session, id int64, update domain.RegistrationStatusUpdate) (*domain.RegistrationView, error)
}

// AuthServiceInterface defines login and session resolution.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
