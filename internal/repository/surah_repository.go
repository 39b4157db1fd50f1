package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wqtc-api/internal/domain"
)

const surahColumns = `id, name, arabic_name, english_name, total_verses, revelation_place`

// PostgresSurahRepository implements SurahRepository using PostgreSQL.
type PostgresSurahRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSurahRepository creates a new PostgresSurahRepository.
func NewPostgresSurahRepository(pool *pgxpool.Pool) *PostgresSurahRepository {
	return &PostgresSurahRepository{pool: pool}
}

// ListChapters loads the number → name snapshot used to validate imports.
func (r *PostgresSurahRepository) ListChapters(ctx context.Context) (domain.ChapterReference, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM surahs`)
	if err != nil {
		return nil, fmt.Errorf("query chapters: %w", err)
	}
	defer rows.Close()

	chapters := make(domain.ChapterReference, 114)
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		chapters[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapters: %w", err)
	}
	return chapters, nil
}

// List returns all surahs in chapter order.
func (r *PostgresSurahRepository) List(ctx context.Context) ([]domain.Surah, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+surahColumns+` FROM surahs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query surahs: %w", err)
	}
	defer rows.Close()

	surahs := make([]domain.Surah, 0, 114)
	for rows.Next() {
		s, err := scanSurah(rows)
		if err != nil {
			return nil, err
		}
		surahs = append(surahs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate surahs: %w", err)
	}
	return surahs, nil
}

// GetByID returns domain.ErrNotFound when the surah does not exist.
func (r *PostgresSurahRepository) GetByID(ctx context.Context, id int) (*domain.Surah, error) {
	s, err := scanSurah(r.pool.QueryRow(ctx, `SELECT `+surahColumns+` FROM surahs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("surah %d: %w", id, domain.ErrNotFound)
	}
	return s, err
}

// Create inserts a surah under its chapter number. An existing id yields
// domain.ErrAlreadyExists.
func (r *PostgresSurahRepository) Create(ctx context.Context, s domain.Surah) (*domain.Surah, error) {
	created, err := scanSurah(r.pool.QueryRow(ctx, `
		INSERT INTO surahs (id, name, arabic_name, english_name, total_verses, revelation_place)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+surahColumns,
		s.ID, s.Name, s.ArabicName, s.EnglishName, s.TotalVerses, s.RevelationPlace))
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return nil, fmt.Errorf("surah with ID %d: %w", s.ID, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("insert surah: %w", err)
	}
	return created, nil
}

// Delete removes a surah. A surah that still has videos yields
// domain.ErrConflict.
func (r *PostgresSurahRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM surahs WHERE id = $1`, id)
	if err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("surah %d has videos: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete surah: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("surah %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanSurah(row pgx.Row) (*domain.Surah, error) {
	var s domain.Surah
	err := row.Scan(&s.ID, &s.Name, &s.ArabicName, &s.EnglishName, &s.TotalVerses, &s.RevelationPlace)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan surah: %w", err)
	}
	return &s, nil
}
