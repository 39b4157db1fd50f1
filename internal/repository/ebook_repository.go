package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wqtc-api/internal/domain"
)

const ebookColumns = `id, title, filename, cover_image, description, pages, createdby, createddate`

// PostgresEBookRepository implements EBookRepository using PostgreSQL.
type PostgresEBookRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEBookRepository creates a new PostgresEBookRepository.
func NewPostgresEBookRepository(pool *pgxpool.Pool) *PostgresEBookRepository {
	return &PostgresEBookRepository{pool: pool}
}

// List returns e-books ordered by creation date.
func (r *PostgresEBookRepository) List(ctx context.Context, filter domain.EBookFilter) ([]domain.EBook, error) {
	dir := domain.SortDesc
	if filter.Sort == domain.SortAsc {
		dir = domain.SortAsc
	}
	query := fmt.Sprintf(`SELECT %s FROM ebooks ORDER BY createddate %s, id %s`, ebookColumns, dir, dir)

	var args []any
	if filter.Limit > 0 {
		query += ` LIMIT $1`
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ebooks: %w", err)
	}
	defer rows.Close()

	books := make([]domain.EBook, 0)
	for rows.Next() {
		b, err := scanEBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ebooks: %w", err)
	}
	return books, nil
}

// GetByID returns domain.ErrNotFound when the e-book does not exist.
func (r *PostgresEBookRepository) GetByID(ctx context.Context, id int64) (*domain.EBook, error) {
	b, err := scanEBook(r.pool.QueryRow(ctx, `SELECT `+ebookColumns+` FROM ebooks WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ebook %d: %w", id, domain.ErrNotFound)
	}
	return b, err
}

// Create inserts an e-book.
func (r *PostgresEBookRepository) Create(ctx context.Context, in domain.EBookInput, createdBy string) (*domain.EBook, error) {
	b, err := scanEBook(r.pool.QueryRow(ctx, `
		INSERT INTO ebooks (title, filename, cover_image, description, pages, createdby)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+ebookColumns,
		in.Title, in.Filename, in.CoverImage, in.Description, in.Pages, createdBy))
	if err != nil {
		return nil, fmt.Errorf("insert ebook: %w", err)
	}
	return b, nil
}

// Update applies the non-nil fields of patch.
func (r *PostgresEBookRepository) Update(ctx context.Context, id int64, patch domain.EBookPatch) (*domain.EBook, error) {
	b, err := scanEBook(r.pool.QueryRow(ctx, `
		UPDATE ebooks
		SET title = COALESCE($2, title),
			cover_image = COALESCE($3, cover_image),
			description = COALESCE($4, description),
			pages = COALESCE($5, pages)
		WHERE id = $1
		RETURNING `+ebookColumns,
		id, patch.Title, patch.CoverImage, patch.Description, patch.Pages))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("ebook %d: %w", id, domain.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("update ebook: %w", err)
	}
	return b, nil
}

// Delete removes an e-book row. Uploaded files are left in place.
func (r *PostgresEBookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ebooks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ebook: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ebook %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanEBook(row pgx.Row) (*domain.EBook, error) {
	var b domain.EBook
	err := row.Scan(&b.ID, &b.Title, &b.Filename, &b.CoverImage, &b.Description, &b.Pages, &b.CreatedBy, &b.CreatedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan ebook: %w", err)
	}
	return &b, nil
}
