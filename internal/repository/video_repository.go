package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
)

const videoColumns = `id, title, video_url, surah_no, surah_name, starting_ayah, ending_ayah,
	keywords, created_by, created_date`

// batchColumns are the columns written by InsertBatch; id and created_date
// come from column defaults.
var batchColumns = []string{
	"title", "video_url", "surah_no", "surah_name", "starting_ayah", "ending_ayah", "keywords", "created_by",
}

// PostgresVideoRepository implements VideoRepository using PostgreSQL.
type PostgresVideoRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVideoRepository creates a new PostgresVideoRepository.
func NewPostgresVideoRepository(pool *pgxpool.Pool) *PostgresVideoRepository {
	return &PostgresVideoRepository{pool: pool}
}

// Search lists videos matching the filter.
func (r *PostgresVideoRepository) Search(ctx context.Context, filter domain.VideoFilter) ([]domain.Video, error) {
	query, args := buildSearchQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return videos, nil
}

func buildSearchQuery(filter domain.VideoFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.SurahNo != nil {
		args = append(args, *filter.SurahNo)
		conds = append(conds, fmt.Sprintf("surah_no = $%d", len(args)))
	}

	if filter.Verse != nil {
		clause, verseArgs := filter.Verse.SQL("starting_ayah", "ending_ayah", len(args)+1)
		conds = append(conds, clause)
		args = append(args, verseArgs...)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR surah_name ILIKE $%d OR keywords ILIKE $%d)", n, n, n))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(videoColumns)
	b.WriteString(" FROM videos")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	dir := domain.SortDesc
	if filter.Sort == domain.SortAsc {
		dir = domain.SortAsc
	}
	fmt.Fprintf(&b, " ORDER BY created_date %s, id %s", dir, dir)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	return b.String(), args
}

// GetByID returns domain.ErrNotFound when the video does not exist.
func (r *PostgresVideoRepository) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err := scanVideo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("video %d: %w", id, domain.ErrNotFound)
	}
	return v, err
}

// Create inserts a single video.
func (r *PostgresVideoRepository) Create(ctx context.Context, in domain.VideoInput, createdBy string) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (title, video_url, surah_no, surah_name, starting_ayah, ending_ayah, keywords, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+videoColumns,
		in.Title, in.VideoURL, in.SurahNo, in.SurahName, in.StartingAyah, in.EndingAyah, in.Keywords, createdBy)

	v, err := scanVideo(row)
	if err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return nil, fmt.Errorf("surah %d: %w", in.SurahNo, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return v, nil
}

// Update replaces every editable field of a video.
func (r *PostgresVideoRepository) Update(ctx context.Context, id int64, in domain.VideoInput) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE videos
		SET title = $2, video_url = $3, surah_no = $4, surah_name = $5,
			starting_ayah = $6, ending_ayah = $7, keywords = $8
		WHERE id = $1
		RETURNING `+videoColumns,
		id, in.Title, in.VideoURL, in.SurahNo, in.SurahName, in.StartingAyah, in.EndingAyah, in.Keywords)

	v, err := scanVideo(row)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("video %d: %w", id, domain.ErrNotFound)
	case isPgCode(err, pgForeignKeyViolation):
		return nil, fmt.Errorf("surah %d: %w", in.SurahNo, domain.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("update video: %w", err)
	}
	return v, nil
}

// Delete removes a video.
func (r *PostgresVideoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// InsertBatch writes all records in one transaction using COPY. Either every
// record is stored or none is; any failure is reported as
// domain.ErrPersistenceFailure.
func (r *PostgresVideoRepository) InsertBatch(ctx context.Context, records []domain.ValidatedVideo, createdBy string) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: context cancelled: %v", domain.ErrPersistenceFailure, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrPersistenceFailure, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows := make([][]any, len(records))
	for i, rec := range records {
		var surahName *string
		if rec.SurahName != "" {
			name := rec.SurahName
			surahName = &name
		}
		startingAyah := rec.StartingAyah
		rows[i] = []any{rec.Title, rec.VideoURL, rec.SurahNo, surahName, &startingAyah, rec.EndingAyah, rec.Keywords, createdBy}
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"videos"}, batchColumns, pgx.CopyFromRows(rows))
	if err != nil {
		logger.Default().Error("Bulk video insert failed",
			slog.String("repository", "video"),
			slog.Int("records", len(records)),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("%w: bulk insert failed: %v", domain.ErrPersistenceFailure, err)
	}
	if int(copied) != len(records) {
		return 0, fmt.Errorf("%w: inserted %d of %d records", domain.ErrPersistenceFailure, copied, len(records))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: failed to commit transaction: %v", domain.ErrPersistenceFailure, err)
	}

	return int(copied), nil
}

// StreamAll streams all videos oldest first for export.
func (r *PostgresVideoRepository) StreamAll(ctx context.Context, callback func(domain.Video) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY created_date, id`)
	if err != nil {
		return fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return err
		}

		if err := callback(*v); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(&v.ID, &v.Title, &v.VideoURL, &v.SurahNo, &v.SurahName, &v.StartingAyah, &v.EndingAyah,
		&v.Keywords, &v.CreatedBy, &v.CreatedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan video: %w", err)
	}
	return &v, nil
}
