package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wqtc-api/internal/domain"
)

const registrationColumns = `id, name, email, COALESCE(phone, ''), COALESCE(country, ''),
	COALESCE(preferred_language, ''), COALESCE(preferred_day, ''), COALESCE(preferred_time, ''),
	status, COALESCE(notes, ''), registered_at`

// filterAll disables a listing filter.
const filterAll = "all"

// PostgresRegistrationRepository implements RegistrationRepository using PostgreSQL.
type PostgresRegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRegistrationRepository creates a new PostgresRegistrationRepository.
func NewPostgresRegistrationRepository(pool *pgxpool.Pool) *PostgresRegistrationRepository {
	return &PostgresRegistrationRepository{pool: pool}
}

// Create stores a new registration.
func (r *PostgresRegistrationRepository) Create(ctx context.Context, reg domain.Registration) (*domain.Registration, error) {
	created, err := scanRegistration(r.pool.QueryRow(ctx, `
		INSERT INTO class_registrations
			(name, email, phone, country, preferred_language, preferred_day, preferred_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+registrationColumns,
		reg.Name, reg.Email, reg.Phone, reg.Country, reg.PreferredLanguage, reg.PreferredDay,
		reg.PreferredTime, reg.Status, reg.Notes))
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return created, nil
}

// List returns one page of registrations, newest first, and the total
// number matching the filter. Status and language equal to "all" or empty
// are not filtered on.
func (r *PostgresRegistrationRepository) List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, int, error) {
	var (
		conds []string
		args  []any
	)
	if s := strings.TrimSpace(filter.Status); s != "" && s != filterAll {
		args = append(args, s)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if l := strings.TrimSpace(filter.Language); l != "" && l != filterAll {
		args = append(args, l)
		conds = append(conds, fmt.Sprintf("preferred_language = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM class_registrations`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}

	pageArgs := append(append([]any{}, args...), filter.PerPage, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM class_registrations%s ORDER BY registered_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		registrationColumns, where, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]domain.Registration, 0, filter.PerPage)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, err
		}
		regs = append(regs, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate registrations: %w", err)
	}
	return regs, total, nil
}

// UpdateStatus sets the status of a registration.
func (r *PostgresRegistrationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Registration, error) {
	reg, err := scanRegistration(r.pool.QueryRow(ctx, `
		UPDATE class_registrations SET status = $2 WHERE id = $1
		RETURNING `+registrationColumns, id, status))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("registration %d: %w", id, domain.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return reg, nil
}

func scanRegistration(row pgx.Row) (*domain.Registration, error) {
	var reg domain.Registration
	err := row.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Country, &reg.PreferredLanguage,
		&reg.PreferredDay, &reg.PreferredTime, &reg.Status, &reg.Notes, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	return &reg, nil
}
