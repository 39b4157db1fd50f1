package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "users")

	created, err := repo.Create(ctx, domain.User{
		Email:        "admin@wqtc.com",
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByEmail(ctx, "admin@wqtc.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)

	_, err = repo.Create(ctx, domain.User{Email: "admin@wqtc.com", Username: "other", PasswordHash: "x", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = repo.GetByEmail(ctx, "nobody@wqtc.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
