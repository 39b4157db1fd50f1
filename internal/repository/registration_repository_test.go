package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/repository"
)

func TestPostgresRegistrationRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresRegistrationRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "class_registrations")

	for i := 0; i < 5; i++ {
		lang := "English"
		if i%2 == 1 {
			lang = "Urdu"
		}
		_, err := repo.Create(ctx, domain.Registration{
			Name:              fmt.Sprintf("Student %d", i),
			Email:             fmt.Sprintf("student%d@example.com", i),
			Phone:             "+91 99999",
			Country:           "India",
			PreferredLanguage: lang,
			Status:            domain.RegistrationStatusPending,
			Notes:             " | Class Type: Tajweed | Contact: +91 99999",
		})
		require.NoError(t, err)
	}

	t.Run("list all pages", func(t *testing.T) {
		page, total, err := repo.List(ctx, domain.RegistrationFilter{Status: "all", Language: "all", Page: 1, PerPage: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, page, 2)
		assert.Equal(t, "Student 4", page[0].Name)

		page, _, err = repo.List(ctx, domain.RegistrationFilter{Page: 3, PerPage: 2})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Student 0", page[0].Name)
	})

	t.Run("filter by language", func(t *testing.T) {
		page, total, err := repo.List(ctx, domain.RegistrationFilter{Language: "Urdu", Page: 1, PerPage: 20})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, page, 2)
	})

	t.Run("update status", func(t *testing.T) {
		page, _, err := repo.List(ctx, domain.RegistrationFilter{Page: 1, PerPage: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)

		updated, err := repo.UpdateStatus(ctx, page[0].ID, domain.RegistrationStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationStatusConfirmed, updated.Status)

		_, total, err := repo.List(ctx, domain.RegistrationFilter{Status: domain.RegistrationStatusConfirmed, Page: 1, PerPage: 20})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, err = repo.UpdateStatus(ctx, 9999, domain.RegistrationStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
