package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/repository"
)

func TestPostgresEBookRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresEBookRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "ebooks")

	first, err := repo.Create(ctx, domain.EBookInput{Title: "Tajweed", Filename: "1_tajweed.pdf", Pages: intPtr(40)}, domain.DefaultCreatedBy)
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.EBookInput{Title: "Seerah", Filename: "2_seerah.pdf", CoverImage: strPtr("/coverpages/2_seerah.png")}, domain.DefaultCreatedBy)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCreatedBy, first.CreatedBy)

	t.Run("list sort and limit", func(t *testing.T) {
		books, err := repo.List(ctx, domain.EBookFilter{Sort: domain.SortDesc})
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, second.ID, books[0].ID)

		books, err = repo.List(ctx, domain.EBookFilter{Sort: domain.SortAsc, Limit: 1})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, first.ID, books[0].ID)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.Update(ctx, first.ID, domain.EBookPatch{Description: strPtr("Rules of recitation")})
		require.NoError(t, err)
		assert.Equal(t, "Tajweed", updated.Title)
		assert.Equal(t, 40, *updated.Pages)
		assert.Equal(t, "Rules of recitation", *updated.Description)

		_, err = repo.Update(ctx, 9999, domain.EBookPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))
		assert.ErrorIs(t, repo.Delete(ctx, second.ID), domain.ErrNotFound)

		_, err := repo.GetByID(ctx, second.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
