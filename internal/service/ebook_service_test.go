package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/mocks"
	"wqtc-api/internal/service"
	"wqtc-api/internal/storage"
	"wqtc-api/internal/validator"
)

func TestEBookService_Uploads(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pdf", func(t *testing.T) {
		files := mocks.NewMockFileStore(t)
		files.EXPECT().Save(mock.Anything, storage.DirPDFs, "tafsir.pdf", mock.Anything).
			Return("1700000000_tafsir.pdf", nil)

		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), files, validator.NewValidator())

		name, err := svc.UploadPDF(ctx, adminSession, "tafsir.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))

		require.NoError(t, err)
		assert.Equal(t, "1700000000_tafsir.pdf", name)
	})

	t.Run("rejects non-pdf", func(t *testing.T) {
		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), mocks.NewMockFileStore(t), validator.NewValidator())

		_, err := svc.UploadPDF(ctx, adminSession, "notes.txt", "text/plain", strings.NewReader("hi"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("stores cover and returns public path", func(t *testing.T) {
		files := mocks.NewMockFileStore(t)
		files.EXPECT().Save(mock.Anything, storage.DirCovers, "cover.png", mock.Anything).
			Return("1700000000_cover.png", nil)

		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), files, validator.NewValidator())

		path, err := svc.UploadCover(ctx, adminSession, "cover.png", "image/png", strings.NewReader("png"))

		require.NoError(t, err)
		assert.Equal(t, "/coverpages/1700000000_cover.png", path)
	})

	t.Run("rejects non-image cover", func(t *testing.T) {
		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), mocks.NewMockFileStore(t), validator.NewValidator())

		_, err := svc.UploadCover(ctx, adminSession, "cover.pdf", "application/pdf", strings.NewReader("x"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid stored name", func(t *testing.T) {
		files := mocks.NewMockFileStore(t)
		files.EXPECT().Save(mock.Anything, storage.DirPDFs, "..", mock.Anything).Return("", storage.ErrInvalidName)

		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), files, validator.NewValidator())

		_, err := svc.UploadPDF(ctx, adminSession, "..", "application/pdf", strings.NewReader("x"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		files := mocks.NewMockFileStore(t)
		files.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), files, validator.NewValidator())

		_, err := svc.UploadPDF(ctx, adminSession, "a.pdf", "application/pdf", strings.NewReader("x"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires admin", func(t *testing.T) {
		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), mocks.NewMockFileStore(t), validator.NewValidator())

		_, err := svc.UploadPDF(ctx, userSession, "a.pdf", "application/pdf", strings.NewReader("x"))

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestEBookService_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create stamps default author", func(t *testing.T) {
		repo := mocks.NewMockEBookRepository(t)
		in := domain.EBookInput{Title: "Tafsir", Filename: "1_tafsir.pdf", Pages: intPtr(120)}
		repo.EXPECT().Create(mock.Anything, in, domain.DefaultCreatedBy).
			Return(&domain.EBook{ID: 1, Title: "Tafsir", CreatedBy: domain.DefaultCreatedBy}, nil)

		book, err := service.NewEBookService(repo, mocks.NewMockFileStore(t), validator.NewValidator()).
			Create(ctx, adminSession, in)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCreatedBy, book.CreatedBy)
	})

	t.Run("create requires filename", func(t *testing.T) {
		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), mocks.NewMockFileStore(t), validator.NewValidator())

		_, err := svc.Create(ctx, adminSession, domain.EBookInput{Title: "Tafsir"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("update rejects blank title", func(t *testing.T) {
		svc := service.NewEBookService(mocks.NewMockEBookRepository(t), mocks.NewMockFileStore(t), validator.NewValidator())

		_, err := svc.Update(ctx, adminSession, 1, domain.EBookPatch{Title: strPtr("")})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("update missing", func(t *testing.T) {
		repo := mocks.NewMockEBookRepository(t)
		patch := domain.EBookPatch{Pages: intPtr(10)}
		repo.EXPECT().Update(mock.Anything, int64(9), patch).Return(nil, domain.ErrNotFound)

		_, err := service.NewEBookService(repo, mocks.NewMockFileStore(t), validator.NewValidator()).
			Update(ctx, adminSession, 9, patch)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		repo := mocks.NewMockEBookRepository(t)
		filter := domain.EBookFilter{Sort: domain.SortDesc, Limit: 5}
		repo.EXPECT().List(mock.Anything, filter).Return([]domain.EBook{{ID: 1}}, nil)
		repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

		svc := service.NewEBookService(repo, mocks.NewMockFileStore(t), validator.NewValidator())

		books, err := svc.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, books, 1)
		require.NoError(t, svc.Delete(ctx, adminSession, 1))
	})
}
