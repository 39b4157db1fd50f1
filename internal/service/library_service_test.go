package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/mocks"
	"wqtc-api/internal/service"
	"wqtc-api/internal/validator"
)

func TestLibraryService_Create(t *testing.T) {
	ctx := context.Background()
	in := domain.VideoInput{
		Title:        "Fatiha",
		VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		SurahNo:      1,
		StartingAyah: intPtr(1),
		EndingAyah:   intPtr(7),
	}

	t.Run("fills surah name from the chapter table", func(t *testing.T) {
		videoRepo := mocks.NewMockVideoRepository(t)
		surahRepo := mocks.NewMockSurahRepository(t)
		surahRepo.EXPECT().GetByID(mock.Anything, 1).Return(&domain.Surah{ID: 1, Name: "Al-Fatiha"}, nil)
		videoRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in domain.VideoInput) bool {
				return in.SurahName != nil && *in.SurahName == "Al-Fatiha"
			}), domain.DefaultCreatedBy).
			Return(&domain.Video{ID: 10, Title: "Fatiha", SurahNo: 1}, nil)

		svc := service.NewLibraryService(videoRepo, surahRepo, validator.NewValidator())

		video, err := svc.Create(ctx, adminSession, in)

		require.NoError(t, err)
		assert.Equal(t, int64(10), video.ID)
	})

	t.Run("keeps a supplied surah name", func(t *testing.T) {
		videoRepo := mocks.NewMockVideoRepository(t)
		withName := in
		withName.SurahName = strPtr("The Opening")
		videoRepo.EXPECT().Create(mock.Anything, withName, domain.DefaultCreatedBy).
			Return(&domain.Video{ID: 11}, nil)

		svc := service.NewLibraryService(videoRepo, mocks.NewMockSurahRepository(t), validator.NewValidator())

		_, err := svc.Create(ctx, adminSession, withName)

		require.NoError(t, err)
	})

	t.Run("unknown surah", func(t *testing.T) {
		surahRepo := mocks.NewMockSurahRepository(t)
		surahRepo.EXPECT().GetByID(mock.Anything, 1).Return(nil, domain.ErrNotFound)

		svc := service.NewLibraryService(mocks.NewMockVideoRepository(t), surahRepo, validator.NewValidator())

		_, err := svc.Create(ctx, adminSession, in)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc := service.NewLibraryService(mocks.NewMockVideoRepository(t), mocks.NewMockSurahRepository(t), validator.NewValidator())
		bad := in
		bad.VideoURL = "not a url"

		_, err := svc.Create(ctx, adminSession, bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires admin", func(t *testing.T) {
		svc := service.NewLibraryService(mocks.NewMockVideoRepository(t), mocks.NewMockSurahRepository(t), validator.NewValidator())

		_, err := svc.Create(ctx, userSession, in)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestLibraryService_SearchAndDelete(t *testing.T) {
	ctx := context.Background()
	videoRepo := mocks.NewMockVideoRepository(t)
	surahNo := 2
	filter := domain.VideoFilter{SurahNo: &surahNo, Sort: domain.SortAsc}

	videoRepo.EXPECT().Search(mock.Anything, filter).Return([]domain.Video{{ID: 1}, {ID: 2}}, nil)
	videoRepo.EXPECT().Delete(mock.Anything, int64(2)).Return(nil)

	svc := service.NewLibraryService(videoRepo, mocks.NewMockSurahRepository(t), validator.NewValidator())

	videos, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	require.NoError(t, svc.Delete(ctx, adminSession, 2))
	assert.ErrorIs(t, svc.Delete(ctx, userSession, 2), domain.ErrForbidden)
}
