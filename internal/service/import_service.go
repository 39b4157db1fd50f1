package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/metrics"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/spreadsheet"
	"wqtc-api/internal/validator"
)

// ImportService turns uploaded spreadsheets into video records. Previews are
// read-only; commits write a whole batch or nothing.
type ImportService struct {
	videoRepo repository.VideoRepository
	surahRepo repository.SurahRepository
	validator *validator.Validator
}

// NewImportService creates a new ImportService.
func NewImportService(
	videoRepo repository.VideoRepository,
	surahRepo repository.SurahRepository,
	v *validator.Validator,
) *ImportService {
	return &ImportService{
		videoRepo: videoRepo,
		surahRepo: surahRepo,
		validator: v,
	}
}

// Preview parses the upload, validates every row against the current
// chapter list and partitions the rows. Nothing is persisted.
func (s *ImportService) Preview(ctx context.Context, filename string, data []byte) (result *domain.ImportPreviewResult, err error) {
	log := logger.FromContext(ctx)
	format := formatLabel(filename)
	defer func() {
		valid, invalid := 0, 0
		if result != nil {
			valid, invalid = len(result.Valid), len(result.Invalid)
		}
		metrics.ObservePreview(format, valid, invalid, err)
	}()

	parseTimer := metrics.NewTimer()
	table, err := spreadsheet.Parse(filename, data)
	parseTimer.ObserveDuration(metrics.ImportStageDuration.WithLabelValues("parse"))
	if err != nil {
		log.Warn("Bulk preview rejected upload",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return nil, err
	}

	chapters, err := s.surahRepo.ListChapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chapters: %w", err)
	}

	validateTimer := metrics.NewTimer()
	result = BuildPreview(s.validator, table, chapters)
	validateTimer.ObserveDuration(metrics.ImportStageDuration.WithLabelValues("validate"))

	log.Info("Bulk preview built",
		slog.String("filename", filename),
		slog.Int("total_parsed", result.TotalParsed),
		slog.Int("valid", len(result.Valid)),
		slog.Int("invalid", len(result.Invalid)))

	return result, nil
}

// formatLabel names the upload format for metrics. Rejected extensions
// share one label.
func formatLabel(filename string) string {
	format, err := spreadsheet.DetectFormat(filename)
	if err != nil {
		return "unknown"
	}
	return string(format)
}

// BuildPreview validates each row of table in file order. Every row lands in
// exactly one of Valid or Invalid.
func BuildPreview(v *validator.Validator, table *spreadsheet.Table, chapters domain.ChapterReference) *domain.ImportPreviewResult {
	result := &domain.ImportPreviewResult{
		Valid:       make([]domain.ValidatedVideo, 0, len(table.Rows)),
		Invalid:     make([]domain.RowIssueReport, 0),
		TotalParsed: len(table.Rows),
	}

	for i, row := range table.Rows {
		record, issues := v.ValidateVideoRow(row, chapters)
		if len(issues) == 0 {
			result.Valid = append(result.Valid, *record)
			continue
		}

		original := make(map[string]string, len(table.Headers))
		for _, h := range table.Headers {
			original[h] = row[h]
		}
		result.Invalid = append(result.Invalid, domain.RowIssueReport{
			RowNumber:    table.RowNumber(i),
			OriginalData: original,
			Issues:       issues,
		})
	}

	return result
}

// Commit stores records exactly as given. The caller is expected to send
// back rows from a preview; they are not validated again.
func (s *ImportService) Commit(ctx context.Context, session domain.Session, records []domain.ValidatedVideo) (inserted int, err error) {
	if err := session.RequireAdmin(); err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ImportStageDuration.WithLabelValues("commit"))
		metrics.ObserveCommit(inserted, err)
	}()

	inserted, err = s.videoRepo.InsertBatch(ctx, records, domain.DefaultCreatedBy)
	if err != nil {
		log.Error("Bulk commit failed",
			slog.String("user", session.Email),
			slog.Int("records", len(records)),
			slog.String("error", err.Error()))
		if !errors.Is(err, domain.ErrPersistenceFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		}
		return 0, err
	}

	log.Info("Bulk commit stored videos",
		slog.String("user", session.Email),
		slog.Int("inserted", inserted))

	return inserted, nil
}
