package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/metrics"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/spreadsheet"
	"wqtc-api/internal/youtube"
)

const (
	// exportFlushEvery is how many rows are buffered before a flush.
	exportFlushEvery = 100

	templateSheet  = "Videos"
	exportResource = "videos"
)

// TemplateHeaders are the columns of the bulk import sheet. Exports use the
// same columns so an export can be re-imported.
var TemplateHeaders = []string{"title", "surah_no", "starting_ayah", "ending_ayah", "youtube_link", "keywords"}

var templateExample = []string{"Al-Fatiha Tafsir Part 1", "1", "1", "7", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "tafsir, fatiha"}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportService renders import templates and streams video exports.
type ExportService struct {
	videoRepo repository.VideoRepository
}

// NewExportService creates a new ExportService.
func NewExportService(videoRepo repository.VideoRepository) *ExportService {
	return &ExportService{videoRepo: videoRepo}
}

// Template renders an empty import sheet with one example row.
func (s *ExportService) Template(format string) (*ExportFile, error) {
	switch spreadsheet.Format(format) {
	case "", spreadsheet.FormatCSV:
		return csvTemplate()
	case spreadsheet.FormatXLSX:
		return xlsxTemplate()
	}
	return nil, fmt.Errorf("%w: template format %q (expected csv or xlsx)", domain.ErrUnsupportedFormat, format)
}

func csvTemplate() (*ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{TemplateHeaders, templateExample}); err != nil {
		return nil, fmt.Errorf("write csv template: %w", err)
	}
	return &ExportFile{
		Name:        "video_import_template.csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func xlsxTemplate() (*ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	for i, row := range [][]string{TemplateHeaders, templateExample} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(templateSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write xlsx template: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx template: %w", err)
	}
	return &ExportFile{
		Name:        "video_import_template.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// StreamVideos writes every video as CSV in the template's column order and
// returns the number of rows written.
func (s *ExportService) StreamVideos(ctx context.Context, writer StreamWriter) (count int, err error) {
	log := logger.FromContext(ctx)
	timer := metrics.NewTimer()
	metrics.StartStreamingExport(exportResource)
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
		}
		metrics.EndStreamingExport(exportResource, string(spreadsheet.FormatCSV), result, timer.Seconds(), count)
	}()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	flush := func() error {
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
		if buf.Len() == 0 {
			return nil
		}
		if err := writer.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		buf.Reset()
		writer.Flush()
		return nil
	}

	if err := w.Write(TemplateHeaders); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	err = s.videoRepo.StreamAll(ctx, func(v domain.Video) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(videoRecord(v)); err != nil {
			return err
		}
		count++
		if count%exportFlushEvery == 0 {
			return flush()
		}
		return nil
	})
	if err != nil {
		log.Error("Video export failed", slog.Int("written", count), slog.String("error", err.Error()))
		return count, fmt.Errorf("stream videos: %w", err)
	}
	if err := flush(); err != nil {
		return count, err
	}

	log.Info("Video export completed", slog.Int("records", count))
	return count, nil
}

func videoRecord(v domain.Video) []string {
	link := v.VideoURL
	if id, ok := youtube.ExtractVideoID(v.VideoURL); ok {
		link = youtube.WatchURL(id)
	}
	return []string{
		v.Title,
		strconv.Itoa(v.SurahNo),
		optionalInt(v.StartingAyah),
		optionalInt(v.EndingAyah),
		link,
		optionalString(v.Keywords),
	}
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
