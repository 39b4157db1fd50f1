package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/youtube"
)

// Row issue messages, in the order they are reported.
const (
	IssueMissingTitle         = "Missing Title"
	IssueMissingURL           = "Missing URL"
	IssueInvalidURL           = "Invalid YouTube URL"
	IssueInvalidSurah         = "Invalid Surah Number"
	IssueInvalidStartingAyah  = "Invalid Starting Ayah"
	IssueInvalidEndingAyah    = "Invalid Ending Ayah"
	issueSurahNotFoundPattern = "Surah %d does not exist in DB"
)

// Import column names after header normalization.
const (
	ColumnTitle        = "title"
	ColumnSurahNo      = "surah_no"
	ColumnStartingAyah = "starting_ayah"
	ColumnEndingAyah   = "ending_ayah"
	ColumnYouTubeLink  = "youtube_link"
	ColumnVideoURL     = "video_url"
	ColumnKeywords     = "keywords"
)

// ValidateVideoRow checks one spreadsheet row against the chapter reference.
// Every check runs so a row reports all of its problems at once. It returns
// a record when there are no issues, and the issues otherwise.
func (v *Validator) ValidateVideoRow(row domain.RawRow, chapters domain.ChapterReference) (*domain.ValidatedVideo, []string) {
	var issues issueList

	title := strings.TrimSpace(row[ColumnTitle])
	if title == "" {
		issues.add(IssueMissingTitle)
	}

	url := rowURL(row)
	if url == "" {
		issues.add(IssueMissingURL)
	} else if _, ok := youtube.ExtractVideoID(url); !ok {
		issues.add(IssueInvalidURL)
	}

	surahNo, surahOK := ParseInt(row[ColumnSurahNo])
	var surahName string
	if !surahOK {
		issues.add(IssueInvalidSurah)
	} else if name, found := chapters.Name(surahNo); found {
		surahName = name
	} else {
		issues.add(fmt.Sprintf(issueSurahNotFoundPattern, surahNo))
	}

	startingAyah, startOK := ParseInt(row[ColumnStartingAyah])
	if !startOK {
		issues.add(IssueInvalidStartingAyah)
	}

	var endingAyah *int
	if raw := strings.TrimSpace(row[ColumnEndingAyah]); raw != "" {
		if n, ok := ParseInt(raw); ok {
			endingAyah = &n
		} else {
			issues.add(IssueInvalidEndingAyah)
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	var keywords *string
	if kw := row[ColumnKeywords]; strings.TrimSpace(kw) != "" {
		keywords = &kw
	}

	return &domain.ValidatedVideo{
		Title:        title,
		VideoURL:     url,
		SurahNo:      surahNo,
		SurahName:    surahName,
		StartingAyah: startingAyah,
		EndingAyah:   endingAyah,
		Keywords:     keywords,
	}, nil
}

// rowURL prefers the youtube_link column when the sheet has one.
func rowURL(row domain.RawRow) string {
	if link, ok := row[ColumnYouTubeLink]; ok {
		return strings.TrimSpace(link)
	}
	return strings.TrimSpace(row[ColumnVideoURL])
}

// ParseInt reads an integer cell. Spreadsheet tools often export whole
// numbers as "12.0", so integral decimals are accepted; "12.5" is not.
// Values must fit the INTEGER columns they are stored in.
func ParseInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

type issueList []string

func (l *issueList) add(issue string) {
	for _, existing := range *l {
		if existing == issue {
			return
		}
	}
	*l = append(*l, issue)
}
