package domain

import (
	"strings"
	"time"
)

// DefaultCreatedBy is stamped on content created without an explicit author.
const DefaultCreatedBy = "WQTCTeam"

// Video is a YouTube lesson tagged with the surah and ayah range it covers.
type Video struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"youTube_link"`
	SurahNo      int       `json:"surah_no"`
	SurahName    *string   `json:"surah_name"`
	StartingAyah *int      `json:"starting_ayah"`
	EndingAyah   *int      `json:"ending_ayah"`
	Keywords     *string   `json:"keywords"`
	CreatedBy    string    `json:"created_by"`
	CreatedDate  time.Time `json:"created_date"`
}

// VideoInput is the payload for creating or replacing a video.
type VideoInput struct {
	Title        string  `json:"title"`
	VideoURL     string  `json:"video_url"`
	SurahNo      int     `json:"surah_no"`
	SurahName    *string `json:"surah_name,omitempty"`
	StartingAyah *int    `json:"starting_ayah,omitempty"`
	EndingAyah   *int    `json:"ending_ayah,omitempty"`
	Keywords     *string `json:"keywords,omitempty"`
}

// SortDirection orders list results by creation date.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection maps user input to a direction. Anything other than
// "asc" (case-insensitive) sorts newest first.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}
