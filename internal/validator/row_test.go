package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
)

var testChapters = domain.ChapterReference{
	1: "Al-Fatiha",
	2: "Al-Baqarah",
}

func validRow() domain.RawRow {
	return domain.RawRow{
		"title":         "Al-Fatiha 1-7",
		"surah_no":      "1",
		"starting_ayah": "1",
		"ending_ayah":   "7",
		"youtube_link":  "https://youtu.be/dQw4w9WgXcQ",
		"keywords":      "tafsir, makki",
	}
}

func TestValidateVideoRow_Valid(t *testing.T) {
	v := NewValidator()

	rec, issues := v.ValidateVideoRow(validRow(), testChapters)
	require.Empty(t, issues)
	require.NotNil(t, rec)

	assert.Equal(t, "Al-Fatiha 1-7", rec.Title)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", rec.VideoURL)
	assert.Equal(t, 1, rec.SurahNo)
	assert.Equal(t, "Al-Fatiha", rec.SurahName)
	assert.Equal(t, 1, rec.StartingAyah)
	require.NotNil(t, rec.EndingAyah)
	assert.Equal(t, 7, *rec.EndingAyah)
	require.NotNil(t, rec.Keywords)
	assert.Equal(t, "tafsir, makki", *rec.Keywords)
}

func TestValidateVideoRow_OptionalFieldsBlank(t *testing.T) {
	v := NewValidator()
	row := validRow()
	row["ending_ayah"] = ""
	row["keywords"] = "  "

	rec, issues := v.ValidateVideoRow(row, testChapters)
	require.Empty(t, issues)
	assert.Nil(t, rec.EndingAyah)
	assert.Nil(t, rec.Keywords)
}

func TestValidateVideoRow_VideoURLColumn(t *testing.T) {
	v := NewValidator()
	row := validRow()
	delete(row, "youtube_link")
	row["video_url"] = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	rec, issues := v.ValidateVideoRow(row, testChapters)
	require.Empty(t, issues)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", rec.VideoURL)
}

func TestValidateVideoRow_Issues(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(domain.RawRow)
		want   []string
	}{
		{
			name:   "only title missing",
			mutate: func(r domain.RawRow) { r["title"] = "" },
			want:   []string{"Missing Title"},
		},
		{
			name:   "url missing",
			mutate: func(r domain.RawRow) { r["youtube_link"] = " " },
			want:   []string{"Missing URL"},
		},
		{
			name:   "url not youtube",
			mutate: func(r domain.RawRow) { r["youtube_link"] = "not a url" },
			want:   []string{"Invalid YouTube URL"},
		},
		{
			name:   "surah not a number",
			mutate: func(r domain.RawRow) { r["surah_no"] = "abc" },
			want:   []string{"Invalid Surah Number"},
		},
		{
			name:   "surah unknown",
			mutate: func(r domain.RawRow) { r["surah_no"] = "99" },
			want:   []string{"Surah 99 does not exist in DB"},
		},
		{
			name:   "starting ayah blank",
			mutate: func(r domain.RawRow) { r["starting_ayah"] = "" },
			want:   []string{"Invalid Starting Ayah"},
		},
		{
			name:   "ending ayah garbage",
			mutate: func(r domain.RawRow) { r["ending_ayah"] = "seven" },
			want:   []string{"Invalid Ending Ayah"},
		},
		{
			name: "everything wrong, reported in order",
			mutate: func(r domain.RawRow) {
				r["title"] = ""
				r["youtube_link"] = "https://example.com/video"
				r["surah_no"] = "1.5"
				r["starting_ayah"] = "x"
				r["ending_ayah"] = "y"
			},
			want: []string{
				"Missing Title",
				"Invalid YouTube URL",
				"Invalid Surah Number",
				"Invalid Starting Ayah",
				"Invalid Ending Ayah",
			},
		},
		{
			name: "no columns at all",
			mutate: func(r domain.RawRow) {
				for k := range r {
					delete(r, k)
				}
			},
			want: []string{"Missing Title", "Missing URL", "Invalid Surah Number", "Invalid Starting Ayah"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)

			rec, issues := v.ValidateVideoRow(row, testChapters)
			assert.Nil(t, rec)
			assert.Equal(t, tt.want, issues)
		})
	}
}

func TestValidateVideoRow_EmptyChapterReference(t *testing.T) {
	v := NewValidator()

	_, issues := v.ValidateVideoRow(validRow(), domain.ChapterReference{})
	assert.Equal(t, []string{"Surah 1 does not exist in DB"}, issues)
}

func TestValidateVideoRow_AyahOutOfRange(t *testing.T) {
	v := NewValidator()
	row := validRow()
	row["starting_ayah"] = "99999999999"

	rec, issues := v.ValidateVideoRow(row, testChapters)
	assert.Nil(t, rec)
	assert.Equal(t, []string{IssueInvalidStartingAyah}, issues)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{" 12 ", 12, true},
		{"+3", 3, true},
		{"-4", -4, true},
		{"12.0", 12, true},
		{"12.5", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"2147483647", 2147483647, true},
		{"-2147483648", -2147483648, true},
		{"2147483648", 0, false},
		{"99999999999", 0, false},
		{"99999999999.0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
