package domain

// RawRow maps a normalized header to the raw cell text of one data row.
type RawRow map[string]string

// ValidatedVideo is a spreadsheet row that passed every check. It is what
// the preview returns and what the commit accepts back.
type ValidatedVideo struct {
	Title        string  `json:"title"`
	VideoURL     string  `json:"video_url"`
	SurahNo      int     `json:"surah_no"`
	SurahName    string  `json:"surah_name"`
	StartingAyah int     `json:"starting_ayah"`
	EndingAyah   *int    `json:"ending_ayah,omitempty"`
	Keywords     *string `json:"keywords,omitempty"`
}

// RowIssueReport describes a rejected row. RowNumber is the row as seen in
// a spreadsheet viewer, with the header on row 1.
type RowIssueReport struct {
	RowNumber    int               `json:"row_number"`
	OriginalData map[string]string `json:"original_data"`
	Issues       []string          `json:"issues"`
}

// ImportPreviewResult is the dry-run outcome of a bulk upload.
// len(Valid)+len(Invalid) always equals TotalParsed.
type ImportPreviewResult struct {
	Valid       []ValidatedVideo `json:"valid"`
	Invalid     []RowIssueReport `json:"invalid"`
	TotalParsed int              `json:"total_parsed"`
}

// HeaderRowNumber is the spreadsheet row holding column names.
const HeaderRowNumber = 1

// RowNumberForIndex converts a 0-based data row index into the row number a
// user sees in the file.
func RowNumberForIndex(i int) int {
	return i + HeaderRowNumber + 1
}
