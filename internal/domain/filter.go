package domain

import "wqtc-api/internal/verse"

// VideoFilter is the library search. Every field is optional; the zero
// value lists everything newest first.
type VideoFilter struct {
	SurahNo *int
	Verse   *verse.Spec
	Search  string
	Sort    SortDirection
	Limit   int // 0 = no limit
}
