package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/verse"
)

func TestBuildSearchQuery(t *testing.T) {
	surah := 2
	rangeSpec := verse.Range(5, 10)
	point := verse.Point(7)

	tests := []struct {
		name      string
		filter    domain.VideoFilter
		wantWhere string
		wantTail  string
		wantArgs  []any
	}{
		{
			name:     "no filter",
			filter:   domain.VideoFilter{},
			wantTail: " FROM videos ORDER BY created_date DESC, id DESC",
			wantArgs: nil,
		},
		{
			name:      "surah and range",
			filter:    domain.VideoFilter{SurahNo: &surah, Verse: &rangeSpec, Sort: domain.SortAsc},
			wantWhere: " WHERE surah_no = $1 AND (starting_ayah >= $2 AND ending_ayah <= $3)",
			wantTail:  " ORDER BY created_date ASC, id ASC",
			wantArgs:  []any{2, 5, 10},
		},
		{
			name:      "point, search and limit",
			filter:    domain.VideoFilter{Verse: &point, Search: " tafsir ", Limit: 5},
			wantWhere: " WHERE (starting_ayah <= $1 AND (ending_ayah >= $1 OR ending_ayah IS NULL)) AND (title ILIKE $2 OR surah_name ILIKE $2 OR keywords ILIKE $2)",
			wantTail:  " ORDER BY created_date DESC, id DESC LIMIT $3",
			wantArgs:  []any{7, "%tafsir%", 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildSearchQuery(tt.filter)
			if tt.wantWhere != "" {
				assert.Contains(t, query, tt.wantWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			assert.Contains(t, query, tt.wantTail)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
