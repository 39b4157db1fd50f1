// Package verse parses ayah specifiers and turns them into match rules over
// a video's [starting_ayah, ending_ayah] interval.
package verse

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is either a single ayah or an inclusive ayah range.
type Spec struct {
	Start   int
	End     int
	IsRange bool
}

// Point returns a single-ayah spec.
func Point(ayah int) Spec {
	return Spec{Start: ayah, End: ayah}
}

// Range returns an inclusive range spec.
func Range(start, end int) Spec {
	return Spec{Start: start, End: end, IsRange: true}
}

// Parse reads "7" or "5-10". ok is false for blank or malformed input, in
// which case the caller applies no verse constraint at all.
func Parse(raw string) (spec Spec, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, false
	}

	if strings.Contains(raw, "-") {
		parts := strings.Split(raw, "-")
		if len(parts) != 2 {
			return Spec{}, false
		}
		start, err := parseInt(parts[0])
		if err != nil {
			return Spec{}, false
		}
		end, err := parseInt(parts[1])
		if err != nil {
			return Spec{}, false
		}
		return Range(start, end), true
	}

	ayah, err := parseInt(raw)
	if err != nil {
		return Spec{}, false
	}
	return Point(ayah), true
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Matches applies the spec to a video's ayah interval. Nil means the column
// is NULL and compares like SQL: a NULL start never matches, and a NULL end
// only matches the open-ended clause of a point query.
//
// A range matches by containment (the video sits inside the query range),
// not by overlap.
func (s Spec) Matches(start, end *int) bool {
	if start == nil {
		return false
	}
	if s.IsRange {
		return end != nil && *start >= s.Start && *end <= s.End
	}
	return *start <= s.Start && (end == nil || *end >= s.Start)
}

// SQL renders the spec as a WHERE fragment using positional parameters
// starting at $nextArg.
func (s Spec) SQL(startCol, endCol string, nextArg int) (string, []any) {
	if s.IsRange {
		clause := fmt.Sprintf("(%s >= $%d AND %s <= $%d)", startCol, nextArg, endCol, nextArg+1)
		return clause, []any{s.Start, s.End}
	}
	clause := fmt.Sprintf("(%s <= $%d AND (%s >= $%d OR %s IS NULL))", startCol, nextArg, endCol, nextArg, endCol)
	return clause, []any{s.Start}
}

// String renders the spec back into its input form.
func (s Spec) String() string {
	if s.IsRange {
		return fmt.Sprintf("%d-%d", s.Start, s.End)
	}
	return strconv.Itoa(s.Start)
}
