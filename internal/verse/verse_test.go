package verse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		raw    string
		want   Spec
		wantOK bool
	}{
		{"7", Point(7), true},
		{" 12 ", Point(12), true},
		{"5-10", Range(5, 10), true},
		{"5 - 10", Range(5, 10), true},
		{"abc-def", Spec{}, false},
		{"xyz", Spec{}, false},
		{"", Spec{}, false},
		{"1-2-3", Spec{}, false},
		{"-5", Spec{}, false},
		{"5-", Spec{}, false},
		{"3.5", Spec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_Matches_Range(t *testing.T) {
	spec, ok := Parse("5-10")
	require.True(t, ok)

	assert.True(t, spec.Matches(intPtr(6), intPtr(9)))
	assert.True(t, spec.Matches(intPtr(5), intPtr(10)), "bounds are inclusive")
	assert.False(t, spec.Matches(intPtr(4), intPtr(9)))
	assert.False(t, spec.Matches(intPtr(6), intPtr(11)), "overlapping but not contained")
	assert.False(t, spec.Matches(intPtr(6), nil), "open-ended videos never sit inside a range")
	assert.False(t, spec.Matches(nil, intPtr(9)))
}

func TestSpec_Matches_Point(t *testing.T) {
	spec, ok := Parse("7")
	require.True(t, ok)

	assert.True(t, spec.Matches(intPtr(5), nil))
	assert.True(t, spec.Matches(intPtr(5), intPtr(10)))
	assert.True(t, spec.Matches(intPtr(7), intPtr(7)))
	assert.False(t, spec.Matches(intPtr(8), intPtr(20)))
	assert.False(t, spec.Matches(intPtr(1), intPtr(6)))
	assert.False(t, spec.Matches(nil, nil))
}

func TestSpec_SQL(t *testing.T) {
	clause, args := Range(5, 10).SQL("starting_ayah", "ending_ayah", 3)
	assert.Equal(t, "(starting_ayah >= $3 AND ending_ayah <= $4)", clause)
	assert.Equal(t, []any{5, 10}, args)

	clause, args = Point(7).SQL("starting_ayah", "ending_ayah", 1)
	assert.Equal(t, "(starting_ayah <= $1 AND (ending_ayah >= $1 OR ending_ayah IS NULL))", clause)
	assert.Equal(t, []any{7}, args)
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "7", Point(7).String())
	assert.Equal(t, "5-10", Range(5, 10).String())
}
