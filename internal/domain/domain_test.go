package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		in   string
		want SortDirection
	}{
		{"ASC", SortAsc},
		{"asc", SortAsc},
		{" Asc ", SortAsc},
		{"DESC", SortDesc},
		{"", SortDesc},
		{"sideways", SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortDirection(tt.in))
		})
	}
}

func TestSession_RequireAdmin(t *testing.T) {
	assert.NoError(t, Session{Role: RoleAdmin}.RequireAdmin())
	assert.ErrorIs(t, Session{Role: RoleUser}.RequireAdmin(), ErrForbidden)
	assert.ErrorIs(t, Session{}.RequireAdmin(), ErrForbidden)
}

func TestRowNumberForIndex(t *testing.T) {
	assert.Equal(t, 2, RowNumberForIndex(0))
	assert.Equal(t, 4, RowNumberForIndex(2))
}

func TestRegistrationInput_CombinedNotes(t *testing.T) {
	notes := "weekends only"
	in := RegistrationInput{ClassType: "ongoing", ContactNumber: "+91 555", AdditionalNotes: &notes}
	assert.Equal(t, "weekends only | Class Type: ongoing | Contact: +91 555", in.CombinedNotes())

	in.AdditionalNotes = nil
	assert.Equal(t, " | Class Type: ongoing | Contact: +91 555", in.CombinedNotes())
}

func TestRegistrationFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, RegistrationFilter{Page: 1, PerPage: 20}.Offset())
	assert.Equal(t, 40, RegistrationFilter{Page: 3, PerPage: 20}.Offset())
	assert.Equal(t, 0, RegistrationFilter{Page: 0, PerPage: 20}.Offset())
}

func TestChapterReference_Name(t *testing.T) {
	ref := ChapterReference{1: "Al-Fatiha"}
	name, ok := ref.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "Al-Fatiha", name)

	_, ok = ref.Name(115)
	assert.False(t, ok)
}

func TestRegistration_View(t *testing.T) {
	reg := Registration{
		ID:                4,
		Name:              "Aisha",
		Phone:             "+91 99999",
		Country:           "India",
		PreferredLanguage: "English",
		PreferredDay:      "Weekends",
		PreferredTime:     "Evening",
		Status:            RegistrationStatusPending,
		Notes:             " | Class Type: Tajweed | Contact: +91 99999",
	}

	view := reg.View()
	assert.Equal(t, int64(4), view.ID)
	assert.Equal(t, "English", view.Language)
	assert.Equal(t, "Weekends", view.Days)
	assert.Equal(t, "Evening", view.Timing)
	assert.Equal(t, "+91 99999", view.WhatsApp)
	assert.Equal(t, "+91 99999", view.ContactNumber)
	assert.Equal(t, "General", view.ClassType)
	assert.Equal(t, reg.Notes, view.AdditionalNotes)
}
