package domain

import (
	"fmt"
	"time"
)

// Registration statuses. New leads start as pending.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

// DefaultCountry is assumed when the sign-up form leaves country blank.
const DefaultCountry = "India"

// Registration is a class-registration lead as stored.
type Registration struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Country           string    `json:"country"`
	PreferredLanguage string    `json:"preferred_language"`
	PreferredDay      string    `json:"preferred_day"`
	PreferredTime     string    `json:"preferred_time"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
	RegisteredAt      time.Time `json:"registered_at"`
}

// RegistrationInput is the public sign-up form.
type RegistrationInput struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	WhatsApp        *string `json:"whatsapp"`
	Country         string  `json:"country"`
	Language        string  `json:"language"`
	ClassType       string  `json:"classType"`
	Timing          string  `json:"timing"`
	Days            string  `json:"days"`
	ContactNumber   string  `json:"contactNumber"`
	AdditionalNotes *string `json:"additionalNotes"`
}

// CombinedNotes folds the form fields that have no column of their own into
// the notes text.
func (in RegistrationInput) CombinedNotes() string {
	notes := ""
	if in.AdditionalNotes != nil {
		notes = *in.AdditionalNotes
	}
	return fmt.Sprintf("%s | Class Type: %s | Contact: %s", notes, in.ClassType, in.ContactNumber)
}

// RegistrationFilter selects registrations for the admin listing.
type RegistrationFilter struct {
	Status   string
	Language string
	Page     int
	PerPage  int
}

// Offset returns the row offset for the current page.
func (f RegistrationFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PerPage
}

// RegistrationStatusUpdate is the admin payload for moving a lead along.
type RegistrationStatusUpdate struct {
	Status string `json:"status"`
}

// RegistrationView is the shape the admin dashboard reads. Fields without a
// column of their own are derived from the stored ones.
type RegistrationView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	WhatsApp        string    `json:"whatsapp"`
	Country         string    `json:"country"`
	Language        string    `json:"language"`
	Days            string    `json:"days"`
	Timing          string    `json:"timing"`
	ClassType       string    `json:"classType"`
	ContactNumber   string    `json:"contactNumber"`
	AdditionalNotes string    `json:"additionalNotes"`
	Status          string    `json:"status"`
	RegisteredAt    time.Time `json:"registered_at"`
}

// View maps a stored registration to the dashboard shape.
func (r Registration) View() RegistrationView {
	return RegistrationView{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		WhatsApp:        r.Phone,
		Country:         r.Country,
		Language:        r.PreferredLanguage,
		Days:            r.PreferredDay,
		Timing:          r.PreferredTime,
		ClassType:       "General",
		ContactNumber:   r.Phone,
		AdditionalNotes: r.Notes,
		Status:          r.Status,
		RegisteredAt:    r.RegisteredAt,
	}
}
