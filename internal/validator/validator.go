package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/youtube"
)

const maxSurahNo = 114

var validRegistrationStatus = []interface{}{
	domain.RegistrationStatusPending,
	domain.RegistrationStatusConfirmed,
	domain.RegistrationStatusCancelled,
}

// Validator provides validation methods for API payloads and import rows.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateVideoInput validates a video create or replace payload.
func (v *Validator) ValidateVideoInput(in *domain.VideoInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&in.VideoURL,
			validation.Required.Error("video_url is required"),
			validation.By(youtubeURLRule),
		),
		validation.Field(&in.SurahNo,
			validation.Required.Error("surah_no is required"),
			validation.Min(1), validation.Max(maxSurahNo),
		),
		validation.Field(&in.StartingAyah, validation.Min(1)),
		validation.Field(&in.EndingAyah, validation.Min(1)),
	)
	if err != nil {
		return invalid(err)
	}

	if in.StartingAyah != nil && in.EndingAyah != nil && *in.EndingAyah < *in.StartingAyah {
		return invalid(validation.Errors{
			"ending_ayah": validation.NewError("ending_before_start", "ending_ayah must not be before starting_ayah"),
		})
	}
	return nil
}

// ValidateEBookInput validates an e-book create payload.
func (v *Validator) ValidateEBookInput(in *domain.EBookInput) error {
	return invalid(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.Filename, validation.Required.Error("filename is required")),
		validation.Field(&in.Pages, validation.Min(1)),
	))
}

// ValidateEBookPatch validates a partial e-book update. Present fields must
// not be blank.
func (v *Validator) ValidateEBookPatch(p *domain.EBookPatch) error {
	return invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty.Error("title cannot be blank")),
		validation.Field(&p.Pages, validation.Min(1)),
	))
}

// ValidateSurah validates a chapter definition.
func (v *Validator) ValidateSurah(s *domain.Surah) error {
	return invalid(validation.ValidateStruct(s,
		validation.Field(&s.ID,
			validation.Required.Error("id is required"),
			validation.Min(1), validation.Max(maxSurahNo),
		),
		validation.Field(&s.Name, validation.Required.Error("name is required")),
		validation.Field(&s.TotalVerses, validation.Min(1)),
	))
}

// ValidateRegistration validates the public sign-up form.
func (v *Validator) ValidateRegistration(in *domain.RegistrationInput) error {
	return invalid(validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&in.Phone, validation.Required.Error("phone is required")),
		validation.Field(&in.Language, validation.Required.Error("language is required")),
		validation.Field(&in.ClassType, validation.Required.Error("classType is required")),
		validation.Field(&in.Timing, validation.Required.Error("timing is required")),
		validation.Field(&in.Days, validation.Required.Error("days is required")),
		validation.Field(&in.ContactNumber, validation.Required.Error("contactNumber is required")),
	))
}

// ValidateStatusUpdate validates a registration status change.
func (v *Validator) ValidateStatusUpdate(u *domain.RegistrationStatusUpdate) error {
	return invalid(validation.ValidateStruct(u,
		validation.Field(&u.Status,
			validation.Required.Error("status is required"),
			validation.In(validRegistrationStatus...).Error("status must be pending, confirmed or cancelled"),
		),
	))
}

// ValidateCredentials validates a login payload.
func (v *Validator) ValidateCredentials(c *domain.Credentials) error {
	return invalid(validation.ValidateStruct(c,
		validation.Field(&c.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&c.Password, validation.Required.Error("password is required")),
	))
}

func youtubeURLRule(value interface{}) error {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	if _, found := youtube.ExtractVideoID(s); !found {
		return errors.New("not a recognizable YouTube link")
	}
	return nil
}

// invalid tags a validation failure with domain.ErrInvalidInput so handlers
// can map it to 400 while keeping the field errors reachable via errors.As.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}
