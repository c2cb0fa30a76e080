package model

import (
	"errors"
	"net/mail"
	"strings"
)

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type EventUpsertRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	Note  string `json:"note"`
}

// Validate trims the request in place and checks it against the form rules:
// title and date required, date a real calendar date, type one of the enum
// with blank defaulting to Other. Returns the first violation.
func (r *EventUpsertRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Date = strings.TrimSpace(r.Date)
	r.Type = strings.TrimSpace(r.Type)
	r.Note = strings.TrimSpace(r.Note)

	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Date == "" {
		return errors.New("date is required")
	}
	if !IsValidCalendarDate(r.Date) {
		return errors.New("date must be a valid calendar date in YYYY-MM-DD format")
	}
	if r.Type == "" {
		r.Type = string(Other)
	}
	if !KnownEventType(r.Type) {
		return errors.New("type must be one of birthday, anniversary, other")
	}

	return nil
}

func (r *EventUpsertRequest) EventType() EventType {
	return NormalizeEventType(r.Type)
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Gender = strings.TrimSpace(r.Gender)

	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email format is invalid")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if r.BirthDate != "" && !IsValidCalendarDate(r.BirthDate) {
		return errors.New("birth_date must be a valid calendar date in YYYY-MM-DD format")
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return errors.New("refresh_token is required")
	}
	return nil
}

type ProfileUpdateRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

func (r *ProfileUpdateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Gender = strings.TrimSpace(r.Gender)

	if r.BirthDate != "" && !IsValidCalendarDate(r.BirthDate) {
		return errors.New("birth_date must be a valid calendar date in YYYY-MM-DD format")
	}

	return nil
}

// UpcomingResponse carries the classified upcoming view. UrgentCount drives
// the client-side alert banner and vibration cue.
type UpcomingResponse struct {
	Events      []ClassifiedEvent `json:"events"`
	UrgentCount int               `json:"urgent_count"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
