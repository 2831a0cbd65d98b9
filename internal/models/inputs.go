package models

import (
	"strings"
	"time"
)

// Update inputs use pointer fields: nil leaves the column untouched.

type CreateClubInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OrganizerID string `json:"organizerId"`
	Registered  bool   `json:"registered"`
}

type UpdateClubInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Registered  *bool   `json:"registered"`
}

type CreateUserInput struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phoneNumber"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	PasswordHash string  `json:"-"`
}

type UpdateUserInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
}

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateEventInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	ClubID      string    `json:"clubId"`
}

type UpdateEventInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Date        *time.Time `json:"date"`
	ClubID      *string    `json:"clubId"`
}

func (in UpdateClubInput) Columns() map[string]any {
	cols := map[string]any{}
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.Registered != nil {
		cols["registered"] = *in.Registered
	}
	return cols
}

func (in UpdateUserInput) Columns() map[string]any {
	cols := map[string]any{}
	if in.Username != nil {
		cols["username"] = *in.Username
	}
	if in.Email != nil {
		cols["email"] = *in.Email
	}
	if in.PhoneNumber != nil {
		// A blank number clears the column back to NULL.
		if phone := strings.TrimSpace(*in.PhoneNumber); phone != "" {
			cols["phone_number"] = phone
		} else {
			cols["phone_number"] = nil
		}
	}
	if in.FirstName != nil {
		cols["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		cols["last_name"] = *in.LastName
	}
	return cols
}

func (in UpdateEventInput) Columns() map[string]any {
	cols := map[string]any{}
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.Location != nil {
		cols["location"] = *in.Location
	}
	if in.Date != nil {
		cols["date"] = *in.Date
	}
	if in.ClubID != nil {
		cols["club_id"] = *in.ClubID
	}
	return cols
}
