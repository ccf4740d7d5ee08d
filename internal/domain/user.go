package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account managed by the external identity provider.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Profile holds per-user preferences and consents.
type Profile struct {
	UserID            uuid.UUID
	Name              string
	Language          string
	ConsentMarketing  bool
	ConsentHealthData bool
	ConsentVersion    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultProfile returns the profile created on first access.
func DefaultProfile(userID uuid.UUID, now time.Time) Profile {
	return Profile{
		UserID:         userID,
		ConsentVersion: "v1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
