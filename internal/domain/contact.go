package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// ContactEvent is a pairwise, in-person contact between two users.
// UserA always orders before UserB (see CompareUserIDs).
type ContactEvent struct {
	ID         uuid.UUID
	UserA      uuid.UUID
	UserB      uuid.UUID
	OccurredAt time.Time
	BookingID  *uuid.UUID
}

// CompareUserIDs is the total order over user identities used for canonical
// contact ordering. It matches PostgreSQL's uuid comparison (bytewise).
func CompareUserIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// NewContactEvent builds a contact in canonical order.
// Returns ErrInvalidContact when both participants are the same user.
func NewContactEvent(userA, userB uuid.UUID, occurredAt time.Time, bookingID *uuid.UUID) (ContactEvent, error) {
	if userA == uuid.Nil || userB == uuid.Nil {
		return ContactEvent{}, NewValidationError("user_id", "required")
	}
	if userA == userB {
		return ContactEvent{}, ErrInvalidContact
	}
	if CompareUserIDs(userA, userB) > 0 {
		userA, userB = userB, userA
	}

	return ContactEvent{
		ID:         uuid.New(),
		UserA:      userA,
		UserB:      userB,
		OccurredAt: occurredAt,
		BookingID:  bookingID,
	}, nil
}

// Involves reports whether user is one of the participants.
func (c ContactEvent) Involves(user uuid.UUID) bool {
	return c.UserA == user || c.UserB == user
}

// Other returns the participant that is not user. When user is not a
// participant, UserB is returned.
func (c ContactEvent) Other(user uuid.UUID) uuid.UUID {
	if c.UserB == user {
		return c.UserA
	}
	return c.UserB
}

// DistinctContacts returns the distinct other participants across contacts,
// in first-seen order. The reporter never appears in the result.
func DistinctContacts(contacts []ContactEvent, reporter uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(contacts))
	others := make([]uuid.UUID, 0, len(contacts))

	for _, c := range contacts {
		if !c.Involves(reporter) {
			continue
		}
		other := c.Other(reporter)
		if other == reporter {
			continue
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		others = append(others, other)
	}

	return others
}
