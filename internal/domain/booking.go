package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusDraft      BookingStatus = "Draft"
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "InProgress"
	BookingStatusDone       BookingStatus = "Done"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// BookingType distinguishes how a booking was composed from the catalog.
type BookingType string

const (
	BookingTypeGeneral  BookingType = "General"
	BookingTypePackage  BookingType = "Package"
	BookingTypeSpecific BookingType = "Specific"
)

// Booking is the aggregate that contacts, payments and invoices refer to.
type Booking struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	OwnerUsername    string
	Type             BookingType
	Status           BookingStatus
	QuotedPriceCents *int64
	CreatedAt        time.Time
}

// IsPayable reports whether the booking has a positive quoted price.
func (b Booking) IsPayable() bool {
	return b.QuotedPriceCents != nil && *b.QuotedPriceCents > 0
}

// IsFullyPaid reports whether paidCents covers the quoted price.
// A booking without a quote is never fully paid.
func (b Booking) IsFullyPaid(paidCents int64) bool {
	return b.IsPayable() && paidCents >= *b.QuotedPriceCents
}

// RemainingCents returns what is still owed given paidCents (never negative).
func (b Booking) RemainingCents(paidCents int64) int64 {
	if !b.IsPayable() {
		return 0
	}
	rest := *b.QuotedPriceCents - paidCents
	if rest < 0 {
		return 0
	}
	return rest
}
