package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	CreateIfAbsentFunc     func(ctx context.Context, inv domain.Invoice) (bool, error)
	ExistsForBookingFunc   func(ctx context.Context, bookingID uuid.UUID) (bool, error)
	GetByNumberForUserFunc func(ctx context.Context, number string, userID uuid.UUID) (domain.Invoice, error)

	calls struct {
		CreateIfAbsent []struct {
			Ctx context.Context
			Inv domain.Invoice
		}
		ExistsForBooking []struct {
			Ctx       context.Context
			BookingID uuid.UUID
		}
		GetByNumberForUser []struct {
			Ctx    context.Context
			Number string
			UserID uuid.UUID
		}
	}
	lockCreateIfAbsent     sync.RWMutex
	lockExistsForBooking   sync.RWMutex
	lockGetByNumberForUser sync.RWMutex
}

func (mock *invoiceRepoMock) CreateIfAbsent(ctx context.Context, inv domain.Invoice) (bool, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("invoiceRepoMock.CreateIfAbsentFunc: method is nil but invoiceRepo.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv domain.Invoice
	}{
		Ctx: ctx,
		Inv: inv,
	}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, inv)
}

func (mock *invoiceRepoMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	Inv domain.Invoice
} {
	var calls []struct {
		Ctx context.Context
		Inv domain.Invoice
	}
	mock.lockCreateIfAbsent.RLock()
	calls = mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	if mock.ExistsForBookingFunc == nil {
		panic("invoiceRepoMock.ExistsForBookingFunc: method is nil but invoiceRepo.ExistsForBooking was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}{
		Ctx:       ctx,
		BookingID: bookingID,
	}
	mock.lockExistsForBooking.Lock()
	mock.calls.ExistsForBooking = append(mock.calls.ExistsForBooking, callInfo)
	mock.lockExistsForBooking.Unlock()
	return mock.ExistsForBookingFunc(ctx, bookingID)
}

func (mock *invoiceRepoMock) ExistsForBookingCalls() []struct {
	Ctx       context.Context
	BookingID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}
	mock.lockExistsForBooking.RLock()
	calls = mock.calls.ExistsForBooking
	mock.lockExistsForBooking.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) GetByNumberForUser(ctx context.Context, number string, userID uuid.UUID) (domain.Invoice, error) {
	if mock.GetByNumberForUserFunc == nil {
		panic("invoiceRepoMock.GetByNumberForUserFunc: method is nil but invoiceRepo.GetByNumberForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		Number: number,
		UserID: userID,
	}
	mock.lockGetByNumberForUser.Lock()
	mock.calls.GetByNumberForUser = append(mock.calls.GetByNumberForUser, callInfo)
	mock.lockGetByNumberForUser.Unlock()
	return mock.GetByNumberForUserFunc(ctx, number, userID)
}

func (mock *invoiceRepoMock) GetByNumberForUserCalls() []struct {
	Ctx    context.Context
	Number string
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		Number string
		UserID uuid.UUID
	}
	mock.lockGetByNumberForUser.RLock()
	calls = mock.calls.GetByNumberForUser
	mock.lockGetByNumberForUser.RUnlock()
	return calls
}
