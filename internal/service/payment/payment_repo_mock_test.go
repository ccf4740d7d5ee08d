package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ paymentRepo = &paymentRepoMock{}

type paymentRepoMock struct {
	CreateFunc        func(ctx context.Context, p domain.Payment) error
	UpdateStateFunc   func(ctx context.Context, p domain.Payment) error
	GetForUserFunc    func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Payment, error)
	SumSucceededFunc  func(ctx context.Context, bookingID uuid.UUID) (int64, error)
	ListByBookingFunc func(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Payment
		}
		UpdateState []struct {
			Ctx context.Context
			P   domain.Payment
		}
		GetForUser []struct {
			Ctx    context.Context
			Id     uuid.UUID
			UserID uuid.UUID
		}
		SumSucceeded []struct {
			Ctx       context.Context
			BookingID uuid.UUID
		}
		ListByBooking []struct {
			Ctx       context.Context
			BookingID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockUpdateState   sync.RWMutex
	lockGetForUser    sync.RWMutex
	lockSumSucceeded  sync.RWMutex
	lockListByBooking sync.RWMutex
}

func (mock *paymentRepoMock) Create(ctx context.Context, p domain.Payment) error {
	if mock.CreateFunc == nil {
		panic("paymentRepoMock.CreateFunc: method is nil but paymentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Payment
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *paymentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Payment
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Payment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *paymentRepoMock) UpdateState(ctx context.Context, p domain.Payment) error {
	if mock.UpdateStateFunc == nil {
		panic("paymentRepoMock.UpdateStateFunc: method is nil but paymentRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Payment
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, p)
}

func (mock *paymentRepoMock) UpdateStateCalls() []struct {
	Ctx context.Context
	P   domain.Payment
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Payment
	}
	mock.lockUpdateState.RLock()
	calls = mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *paymentRepoMock) GetForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Payment, error) {
	if mock.GetForUserFunc == nil {
		panic("paymentRepoMock.GetForUserFunc: method is nil but paymentRepo.GetForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		Id:     id,
		UserID: userID,
	}
	mock.lockGetForUser.Lock()
	mock.calls.GetForUser = append(mock.calls.GetForUser, callInfo)
	mock.lockGetForUser.Unlock()
	return mock.GetForUserFunc(ctx, id, userID)
}

func (mock *paymentRepoMock) GetForUserCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		UserID uuid.UUID
	}
	mock.lockGetForUser.RLock()
	calls = mock.calls.GetForUser
	mock.lockGetForUser.RUnlock()
	return calls
}

func (mock *paymentRepoMock) SumSucceeded(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	if mock.SumSucceededFunc == nil {
		panic("paymentRepoMock.SumSucceededFunc: method is nil but paymentRepo.SumSucceeded was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}{
		Ctx:       ctx,
		BookingID: bookingID,
	}
	mock.lockSumSucceeded.Lock()
	mock.calls.SumSucceeded = append(mock.calls.SumSucceeded, callInfo)
	mock.lockSumSucceeded.Unlock()
	return mock.SumSucceededFunc(ctx, bookingID)
}

func (mock *paymentRepoMock) SumSucceededCalls() []struct {
	Ctx       context.Context
	BookingID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}
	mock.lockSumSucceeded.RLock()
	calls = mock.calls.SumSucceeded
	mock.lockSumSucceeded.RUnlock()
	return calls
}

func (mock *paymentRepoMock) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	if mock.ListByBookingFunc == nil {
		panic("paymentRepoMock.ListByBookingFunc: method is nil but paymentRepo.ListByBooking was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}{
		Ctx:       ctx,
		BookingID: bookingID,
	}
	mock.lockListByBooking.Lock()
	mock.calls.ListByBooking = append(mock.calls.ListByBooking, callInfo)
	mock.lockListByBooking.Unlock()
	return mock.ListByBookingFunc(ctx, bookingID)
}

func (mock *paymentRepoMock) ListByBookingCalls() []struct {
	Ctx       context.Context
	BookingID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}
	mock.lockListByBooking.RLock()
	calls = mock.calls.ListByBooking
	mock.lockListByBooking.RUnlock()
	return calls
}
