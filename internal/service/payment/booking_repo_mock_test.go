package payment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ bookingRepo = &bookingRepoMock{}

type bookingRepoMock struct {
	GetForUserFunc       func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Booking, error)
	LockForUserFunc      func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Booking, error)
	LockFunc             func(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	TransitionStatusFunc func(ctx context.Context, id uuid.UUID, from domain.BookingStatus, to domain.BookingStatus, now time.Time) (bool, error)

	calls struct {
		GetForUser []struct {
			Ctx    context.Context
			Id     uuid.UUID
			UserID uuid.UUID
		}
		LockForUser []struct {
			Ctx    context.Context
			Id     uuid.UUID
			UserID uuid.UUID
		}
		Lock []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		TransitionStatus []struct {
			Ctx  context.Context
			Id   uuid.UUID
			From domain.BookingStatus
			To   domain.BookingStatus
			Now  time.Time
		}
	}
	lockGetForUser       sync.RWMutex
	lockLockForUser      sync.RWMutex
	lockLock             sync.RWMutex
	lockTransitionStatus sync.RWMutex
}

func (mock *bookingRepoMock) GetForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Booking, error) {
	if mock.GetForUserFunc == nil {
		panic("bookingRepoMock.GetForUserFunc: method is nil but bookingRepo.GetForUser was just called")
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

func (mock *bookingRepoMock) GetForUserCalls() []struct {
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

func (mock *bookingRepoMock) LockForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (domain.Booking, error) {
	if mock.LockForUserFunc == nil {
		panic("bookingRepoMock.LockForUserFunc: method is nil but bookingRepo.LockForUser was just called")
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
	mock.lockLockForUser.Lock()
	mock.calls.LockForUser = append(mock.calls.LockForUser, callInfo)
	mock.lockLockForUser.Unlock()
	return mock.LockForUserFunc(ctx, id, userID)
}

func (mock *bookingRepoMock) LockForUserCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		UserID uuid.UUID
	}
	mock.lockLockForUser.RLock()
	calls = mock.calls.LockForUser
	mock.lockLockForUser.RUnlock()
	return calls
}

func (mock *bookingRepoMock) Lock(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	if mock.LockFunc == nil {
		panic("bookingRepoMock.LockFunc: method is nil but bookingRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, id)
}

func (mock *bookingRepoMock) LockCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockLock.RLock()
	calls = mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *bookingRepoMock) TransitionStatus(ctx context.Context, id uuid.UUID, from domain.BookingStatus, to domain.BookingStatus, now time.Time) (bool, error) {
	if mock.TransitionStatusFunc == nil {
		panic("bookingRepoMock.TransitionStatusFunc: method is nil but bookingRepo.TransitionStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		From domain.BookingStatus
		To   domain.BookingStatus
		Now  time.Time
	}{
		Ctx:  ctx,
		Id:   id,
		From: from,
		To:   to,
		Now:  now,
	}
	mock.lockTransitionStatus.Lock()
	mock.calls.TransitionStatus = append(mock.calls.TransitionStatus, callInfo)
	mock.lockTransitionStatus.Unlock()
	return mock.TransitionStatusFunc(ctx, id, from, to, now)
}

func (mock *bookingRepoMock) TransitionStatusCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	From domain.BookingStatus
	To   domain.BookingStatus
	Now  time.Time
} {
	var calls []struct {
		Ctx  context.Context
		Id   uuid.UUID
		From domain.BookingStatus
		To   domain.BookingStatus
		Now  time.Time
	}
	mock.lockTransitionStatus.RLock()
	calls = mock.calls.TransitionStatus
	mock.lockTransitionStatus.RUnlock()
	return calls
}
