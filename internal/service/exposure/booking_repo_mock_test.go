package exposure

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ bookingRepo = &bookingRepoMock{}

type bookingRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *bookingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	if mock.GetByIDFunc == nil {
		panic("bookingRepoMock.GetByIDFunc: method is nil but bookingRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookingRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
