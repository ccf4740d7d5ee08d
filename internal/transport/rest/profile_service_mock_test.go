package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetOrCreateFunc func(ctx context.Context) (domain.Profile, error)

	calls struct {
		GetOrCreate []struct {
			Ctx context.Context
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *profileServiceMock) GetOrCreate(ctx context.Context) (domain.Profile, error) {
	if mock.GetOrCreateFunc == nil {
		panic("profileServiceMock.GetOrCreateFunc: method is nil but profileService.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx)
}

func (mock *profileServiceMock) GetOrCreateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetOrCreate.RLock()
	calls = mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
