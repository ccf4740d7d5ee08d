package payment

import (
	"context"
	"sync"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ provider = &providerMock{}

type providerMock struct {
	NameFunc         func() string
	CreateIntentFunc func(ctx context.Context, p domain.Payment) (domain.ProviderResult, error)
	FetchStatusFunc  func(ctx context.Context, p domain.Payment) (domain.ProviderResult, error)

	calls struct {
		Name []struct{}
		CreateIntent []struct {
			Ctx context.Context
			P   domain.Payment
		}
		FetchStatus []struct {
			Ctx context.Context
			P   domain.Payment
		}
	}
	lockName         sync.RWMutex
	lockCreateIntent sync.RWMutex
	lockFetchStatus  sync.RWMutex
}

func (mock *providerMock) Name() string {
	if mock.NameFunc == nil {
		panic("providerMock.NameFunc: method is nil but provider.Name was just called")
	}
	callInfo := struct{}{}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, callInfo)
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *providerMock) NameCalls() []struct{} {
	var calls []struct{}
	mock.lockName.RLock()
	calls = mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *providerMock) CreateIntent(ctx context.Context, p domain.Payment) (domain.ProviderResult, error) {
	if mock.CreateIntentFunc == nil {
		panic("providerMock.CreateIntentFunc: method is nil but provider.CreateIntent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Payment
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreateIntent.Lock()
	mock.calls.CreateIntent = append(mock.calls.CreateIntent, callInfo)
	mock.lockCreateIntent.Unlock()
	return mock.CreateIntentFunc(ctx, p)
}

func (mock *providerMock) CreateIntentCalls() []struct {
	Ctx context.Context
	P   domain.Payment
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Payment
	}
	mock.lockCreateIntent.RLock()
	calls = mock.calls.CreateIntent
	mock.lockCreateIntent.RUnlock()
	return calls
}

func (mock *providerMock) FetchStatus(ctx context.Context, p domain.Payment) (domain.ProviderResult, error) {
	if mock.FetchStatusFunc == nil {
		panic("providerMock.FetchStatusFunc: method is nil but provider.FetchStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Payment
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockFetchStatus.Lock()
	mock.calls.FetchStatus = append(mock.calls.FetchStatus, callInfo)
	mock.lockFetchStatus.Unlock()
	return mock.FetchStatusFunc(ctx, p)
}

func (mock *providerMock) FetchStatusCalls() []struct {
	Ctx context.Context
	P   domain.Payment
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Payment
	}
	mock.lockFetchStatus.RLock()
	calls = mock.calls.FetchStatus
	mock.lockFetchStatus.RUnlock()
	return calls
}
