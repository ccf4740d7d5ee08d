package exposure

import (
	"context"
	"sync"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, msgs ...domain.Message) error

	calls struct {
		Publish []struct {
			Ctx  context.Context
			Msgs []domain.Message
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, msgs ...domain.Message) error {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Msgs []domain.Message
	}{
		Ctx:  ctx,
		Msgs: msgs,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, msgs...)
}

func (mock *publisherMock) PublishCalls() []struct {
	Ctx  context.Context
	Msgs []domain.Message
} {
	var calls []struct {
		Ctx  context.Context
		Msgs []domain.Message
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
