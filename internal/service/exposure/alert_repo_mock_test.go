package exposure

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ alertRepo = &alertRepoMock{}

type alertRepoMock struct {
	CreateBatchFunc       func(ctx context.Context, alerts []domain.ExposureAlert) (int64, error)
	HasActiveFunc         func(ctx context.Context, user uuid.UUID, now time.Time) (bool, error)
	ListActiveFunc        func(ctx context.Context, user uuid.UUID, now time.Time) ([]domain.ExposureAlert, error)
	AcknowledgeActiveFunc func(ctx context.Context, user uuid.UUID, now time.Time) (int64, error)

	calls struct {
		CreateBatch []struct {
			Ctx    context.Context
			Alerts []domain.ExposureAlert
		}
		HasActive []struct {
			Ctx  context.Context
			User uuid.UUID
			Now  time.Time
		}
		ListActive []struct {
			Ctx  context.Context
			User uuid.UUID
			Now  time.Time
		}
		AcknowledgeActive []struct {
			Ctx  context.Context
			User uuid.UUID
			Now  time.Time
		}
	}
	lockCreateBatch       sync.RWMutex
	lockHasActive         sync.RWMutex
	lockListActive        sync.RWMutex
	lockAcknowledgeActive sync.RWMutex
}

func (mock *alertRepoMock) CreateBatch(ctx context.Context, alerts []domain.ExposureAlert) (int64, error) {
	if mock.CreateBatchFunc == nil {
		panic("alertRepoMock.CreateBatchFunc: method is nil but alertRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Alerts []domain.ExposureAlert
	}{
		Ctx:    ctx,
		Alerts: alerts,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, alerts)
}

func (mock *alertRepoMock) CreateBatchCalls() []struct {
	Ctx    context.Context
	Alerts []domain.ExposureAlert
} {
	var calls []struct {
		Ctx    context.Context
		Alerts []domain.ExposureAlert
	}
	mock.lockCreateBatch.RLock()
	calls = mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *alertRepoMock) HasActive(ctx context.Context, user uuid.UUID, now time.Time) (bool, error) {
	if mock.HasActiveFunc == nil {
		panic("alertRepoMock.HasActiveFunc: method is nil but alertRepo.HasActive was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}{
		Ctx:  ctx,
		User: user,
		Now:  now,
	}
	mock.lockHasActive.Lock()
	mock.calls.HasActive = append(mock.calls.HasActive, callInfo)
	mock.lockHasActive.Unlock()
	return mock.HasActiveFunc(ctx, user, now)
}

func (mock *alertRepoMock) HasActiveCalls() []struct {
	Ctx  context.Context
	User uuid.UUID
	Now  time.Time
} {
	var calls []struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}
	mock.lockHasActive.RLock()
	calls = mock.calls.HasActive
	mock.lockHasActive.RUnlock()
	return calls
}

func (mock *alertRepoMock) ListActive(ctx context.Context, user uuid.UUID, now time.Time) ([]domain.ExposureAlert, error) {
	if mock.ListActiveFunc == nil {
		panic("alertRepoMock.ListActiveFunc: method is nil but alertRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}{
		Ctx:  ctx,
		User: user,
		Now:  now,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, user, now)
}

func (mock *alertRepoMock) ListActiveCalls() []struct {
	Ctx  context.Context
	User uuid.UUID
	Now  time.Time
} {
	var calls []struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *alertRepoMock) AcknowledgeActive(ctx context.Context, user uuid.UUID, now time.Time) (int64, error) {
	if mock.AcknowledgeActiveFunc == nil {
		panic("alertRepoMock.AcknowledgeActiveFunc: method is nil but alertRepo.AcknowledgeActive was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}{
		Ctx:  ctx,
		User: user,
		Now:  now,
	}
	mock.lockAcknowledgeActive.Lock()
	mock.calls.AcknowledgeActive = append(mock.calls.AcknowledgeActive, callInfo)
	mock.lockAcknowledgeActive.Unlock()
	return mock.AcknowledgeActiveFunc(ctx, user, now)
}

func (mock *alertRepoMock) AcknowledgeActiveCalls() []struct {
	Ctx  context.Context
	User uuid.UUID
	Now  time.Time
} {
	var calls []struct {
		Ctx  context.Context
		User uuid.UUID
		Now  time.Time
	}
	mock.lockAcknowledgeActive.RLock()
	calls = mock.calls.AcknowledgeActive
	mock.lockAcknowledgeActive.RUnlock()
	return calls
}
