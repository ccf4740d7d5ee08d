package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ exposureService = &exposureServiceMock{}

type exposureServiceMock struct {
	CheckInFunc          func(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ReportPositiveFunc   func(ctx context.Context) (int, error)
	HasActiveAlertsFunc  func(ctx context.Context) (bool, error)
	ListActiveAlertsFunc func(ctx context.Context) ([]domain.ExposureAlert, error)
	AcknowledgeAllFunc   func(ctx context.Context) (int64, error)

	calls struct {
		CheckIn []struct {
			Ctx       context.Context
			BookingID uuid.UUID
		}
		ReportPositive []struct {
			Ctx context.Context
		}
		HasActiveAlerts []struct {
			Ctx context.Context
		}
		ListActiveAlerts []struct {
			Ctx context.Context
		}
		AcknowledgeAll []struct {
			Ctx context.Context
		}
	}
	lockCheckIn          sync.RWMutex
	lockReportPositive   sync.RWMutex
	lockHasActiveAlerts  sync.RWMutex
	lockListActiveAlerts sync.RWMutex
	lockAcknowledgeAll   sync.RWMutex
}

func (mock *exposureServiceMock) CheckIn(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	if mock.CheckInFunc == nil {
		panic("exposureServiceMock.CheckInFunc: method is nil but exposureService.CheckIn was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}{
		Ctx:       ctx,
		BookingID: bookingID,
	}
	mock.lockCheckIn.Lock()
	mock.calls.CheckIn = append(mock.calls.CheckIn, callInfo)
	mock.lockCheckIn.Unlock()
	return mock.CheckInFunc(ctx, bookingID)
}

func (mock *exposureServiceMock) CheckInCalls() []struct {
	Ctx       context.Context
	BookingID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		BookingID uuid.UUID
	}
	mock.lockCheckIn.RLock()
	calls = mock.calls.CheckIn
	mock.lockCheckIn.RUnlock()
	return calls
}

func (mock *exposureServiceMock) ReportPositive(ctx context.Context) (int, error) {
	if mock.ReportPositiveFunc == nil {
		panic("exposureServiceMock.ReportPositiveFunc: method is nil but exposureService.ReportPositive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReportPositive.Lock()
	mock.calls.ReportPositive = append(mock.calls.ReportPositive, callInfo)
	mock.lockReportPositive.Unlock()
	return mock.ReportPositiveFunc(ctx)
}

func (mock *exposureServiceMock) ReportPositiveCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockReportPositive.RLock()
	calls = mock.calls.ReportPositive
	mock.lockReportPositive.RUnlock()
	return calls
}

func (mock *exposureServiceMock) HasActiveAlerts(ctx context.Context) (bool, error) {
	if mock.HasActiveAlertsFunc == nil {
		panic("exposureServiceMock.HasActiveAlertsFunc: method is nil but exposureService.HasActiveAlerts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockHasActiveAlerts.Lock()
	mock.calls.HasActiveAlerts = append(mock.calls.HasActiveAlerts, callInfo)
	mock.lockHasActiveAlerts.Unlock()
	return mock.HasActiveAlertsFunc(ctx)
}

func (mock *exposureServiceMock) HasActiveAlertsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockHasActiveAlerts.RLock()
	calls = mock.calls.HasActiveAlerts
	mock.lockHasActiveAlerts.RUnlock()
	return calls
}

func (mock *exposureServiceMock) ListActiveAlerts(ctx context.Context) ([]domain.ExposureAlert, error) {
	if mock.ListActiveAlertsFunc == nil {
		panic("exposureServiceMock.ListActiveAlertsFunc: method is nil but exposureService.ListActiveAlerts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActiveAlerts.Lock()
	mock.calls.ListActiveAlerts = append(mock.calls.ListActiveAlerts, callInfo)
	mock.lockListActiveAlerts.Unlock()
	return mock.ListActiveAlertsFunc(ctx)
}

func (mock *exposureServiceMock) ListActiveAlertsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListActiveAlerts.RLock()
	calls = mock.calls.ListActiveAlerts
	mock.lockListActiveAlerts.RUnlock()
	return calls
}

func (mock *exposureServiceMock) AcknowledgeAll(ctx context.Context) (int64, error) {
	if mock.AcknowledgeAllFunc == nil {
		panic("exposureServiceMock.AcknowledgeAllFunc: method is nil but exposureService.AcknowledgeAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAcknowledgeAll.Lock()
	mock.calls.AcknowledgeAll = append(mock.calls.AcknowledgeAll, callInfo)
	mock.lockAcknowledgeAll.Unlock()
	return mock.AcknowledgeAllFunc(ctx)
}

func (mock *exposureServiceMock) AcknowledgeAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAcknowledgeAll.RLock()
	calls = mock.calls.AcknowledgeAll
	mock.lockAcknowledgeAll.RUnlock()
	return calls
}
