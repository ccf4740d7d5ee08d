package payment

import (
	"sync"

	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	PaymentRecordedFunc  func(status domain.PaymentStatus)
	BookingConfirmedFunc func()
	InvoiceIssuedFunc    func()

	calls struct {
		PaymentRecorded []struct {
			Status domain.PaymentStatus
		}
		BookingConfirmed []struct{}
		InvoiceIssued []struct{}
	}
	lockPaymentRecorded  sync.RWMutex
	lockBookingConfirmed sync.RWMutex
	lockInvoiceIssued    sync.RWMutex
}

func (mock *recorderMock) PaymentRecorded(status domain.PaymentStatus) {
	if mock.PaymentRecordedFunc == nil {
		panic("recorderMock.PaymentRecordedFunc: method is nil but recorder.PaymentRecorded was just called")
	}
	callInfo := struct {
		Status domain.PaymentStatus
	}{
		Status: status,
	}
	mock.lockPaymentRecorded.Lock()
	mock.calls.PaymentRecorded = append(mock.calls.PaymentRecorded, callInfo)
	mock.lockPaymentRecorded.Unlock()
	mock.PaymentRecordedFunc(status)
}

func (mock *recorderMock) PaymentRecordedCalls() []struct {
	Status domain.PaymentStatus
} {
	var calls []struct {
		Status domain.PaymentStatus
	}
	mock.lockPaymentRecorded.RLock()
	calls = mock.calls.PaymentRecorded
	mock.lockPaymentRecorded.RUnlock()
	return calls
}

func (mock *recorderMock) BookingConfirmed() {
	if mock.BookingConfirmedFunc == nil {
		panic("recorderMock.BookingConfirmedFunc: method is nil but recorder.BookingConfirmed was just called")
	}
	callInfo := struct{}{}
	mock.lockBookingConfirmed.Lock()
	mock.calls.BookingConfirmed = append(mock.calls.BookingConfirmed, callInfo)
	mock.lockBookingConfirmed.Unlock()
	mock.BookingConfirmedFunc()
}

func (mock *recorderMock) BookingConfirmedCalls() []struct{} {
	var calls []struct{}
	mock.lockBookingConfirmed.RLock()
	calls = mock.calls.BookingConfirmed
	mock.lockBookingConfirmed.RUnlock()
	return calls
}

func (mock *recorderMock) InvoiceIssued() {
	if mock.InvoiceIssuedFunc == nil {
		panic("recorderMock.InvoiceIssuedFunc: method is nil but recorder.InvoiceIssued was just called")
	}
	callInfo := struct{}{}
	mock.lockInvoiceIssued.Lock()
	mock.calls.InvoiceIssued = append(mock.calls.InvoiceIssued, callInfo)
	mock.lockInvoiceIssued.Unlock()
	mock.InvoiceIssuedFunc()
}

func (mock *recorderMock) InvoiceIssuedCalls() []struct{} {
	var calls []struct{}
	mock.lockInvoiceIssued.RLock()
	calls = mock.calls.InvoiceIssued
	mock.lockInvoiceIssued.RUnlock()
	return calls
}
