package retention

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	PurgedFunc func(kind string, n int64)

	calls struct {
		Purged []struct {
			Kind string
			N    int64
		}
	}
	lockPurged sync.RWMutex
}

func (mock *recorderMock) Purged(kind string, n int64) {
	if mock.PurgedFunc == nil {
		panic("recorderMock.PurgedFunc: method is nil but recorder.Purged was just called")
	}
	callInfo := struct {
		Kind string
		N    int64
	}{
		Kind: kind,
		N:    n,
	}
	mock.lockPurged.Lock()
	mock.calls.Purged = append(mock.calls.Purged, callInfo)
	mock.lockPurged.Unlock()
	mock.PurgedFunc(kind, n)
}

func (mock *recorderMock) PurgedCalls() []struct {
	Kind string
	N    int64
} {
	var calls []struct {
		Kind string
		N    int64
	}
	mock.lockPurged.RLock()
	calls = mock.calls.Purged
	mock.lockPurged.RUnlock()
	return calls
}
