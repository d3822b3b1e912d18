package rest

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ activeVoiceLister = &activeVoiceListerMock{}

type activeVoiceListerMock struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Voice, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
	}
	lockListActive sync.RWMutex
}

func (mock *activeVoiceListerMock) ListActive(ctx context.Context) ([]domain.Voice, error) {
	if mock.ListActiveFunc == nil {
		panic("activeVoiceListerMock.ListActiveFunc: method is nil but activeVoiceLister.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *activeVoiceListerMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
