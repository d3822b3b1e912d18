package backup

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ apiKeyLister = &apiKeyListerMock{}

type apiKeyListerMock struct {
	ListFunc func(ctx context.Context) ([]domain.APIKey, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *apiKeyListerMock) List(ctx context.Context) ([]domain.APIKey, error) {
	if mock.ListFunc == nil {
		panic("apiKeyListerMock.ListFunc: method is nil but apiKeyLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *apiKeyListerMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
