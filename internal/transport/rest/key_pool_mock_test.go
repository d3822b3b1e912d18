package rest

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ keyPool = &keyPoolMock{}

type keyPoolMock struct {
	AcquireFunc    func(ctx context.Context) (*domain.APIKey, error)
	ReleaseFunc    func(ctx context.Context) error
	DeactivateFunc func(ctx context.Context, apiKey string) error

	calls struct {
		Acquire []struct {
			Ctx context.Context
		}
		Release []struct {
			Ctx context.Context
		}
		Deactivate []struct {
			Ctx    context.Context
			ApiKey string
		}
	}
	lockAcquire    sync.RWMutex
	lockRelease    sync.RWMutex
	lockDeactivate sync.RWMutex
}

func (mock *keyPoolMock) Acquire(ctx context.Context) (*domain.APIKey, error) {
	if mock.AcquireFunc == nil {
		panic("keyPoolMock.AcquireFunc: method is nil but keyPool.Acquire was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAcquire.Lock()
	mock.calls.Acquire = append(mock.calls.Acquire, callInfo)
	mock.lockAcquire.Unlock()
	return mock.AcquireFunc(ctx)
}

func (mock *keyPoolMock) AcquireCalls() []struct {
	Ctx context.Context
} {
	mock.lockAcquire.RLock()
	calls := mock.calls.Acquire
	mock.lockAcquire.RUnlock()
	return calls
}

func (mock *keyPoolMock) Release(ctx context.Context) error {
	if mock.ReleaseFunc == nil {
		panic("keyPoolMock.ReleaseFunc: method is nil but keyPool.Release was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx)
}

func (mock *keyPoolMock) ReleaseCalls() []struct {
	Ctx context.Context
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *keyPoolMock) Deactivate(ctx context.Context, apiKey string) error {
	if mock.DeactivateFunc == nil {
		panic("keyPoolMock.DeactivateFunc: method is nil but keyPool.Deactivate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ApiKey string
	}{Ctx: ctx, ApiKey: apiKey}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, apiKey)
}

func (mock *keyPoolMock) DeactivateCalls() []struct {
	Ctx    context.Context
	ApiKey string
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}
