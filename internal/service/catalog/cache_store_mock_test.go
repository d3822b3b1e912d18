package catalog

import (
	"context"
	"sync"
	"time"
)

var _ cacheStore = &cacheStoreMock{}

type cacheStoreMock struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, keys ...string) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx   context.Context
			Key   string
			Value []byte
			Ttl   time.Duration
		}
		Delete []struct {
			Ctx  context.Context
			Keys []string
		}
	}
	lockGet    sync.RWMutex
	lockSet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *cacheStoreMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("cacheStoreMock.GetFunc: method is nil but cacheStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *cacheStoreMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *cacheStoreMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("cacheStoreMock.SetFunc: method is nil but cacheStore.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value []byte
		Ttl   time.Duration
	}{Ctx: ctx, Key: key, Value: value, Ttl: ttl}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value, ttl)
}

func (mock *cacheStoreMock) SetCalls() []struct {
	Ctx   context.Context
	Key   string
	Value []byte
	Ttl   time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *cacheStoreMock) Delete(ctx context.Context, keys ...string) error {
	if mock.DeleteFunc == nil {
		panic("cacheStoreMock.DeleteFunc: method is nil but cacheStore.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []string
	}{Ctx: ctx, Keys: keys}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, keys...)
}

func (mock *cacheStoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Keys []string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
