package keypool

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ apiKeyRepo = &apiKeyRepoMock{}

type apiKeyRepoMock struct {
	FirstActiveFunc    func(ctx context.Context) (*domain.APIKey, error)
	SetStatusByKeyFunc func(ctx context.Context, apiKey string, status domain.APIKeyStatus) error
	ListFunc           func(ctx context.Context) ([]domain.APIKey, error)
	CreateFunc         func(ctx context.Context, k domain.APIKey) (*domain.APIKey, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, apiKey *string, status *domain.APIKeyStatus) (*domain.APIKey, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error

	calls struct {
		FirstActive []struct {
			Ctx context.Context
		}
		SetStatusByKey []struct {
			Ctx    context.Context
			ApiKey string
			Status domain.APIKeyStatus
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			K   domain.APIKey
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			ApiKey *string
			Status *domain.APIKeyStatus
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockFirstActive    sync.RWMutex
	lockSetStatusByKey sync.RWMutex
	lockList           sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *apiKeyRepoMock) FirstActive(ctx context.Context) (*domain.APIKey, error) {
	if mock.FirstActiveFunc == nil {
		panic("apiKeyRepoMock.FirstActiveFunc: method is nil but apiKeyRepo.FirstActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFirstActive.Lock()
	mock.calls.FirstActive = append(mock.calls.FirstActive, callInfo)
	mock.lockFirstActive.Unlock()
	return mock.FirstActiveFunc(ctx)
}

func (mock *apiKeyRepoMock) FirstActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockFirstActive.RLock()
	calls := mock.calls.FirstActive
	mock.lockFirstActive.RUnlock()
	return calls
}

func (mock *apiKeyRepoMock) SetStatusByKey(ctx context.Context, apiKey string, status domain.APIKeyStatus) error {
	if mock.SetStatusByKeyFunc == nil {
		panic("apiKeyRepoMock.SetStatusByKeyFunc: method is nil but apiKeyRepo.SetStatusByKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ApiKey string
		Status domain.APIKeyStatus
	}{Ctx: ctx, ApiKey: apiKey, Status: status}
	mock.lockSetStatusByKey.Lock()
	mock.calls.SetStatusByKey = append(mock.calls.SetStatusByKey, callInfo)
	mock.lockSetStatusByKey.Unlock()
	return mock.SetStatusByKeyFunc(ctx, apiKey, status)
}

func (mock *apiKeyRepoMock) SetStatusByKeyCalls() []struct {
	Ctx    context.Context
	ApiKey string
	Status domain.APIKeyStatus
} {
	mock.lockSetStatusByKey.RLock()
	calls := mock.calls.SetStatusByKey
	mock.lockSetStatusByKey.RUnlock()
	return calls
}

func (mock *apiKeyRepoMock) List(ctx context.Context) ([]domain.APIKey, error) {
	if mock.ListFunc == nil {
		panic("apiKeyRepoMock.ListFunc: method is nil but apiKeyRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *apiKeyRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *apiKeyRepoMock) Create(ctx context.Context, k domain.APIKey) (*domain.APIKey, error) {
	if mock.CreateFunc == nil {
		panic("apiKeyRepoMock.CreateFunc: method is nil but apiKeyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		K   domain.APIKey
	}{Ctx: ctx, K: k}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, k)
}

func (mock *apiKeyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	K   domain.APIKey
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *apiKeyRepoMock) Update(ctx context.Context, id uuid.UUID, apiKey *string, status *domain.APIKeyStatus) (*domain.APIKey, error) {
	if mock.UpdateFunc == nil {
		panic("apiKeyRepoMock.UpdateFunc: method is nil but apiKeyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		ApiKey *string
		Status *domain.APIKeyStatus
	}{Ctx: ctx, Id: id, ApiKey: apiKey, Status: status}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, apiKey, status)
}

func (mock *apiKeyRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	ApiKey *string
	Status *domain.APIKeyStatus
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *apiKeyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("apiKeyRepoMock.DeleteFunc: method is nil but apiKeyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *apiKeyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
