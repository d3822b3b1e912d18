package license

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ licenseRepo = &licenseRepoMock{}

type licenseRepoMock struct {
	ListFunc             func(ctx context.Context, filter domain.LicenseFilter) ([]domain.License, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.License, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.License, error)
	CreateFunc           func(ctx context.Context, lic *domain.License) (*domain.License, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, upd domain.LicenseUpdate) (*domain.License, error)
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, active bool) (*domain.License, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.LicenseFilter
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Lic *domain.License
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			Upd domain.LicenseUpdate
		}
		SetActive []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Active bool
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList             sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSetActive        sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *licenseRepoMock) List(ctx context.Context, filter domain.LicenseFilter) ([]domain.License, error) {
	if mock.ListFunc == nil {
		panic("licenseRepoMock.ListFunc: method is nil but licenseRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.LicenseFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *licenseRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.LicenseFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *licenseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	if mock.GetByIDFunc == nil {
		panic("licenseRepoMock.GetByIDFunc: method is nil but licenseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *licenseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *licenseRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("licenseRepoMock.GetByIDForUpdateFunc: method is nil but licenseRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *licenseRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *licenseRepoMock) Create(ctx context.Context, lic *domain.License) (*domain.License, error) {
	if mock.CreateFunc == nil {
		panic("licenseRepoMock.CreateFunc: method is nil but licenseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lic *domain.License
	}{Ctx: ctx, Lic: lic}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, lic)
}

func (mock *licenseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Lic *domain.License
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *licenseRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.LicenseUpdate) (*domain.License, error) {
	if mock.UpdateFunc == nil {
		panic("licenseRepoMock.UpdateFunc: method is nil but licenseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Upd domain.LicenseUpdate
	}{Ctx: ctx, Id: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *licenseRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Upd domain.LicenseUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *licenseRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.License, error) {
	if mock.SetActiveFunc == nil {
		panic("licenseRepoMock.SetActiveFunc: method is nil but licenseRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Active bool
	}{Ctx: ctx, Id: id, Active: active}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *licenseRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *licenseRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("licenseRepoMock.DeleteFunc: method is nil but licenseRepo.Delete was just called")
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

func (mock *licenseRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
