package ledger

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ licenseRepo = &licenseRepoMock{}

type licenseRepoMock struct {
	GetByKeyForUpdateFunc func(ctx context.Context, key string) (*domain.License, error)
	GetByIDForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.License, error)
	BindDeviceFunc        func(ctx context.Context, id uuid.UUID, deviceID string) (*domain.License, error)
	TouchFunc             func(ctx context.Context, id uuid.UUID) (*domain.License, error)
	SetCreditFunc         func(ctx context.Context, id uuid.UUID, credit int64) (*domain.License, error)

	calls struct {
		GetByKeyForUpdate []struct {
			Ctx context.Context
			Key string
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		BindDevice []struct {
			Ctx      context.Context
			Id       uuid.UUID
			DeviceID string
		}
		Touch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetCredit []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Credit int64
		}
	}
	lockGetByKeyForUpdate sync.RWMutex
	lockGetByIDForUpdate  sync.RWMutex
	lockBindDevice        sync.RWMutex
	lockTouch             sync.RWMutex
	lockSetCredit         sync.RWMutex
}

func (mock *licenseRepoMock) GetByKeyForUpdate(ctx context.Context, key string) (*domain.License, error) {
	if mock.GetByKeyForUpdateFunc == nil {
		panic("licenseRepoMock.GetByKeyForUpdateFunc: method is nil but licenseRepo.GetByKeyForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGetByKeyForUpdate.Lock()
	mock.calls.GetByKeyForUpdate = append(mock.calls.GetByKeyForUpdate, callInfo)
	mock.lockGetByKeyForUpdate.Unlock()
	return mock.GetByKeyForUpdateFunc(ctx, key)
}

func (mock *licenseRepoMock) GetByKeyForUpdateCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGetByKeyForUpdate.RLock()
	calls := mock.calls.GetByKeyForUpdate
	mock.lockGetByKeyForUpdate.RUnlock()
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

func (mock *licenseRepoMock) BindDevice(ctx context.Context, id uuid.UUID, deviceID string) (*domain.License, error) {
	if mock.BindDeviceFunc == nil {
		panic("licenseRepoMock.BindDeviceFunc: method is nil but licenseRepo.BindDevice was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		DeviceID string
	}{Ctx: ctx, Id: id, DeviceID: deviceID}
	mock.lockBindDevice.Lock()
	mock.calls.BindDevice = append(mock.calls.BindDevice, callInfo)
	mock.lockBindDevice.Unlock()
	return mock.BindDeviceFunc(ctx, id, deviceID)
}

func (mock *licenseRepoMock) BindDeviceCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	DeviceID string
} {
	mock.lockBindDevice.RLock()
	calls := mock.calls.BindDevice
	mock.lockBindDevice.RUnlock()
	return calls
}

func (mock *licenseRepoMock) Touch(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	if mock.TouchFunc == nil {
		panic("licenseRepoMock.TouchFunc: method is nil but licenseRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id)
}

func (mock *licenseRepoMock) TouchCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *licenseRepoMock) SetCredit(ctx context.Context, id uuid.UUID, credit int64) (*domain.License, error) {
	if mock.SetCreditFunc == nil {
		panic("licenseRepoMock.SetCreditFunc: method is nil but licenseRepo.SetCredit was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Credit int64
	}{Ctx: ctx, Id: id, Credit: credit}
	mock.lockSetCredit.Lock()
	mock.calls.SetCredit = append(mock.calls.SetCredit, callInfo)
	mock.lockSetCredit.Unlock()
	return mock.SetCreditFunc(ctx, id, credit)
}

func (mock *licenseRepoMock) SetCreditCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Credit int64
} {
	mock.lockSetCredit.RLock()
	calls := mock.calls.SetCredit
	mock.lockSetCredit.RUnlock()
	return calls
}
