package appconfig

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ configRepo = &configRepoMock{}

type configRepoMock struct {
	GetFunc           func(ctx context.Context) (*domain.AppConfig, error)
	InsertDefaultFunc func(ctx context.Context, cfg domain.AppConfig) (bool, error)
	SaveFunc          func(ctx context.Context, cfg domain.AppConfig) (*domain.AppConfig, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		InsertDefault []struct {
			Ctx context.Context
			Cfg domain.AppConfig
		}
		Save []struct {
			Ctx context.Context
			Cfg domain.AppConfig
		}
	}
	lockGet           sync.RWMutex
	lockInsertDefault sync.RWMutex
	lockSave          sync.RWMutex
}

func (mock *configRepoMock) Get(ctx context.Context) (*domain.AppConfig, error) {
	if mock.GetFunc == nil {
		panic("configRepoMock.GetFunc: method is nil but configRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *configRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *configRepoMock) InsertDefault(ctx context.Context, cfg domain.AppConfig) (bool, error) {
	if mock.InsertDefaultFunc == nil {
		panic("configRepoMock.InsertDefaultFunc: method is nil but configRepo.InsertDefault was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.AppConfig
	}{Ctx: ctx, Cfg: cfg}
	mock.lockInsertDefault.Lock()
	mock.calls.InsertDefault = append(mock.calls.InsertDefault, callInfo)
	mock.lockInsertDefault.Unlock()
	return mock.InsertDefaultFunc(ctx, cfg)
}

func (mock *configRepoMock) InsertDefaultCalls() []struct {
	Ctx context.Context
	Cfg domain.AppConfig
} {
	mock.lockInsertDefault.RLock()
	calls := mock.calls.InsertDefault
	mock.lockInsertDefault.RUnlock()
	return calls
}

func (mock *configRepoMock) Save(ctx context.Context, cfg domain.AppConfig) (*domain.AppConfig, error) {
	if mock.SaveFunc == nil {
		panic("configRepoMock.SaveFunc: method is nil but configRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.AppConfig
	}{Ctx: ctx, Cfg: cfg}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, cfg)
}

func (mock *configRepoMock) SaveCalls() []struct {
	Ctx context.Context
	Cfg domain.AppConfig
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
