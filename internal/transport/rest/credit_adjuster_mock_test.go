package rest

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"github.com/heartmarshall/amulet-backend/internal/service/ledger"
	"sync"
)

var _ creditAdjuster = &creditAdjusterMock{}

type creditAdjusterMock struct {
	AdjustCreditFunc func(ctx context.Context, input ledger.AdjustCreditInput) (*domain.License, error)

	calls struct {
		AdjustCredit []struct {
			Ctx   context.Context
			Input ledger.AdjustCreditInput
		}
	}
	lockAdjustCredit sync.RWMutex
}

func (mock *creditAdjusterMock) AdjustCredit(ctx context.Context, input ledger.AdjustCreditInput) (*domain.License, error) {
	if mock.AdjustCreditFunc == nil {
		panic("creditAdjusterMock.AdjustCreditFunc: method is nil but creditAdjuster.AdjustCredit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.AdjustCreditInput
	}{Ctx: ctx, Input: input}
	mock.lockAdjustCredit.Lock()
	mock.calls.AdjustCredit = append(mock.calls.AdjustCredit, callInfo)
	mock.lockAdjustCredit.Unlock()
	return mock.AdjustCreditFunc(ctx, input)
}

func (mock *creditAdjusterMock) AdjustCreditCalls() []struct {
	Ctx   context.Context
	Input ledger.AdjustCreditInput
} {
	mock.lockAdjustCredit.RLock()
	calls := mock.calls.AdjustCredit
	mock.lockAdjustCredit.RUnlock()
	return calls
}
