package backup

import (
	"context"
	"github.com/heartmarshall/amulet-backend/internal/domain"
	"sync"
)

var _ auditLister = &auditListerMock{}

type auditListerMock struct {
	ListAllFunc func(ctx context.Context) ([]domain.AuditEntry, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
}

func (mock *auditListerMock) ListAll(ctx context.Context) ([]domain.AuditEntry, error) {
	if mock.ListAllFunc == nil {
		panic("auditListerMock.ListAllFunc: method is nil but auditLister.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *auditListerMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
