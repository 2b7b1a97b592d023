package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

var _ auditor = &auditorMock{}

type auditorMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditorMock) Log(ctx context.Context, record domain.AuditRecord) {
	if mock.LogFunc == nil {
		panic("auditorMock.LogFunc: method is nil but auditor.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	mock.LogFunc(ctx, record)
}

func (mock *auditorMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
