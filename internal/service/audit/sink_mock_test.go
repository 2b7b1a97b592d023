package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

var _ sink = &sinkMock{}

type sinkMock struct {
	AppendFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Append []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockAppend sync.RWMutex
}

func (mock *sinkMock) Append(ctx context.Context, record domain.AuditRecord) error {
	if mock.AppendFunc == nil {
		panic("sinkMock.AppendFunc: method is nil but sink.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, record)
}

func (mock *sinkMock) AppendCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
