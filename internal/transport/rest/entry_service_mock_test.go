package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
	"github.com/heartmarshall/readinglist-backend/internal/service/readinglist"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	CreateEntryFunc func(ctx context.Context, input readinglist.CreateEntryInput) (*domain.Entry, error)
	GetEntryFunc    func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListEntriesFunc func(ctx context.Context, input readinglist.ListEntriesInput) ([]*domain.Entry, error)
	UpdateEntryFunc func(ctx context.Context, input readinglist.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntryFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input readinglist.CreateEntryInput
		}
		GetEntry []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListEntries []struct {
			Ctx   context.Context
			Input readinglist.ListEntriesInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Input readinglist.UpdateEntryInput
		}
		DeleteEntry []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateEntry sync.RWMutex
	lockGetEntry    sync.RWMutex
	lockListEntries sync.RWMutex
	lockUpdateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
}

func (mock *entryServiceMock) CreateEntry(ctx context.Context, input readinglist.CreateEntryInput) (*domain.Entry, error) {
	if mock.CreateEntryFunc == nil {
		panic("entryServiceMock.CreateEntryFunc: method is nil but entryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readinglist.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input readinglist.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetEntryFunc == nil {
		panic("entryServiceMock.GetEntryFunc: method is nil but entryService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, id)
}

func (mock *entryServiceMock) GetEntryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) ListEntries(ctx context.Context, input readinglist.ListEntriesInput) ([]*domain.Entry, error) {
	if mock.ListEntriesFunc == nil {
		panic("entryServiceMock.ListEntriesFunc: method is nil but entryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readinglist.ListEntriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *entryServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input readinglist.ListEntriesInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *entryServiceMock) UpdateEntry(ctx context.Context, input readinglist.UpdateEntryInput) (*domain.Entry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("entryServiceMock.UpdateEntryFunc: method is nil but entryService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readinglist.UpdateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Input readinglist.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("entryServiceMock.DeleteEntryFunc: method is nil but entryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, id)
}

func (mock *entryServiceMock) DeleteEntryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
