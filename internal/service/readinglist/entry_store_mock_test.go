package readinglist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	CreateFunc       func(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListFunc         func(ctx context.Context) ([]*domain.Entry, error)
	ListByFilterFunc func(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.Entry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ListByFilter []struct {
			Ctx    context.Context
			Filter domain.EntryFilter
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.EntryUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockListByFilter sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *entryStoreMock) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryStoreMock.CreateFunc: method is nil but entryStore.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.Entry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryStoreMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.Entry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryStoreMock.GetByIDFunc: method is nil but entryStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryStoreMock) List(ctx context.Context) ([]*domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryStoreMock.ListFunc: method is nil but entryStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *entryStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryStoreMock) ListByFilter(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error) {
	if mock.ListByFilterFunc == nil {
		panic("entryStoreMock.ListByFilterFunc: method is nil but entryStore.ListByFilter was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EntryFilter
	}{Ctx: ctx, Filter: f}
	mock.lockListByFilter.Lock()
	mock.calls.ListByFilter = append(mock.calls.ListByFilter, callInfo)
	mock.lockListByFilter.Unlock()
	return mock.ListByFilterFunc(ctx, f)
}

func (mock *entryStoreMock) ListByFilterCalls() []struct {
	Ctx    context.Context
	Filter domain.EntryFilter
} {
	mock.lockListByFilter.RLock()
	calls := mock.calls.ListByFilter
	mock.lockListByFilter.RUnlock()
	return calls
}

func (mock *entryStoreMock) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	if mock.UpdateFunc == nil {
		panic("entryStoreMock.UpdateFunc: method is nil but entryStore.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.EntryUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *entryStoreMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.EntryUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryStoreMock.DeleteFunc: method is nil but entryStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
