package medicamento

import (
	"context"
	"sync"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

var _ medicamentoRepo = &medicamentoRepoMock{}

type medicamentoRepoMock struct {
	BuscarPorIDFunc func(ctx context.Context, id string) (*domain.Medicamento, error)
	SalvarFunc      func(ctx context.Context, m *domain.Medicamento) error

	calls struct {
		BuscarPorID []struct {
			Ctx context.Context
			Id  string
		}
		Salvar []struct {
			Ctx context.Context
			M   *domain.Medicamento
		}
	}
	lockBuscarPorID sync.RWMutex
	lockSalvar      sync.RWMutex
}

func (mock *medicamentoRepoMock) BuscarPorID(ctx context.Context, id string) (*domain.Medicamento, error) {
	if mock.BuscarPorIDFunc == nil {
		panic("medicamentoRepoMock.BuscarPorIDFunc: method is nil but medicamentoRepo.BuscarPorID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockBuscarPorID.Lock()
	mock.calls.BuscarPorID = append(mock.calls.BuscarPorID, callInfo)
	mock.lockBuscarPorID.Unlock()
	return mock.BuscarPorIDFunc(ctx, id)
}

func (mock *medicamentoRepoMock) BuscarPorIDCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockBuscarPorID.RLock()
	calls := mock.calls.BuscarPorID
	mock.lockBuscarPorID.RUnlock()
	return calls
}

func (mock *medicamentoRepoMock) Salvar(ctx context.Context, m *domain.Medicamento) error {
	if mock.SalvarFunc == nil {
		panic("medicamentoRepoMock.SalvarFunc: method is nil but medicamentoRepo.Salvar was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Medicamento
	}{Ctx: ctx, M: m}
	mock.lockSalvar.Lock()
	mock.calls.Salvar = append(mock.calls.Salvar, callInfo)
	mock.lockSalvar.Unlock()
	return mock.SalvarFunc(ctx, m)
}

func (mock *medicamentoRepoMock) SalvarCalls() []struct {
	Ctx context.Context
	M   *domain.Medicamento
} {
	mock.lockSalvar.RLock()
	calls := mock.calls.Salvar
	mock.lockSalvar.RUnlock()
	return calls
}

var _ doseLogRepo = &doseLogRepoMock{}

type doseLogRepoMock struct {
	SalvarEmLoteFunc func(ctx context.Context, doses []*domain.DoseLog) (int, error)

	calls struct {
		SalvarEmLote []struct {
			Ctx   context.Context
			Doses []*domain.DoseLog
		}
	}
	lockSalvarEmLote sync.RWMutex
}

func (mock *doseLogRepoMock) SalvarEmLote(ctx context.Context, doses []*domain.DoseLog) (int, error) {
	if mock.SalvarEmLoteFunc == nil {
		panic("doseLogRepoMock.SalvarEmLoteFunc: method is nil but doseLogRepo.SalvarEmLote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Doses []*domain.DoseLog
	}{Ctx: ctx, Doses: doses}
	mock.lockSalvarEmLote.Lock()
	mock.calls.SalvarEmLote = append(mock.calls.SalvarEmLote, callInfo)
	mock.lockSalvarEmLote.Unlock()
	return mock.SalvarEmLoteFunc(ctx, doses)
}

func (mock *doseLogRepoMock) SalvarEmLoteCalls() []struct {
	Ctx   context.Context
	Doses []*domain.DoseLog
} {
	mock.lockSalvarEmLote.RLock()
	calls := mock.calls.SalvarEmLote
	mock.lockSalvarEmLote.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, events ...domain.Event) error

	calls struct {
		Publish []struct {
			Ctx    context.Context
			Events []domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, events ...domain.Event) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Events []domain.Event
	}{Ctx: ctx, Events: events}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, events...)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx    context.Context
	Events []domain.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
