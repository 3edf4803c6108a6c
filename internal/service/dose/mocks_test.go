package dose

import (
	"context"
	"sync"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

var _ doseLogRepo = &doseLogRepoMock{}

type doseLogRepoMock struct {
	BuscarPorIDParaAtualizarFunc func(ctx context.Context, id string) (*domain.DoseLog, error)
	AtualizarStatusFunc          func(ctx context.Context, d *domain.DoseLog) error

	calls struct {
		BuscarPorIDParaAtualizar []struct {
			Ctx context.Context
			Id  string
		}
		AtualizarStatus []struct {
			Ctx context.Context
			D   *domain.DoseLog
		}
	}
	lockBuscarPorIDParaAtualizar sync.RWMutex
	lockAtualizarStatus          sync.RWMutex
}

func (mock *doseLogRepoMock) BuscarPorIDParaAtualizar(ctx context.Context, id string) (*domain.DoseLog, error) {
	if mock.BuscarPorIDParaAtualizarFunc == nil {
		panic("doseLogRepoMock.BuscarPorIDParaAtualizarFunc: method is nil but doseLogRepo.BuscarPorIDParaAtualizar was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockBuscarPorIDParaAtualizar.Lock()
	mock.calls.BuscarPorIDParaAtualizar = append(mock.calls.BuscarPorIDParaAtualizar, callInfo)
	mock.lockBuscarPorIDParaAtualizar.Unlock()
	return mock.BuscarPorIDParaAtualizarFunc(ctx, id)
}

func (mock *doseLogRepoMock) BuscarPorIDParaAtualizarCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockBuscarPorIDParaAtualizar.RLock()
	calls := mock.calls.BuscarPorIDParaAtualizar
	mock.lockBuscarPorIDParaAtualizar.RUnlock()
	return calls
}

func (mock *doseLogRepoMock) AtualizarStatus(ctx context.Context, d *domain.DoseLog) error {
	if mock.AtualizarStatusFunc == nil {
		panic("doseLogRepoMock.AtualizarStatusFunc: method is nil but doseLogRepo.AtualizarStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.DoseLog
	}{Ctx: ctx, D: d}
	mock.lockAtualizarStatus.Lock()
	mock.calls.AtualizarStatus = append(mock.calls.AtualizarStatus, callInfo)
	mock.lockAtualizarStatus.Unlock()
	return mock.AtualizarStatusFunc(ctx, d)
}

func (mock *doseLogRepoMock) AtualizarStatusCalls() []struct {
	Ctx context.Context
	D   *domain.DoseLog
} {
	mock.lockAtualizarStatus.RLock()
	calls := mock.calls.AtualizarStatus
	mock.lockAtualizarStatus.RUnlock()
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
