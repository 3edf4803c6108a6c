package sharelink

import (
	"context"
	"sync"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

var _ shareLinkRepo = &shareLinkRepoMock{}

type shareLinkRepoMock struct {
	CriarFunc           func(ctx context.Context, l *domain.ShareLink) error
	BuscarPorTokenFunc  func(ctx context.Context, token string) (*domain.ShareLink, error)
	RegistrarAcessoFunc func(ctx context.Context, shareLinkID string, em time.Time, requestID string) error
	RevogarFunc         func(ctx context.Context, shareLinkID string) error

	calls struct {
		Criar []struct {
			Ctx context.Context
			L   *domain.ShareLink
		}
		BuscarPorToken []struct {
			Ctx   context.Context
			Token string
		}
		RegistrarAcesso []struct {
			Ctx         context.Context
			ShareLinkID string
			Em          time.Time
			RequestID   string
		}
		Revogar []struct {
			Ctx         context.Context
			ShareLinkID string
		}
	}
	lockCriar           sync.RWMutex
	lockBuscarPorToken  sync.RWMutex
	lockRegistrarAcesso sync.RWMutex
	lockRevogar         sync.RWMutex
}

func (mock *shareLinkRepoMock) Criar(ctx context.Context, l *domain.ShareLink) error {
	if mock.CriarFunc == nil {
		panic("shareLinkRepoMock.CriarFunc: method is nil but shareLinkRepo.Criar was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.ShareLink
	}{Ctx: ctx, L: l}
	mock.lockCriar.Lock()
	mock.calls.Criar = append(mock.calls.Criar, callInfo)
	mock.lockCriar.Unlock()
	return mock.CriarFunc(ctx, l)
}

func (mock *shareLinkRepoMock) CriarCalls() []struct {
	Ctx context.Context
	L   *domain.ShareLink
} {
	mock.lockCriar.RLock()
	calls := mock.calls.Criar
	mock.lockCriar.RUnlock()
	return calls
}

func (mock *shareLinkRepoMock) BuscarPorToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	if mock.BuscarPorTokenFunc == nil {
		panic("shareLinkRepoMock.BuscarPorTokenFunc: method is nil but shareLinkRepo.BuscarPorToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockBuscarPorToken.Lock()
	mock.calls.BuscarPorToken = append(mock.calls.BuscarPorToken, callInfo)
	mock.lockBuscarPorToken.Unlock()
	return mock.BuscarPorTokenFunc(ctx, token)
}

func (mock *shareLinkRepoMock) BuscarPorTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockBuscarPorToken.RLock()
	calls := mock.calls.BuscarPorToken
	mock.lockBuscarPorToken.RUnlock()
	return calls
}

func (mock *shareLinkRepoMock) RegistrarAcesso(ctx context.Context, shareLinkID string, em time.Time, requestID string) error {
	if mock.RegistrarAcessoFunc == nil {
		panic("shareLinkRepoMock.RegistrarAcessoFunc: method is nil but shareLinkRepo.RegistrarAcesso was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ShareLinkID string
		Em          time.Time
		RequestID   string
	}{Ctx: ctx, ShareLinkID: shareLinkID, Em: em, RequestID: requestID}
	mock.lockRegistrarAcesso.Lock()
	mock.calls.RegistrarAcesso = append(mock.calls.RegistrarAcesso, callInfo)
	mock.lockRegistrarAcesso.Unlock()
	return mock.RegistrarAcessoFunc(ctx, shareLinkID, em, requestID)
}

func (mock *shareLinkRepoMock) RegistrarAcessoCalls() []struct {
	Ctx         context.Context
	ShareLinkID string
	Em          time.Time
	RequestID   string
} {
	mock.lockRegistrarAcesso.RLock()
	calls := mock.calls.RegistrarAcesso
	mock.lockRegistrarAcesso.RUnlock()
	return calls
}

func (mock *shareLinkRepoMock) Revogar(ctx context.Context, shareLinkID string) error {
	if mock.RevogarFunc == nil {
		panic("shareLinkRepoMock.RevogarFunc: method is nil but shareLinkRepo.Revogar was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ShareLinkID string
	}{Ctx: ctx, ShareLinkID: shareLinkID}
	mock.lockRevogar.Lock()
	mock.calls.Revogar = append(mock.calls.Revogar, callInfo)
	mock.lockRevogar.Unlock()
	return mock.RevogarFunc(ctx, shareLinkID)
}

func (mock *shareLinkRepoMock) RevogarCalls() []struct {
	Ctx         context.Context
	ShareLinkID string
} {
	mock.lockRevogar.RLock()
	calls := mock.calls.Revogar
	mock.lockRevogar.RUnlock()
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
