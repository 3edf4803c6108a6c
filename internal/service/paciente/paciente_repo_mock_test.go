package paciente

import (
	"context"
	"sync"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

var _ pacienteRepo = &pacienteRepoMock{}

type pacienteRepoMock struct {
	ListarPorTutorFunc func(ctx context.Context, tutorID string) ([]*domain.Paciente, error)
	BuscarPorIDFunc    func(ctx context.Context, tutorID, pacienteID string) (*domain.Paciente, error)
	SalvarFunc         func(ctx context.Context, p *domain.Paciente) error

	calls struct {
		ListarPorTutor []struct {
			Ctx     context.Context
			TutorID string
		}
		BuscarPorID []struct {
			Ctx        context.Context
			TutorID    string
			PacienteID string
		}
		Salvar []struct {
			Ctx context.Context
			P   *domain.Paciente
		}
	}
	lockListarPorTutor sync.RWMutex
	lockBuscarPorID    sync.RWMutex
	lockSalvar         sync.RWMutex
}

func (mock *pacienteRepoMock) ListarPorTutor(ctx context.Context, tutorID string) ([]*domain.Paciente, error) {
	if mock.ListarPorTutorFunc == nil {
		panic("pacienteRepoMock.ListarPorTutorFunc: method is nil but pacienteRepo.ListarPorTutor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TutorID string
	}{Ctx: ctx, TutorID: tutorID}
	mock.lockListarPorTutor.Lock()
	mock.calls.ListarPorTutor = append(mock.calls.ListarPorTutor, callInfo)
	mock.lockListarPorTutor.Unlock()
	return mock.ListarPorTutorFunc(ctx, tutorID)
}

func (mock *pacienteRepoMock) ListarPorTutorCalls() []struct {
	Ctx     context.Context
	TutorID string
} {
	mock.lockListarPorTutor.RLock()
	calls := mock.calls.ListarPorTutor
	mock.lockListarPorTutor.RUnlock()
	return calls
}

func (mock *pacienteRepoMock) BuscarPorID(ctx context.Context, tutorID, pacienteID string) (*domain.Paciente, error) {
	if mock.BuscarPorIDFunc == nil {
		panic("pacienteRepoMock.BuscarPorIDFunc: method is nil but pacienteRepo.BuscarPorID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TutorID    string
		PacienteID string
	}{Ctx: ctx, TutorID: tutorID, PacienteID: pacienteID}
	mock.lockBuscarPorID.Lock()
	mock.calls.BuscarPorID = append(mock.calls.BuscarPorID, callInfo)
	mock.lockBuscarPorID.Unlock()
	return mock.BuscarPorIDFunc(ctx, tutorID, pacienteID)
}

func (mock *pacienteRepoMock) BuscarPorIDCalls() []struct {
	Ctx        context.Context
	TutorID    string
	PacienteID string
} {
	mock.lockBuscarPorID.RLock()
	calls := mock.calls.BuscarPorID
	mock.lockBuscarPorID.RUnlock()
	return calls
}

func (mock *pacienteRepoMock) Salvar(ctx context.Context, p *domain.Paciente) error {
	if mock.SalvarFunc == nil {
		panic("pacienteRepoMock.SalvarFunc: method is nil but pacienteRepo.Salvar was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Paciente
	}{Ctx: ctx, P: p}
	mock.lockSalvar.Lock()
	mock.calls.Salvar = append(mock.calls.Salvar, callInfo)
	mock.lockSalvar.Unlock()
	return mock.SalvarFunc(ctx, p)
}

func (mock *pacienteRepoMock) SalvarCalls() []struct {
	Ctx context.Context
	P   *domain.Paciente
} {
	mock.lockSalvar.RLock()
	calls := mock.calls.Salvar
	mock.lockSalvar.RUnlock()
	return calls
}

type fixedClock struct{ now time.Time }

func (c fixedClock) NowUTC() time.Time { return c.now }

func (c fixedClock) TodayAt(_ string, h, m int) time.Time {
	y, mo, d := c.now.Date()
	return time.Date(y, mo, d, h, m, 0, 0, time.UTC)
}

func (c fixedClock) At(_ string, day time.Time, h, m int) time.Time {
	y, mo, d := day.UTC().Date()
	return time.Date(y, mo, d, h, m, 0, 0, time.UTC)
}
