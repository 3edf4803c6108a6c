package rest

import (
	"context"
	"sync"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/dose"
	"github.com/agendaamiga/agenda-backend/internal/service/medicamento"
	"github.com/agendaamiga/agenda-backend/internal/service/paciente"
	"github.com/agendaamiga/agenda-backend/internal/service/sharelink"
)

var _ pacienteService = &pacienteServiceMock{}

type pacienteServiceMock struct {
	ListarPorTutorFunc func(ctx context.Context, input paciente.ListarPorTutorInput) (*paciente.ListarPorTutorResult, error)
	CadastrarFunc      func(ctx context.Context, input paciente.CadastrarInput) (*domain.PacienteSnapshot, error)
	ObterFunc          func(ctx context.Context, input paciente.ObterInput) (*domain.PacienteSnapshot, error)

	calls struct {
		ListarPorTutor []struct {
			Ctx   context.Context
			Input paciente.ListarPorTutorInput
		}
		Cadastrar []struct {
			Ctx   context.Context
			Input paciente.CadastrarInput
		}
		Obter []struct {
			Ctx   context.Context
			Input paciente.ObterInput
		}
	}
	lockListarPorTutor sync.RWMutex
	lockCadastrar      sync.RWMutex
	lockObter          sync.RWMutex
}

func (mock *pacienteServiceMock) ListarPorTutor(ctx context.Context, input paciente.ListarPorTutorInput) (*paciente.ListarPorTutorResult, error) {
	if mock.ListarPorTutorFunc == nil {
		panic("pacienteServiceMock.ListarPorTutorFunc: method is nil but pacienteService.ListarPorTutor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input paciente.ListarPorTutorInput
	}{Ctx: ctx, Input: input}
	mock.lockListarPorTutor.Lock()
	mock.calls.ListarPorTutor = append(mock.calls.ListarPorTutor, callInfo)
	mock.lockListarPorTutor.Unlock()
	return mock.ListarPorTutorFunc(ctx, input)
}

func (mock *pacienteServiceMock) ListarPorTutorCalls() []struct {
	Ctx   context.Context
	Input paciente.ListarPorTutorInput
} {
	mock.lockListarPorTutor.RLock()
	calls := mock.calls.ListarPorTutor
	mock.lockListarPorTutor.RUnlock()
	return calls
}

func (mock *pacienteServiceMock) Cadastrar(ctx context.Context, input paciente.CadastrarInput) (*domain.PacienteSnapshot, error) {
	if mock.CadastrarFunc == nil {
		panic("pacienteServiceMock.CadastrarFunc: method is nil but pacienteService.Cadastrar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input paciente.CadastrarInput
	}{Ctx: ctx, Input: input}
	mock.lockCadastrar.Lock()
	mock.calls.Cadastrar = append(mock.calls.Cadastrar, callInfo)
	mock.lockCadastrar.Unlock()
	return mock.CadastrarFunc(ctx, input)
}

func (mock *pacienteServiceMock) CadastrarCalls() []struct {
	Ctx   context.Context
	Input paciente.CadastrarInput
} {
	mock.lockCadastrar.RLock()
	calls := mock.calls.Cadastrar
	mock.lockCadastrar.RUnlock()
	return calls
}

func (mock *pacienteServiceMock) Obter(ctx context.Context, input paciente.ObterInput) (*domain.PacienteSnapshot, error) {
	if mock.ObterFunc == nil {
		panic("pacienteServiceMock.ObterFunc: method is nil but pacienteService.Obter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input paciente.ObterInput
	}{Ctx: ctx, Input: input}
	mock.lockObter.Lock()
	mock.calls.Obter = append(mock.calls.Obter, callInfo)
	mock.lockObter.Unlock()
	return mock.ObterFunc(ctx, input)
}

func (mock *pacienteServiceMock) ObterCalls() []struct {
	Ctx   context.Context
	Input paciente.ObterInput
} {
	mock.lockObter.RLock()
	calls := mock.calls.Obter
	mock.lockObter.RUnlock()
	return calls
}

var _ doseService = &doseServiceMock{}

type doseServiceMock struct {
	ConfirmarTomadaFunc func(ctx context.Context, input dose.ConfirmarTomadaInput) (*dose.ConfirmarTomadaResult, error)

	calls struct {
		ConfirmarTomada []struct {
			Ctx   context.Context
			Input dose.ConfirmarTomadaInput
		}
	}
	lockConfirmarTomada sync.RWMutex
}

func (mock *doseServiceMock) ConfirmarTomada(ctx context.Context, input dose.ConfirmarTomadaInput) (*dose.ConfirmarTomadaResult, error) {
	if mock.ConfirmarTomadaFunc == nil {
		panic("doseServiceMock.ConfirmarTomadaFunc: method is nil but doseService.ConfirmarTomada was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dose.ConfirmarTomadaInput
	}{Ctx: ctx, Input: input}
	mock.lockConfirmarTomada.Lock()
	mock.calls.ConfirmarTomada = append(mock.calls.ConfirmarTomada, callInfo)
	mock.lockConfirmarTomada.Unlock()
	return mock.ConfirmarTomadaFunc(ctx, input)
}

func (mock *doseServiceMock) ConfirmarTomadaCalls() []struct {
	Ctx   context.Context
	Input dose.ConfirmarTomadaInput
} {
	mock.lockConfirmarTomada.RLock()
	calls := mock.calls.ConfirmarTomada
	mock.lockConfirmarTomada.RUnlock()
	return calls
}

var _ medicamentoService = &medicamentoServiceMock{}

type medicamentoServiceMock struct {
	AlterarEsquemaFunc func(ctx context.Context, input medicamento.AlterarEsquemaInput) (*medicamento.AlterarEsquemaResult, error)
	ProjetarDosesFunc  func(ctx context.Context, input medicamento.ProjetarDosesInput) (*medicamento.ProjetarDosesResult, error)

	calls struct {
		AlterarEsquema []struct {
			Ctx   context.Context
			Input medicamento.AlterarEsquemaInput
		}
		ProjetarDoses []struct {
			Ctx   context.Context
			Input medicamento.ProjetarDosesInput
		}
	}
	lockAlterarEsquema sync.RWMutex
	lockProjetarDoses  sync.RWMutex
}

func (mock *medicamentoServiceMock) AlterarEsquema(ctx context.Context, input medicamento.AlterarEsquemaInput) (*medicamento.AlterarEsquemaResult, error) {
	if mock.AlterarEsquemaFunc == nil {
		panic("medicamentoServiceMock.AlterarEsquemaFunc: method is nil but medicamentoService.AlterarEsquema was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input medicamento.AlterarEsquemaInput
	}{Ctx: ctx, Input: input}
	mock.lockAlterarEsquema.Lock()
	mock.calls.AlterarEsquema = append(mock.calls.AlterarEsquema, callInfo)
	mock.lockAlterarEsquema.Unlock()
	return mock.AlterarEsquemaFunc(ctx, input)
}

func (mock *medicamentoServiceMock) AlterarEsquemaCalls() []struct {
	Ctx   context.Context
	Input medicamento.AlterarEsquemaInput
} {
	mock.lockAlterarEsquema.RLock()
	calls := mock.calls.AlterarEsquema
	mock.lockAlterarEsquema.RUnlock()
	return calls
}

func (mock *medicamentoServiceMock) ProjetarDoses(ctx context.Context, input medicamento.ProjetarDosesInput) (*medicamento.ProjetarDosesResult, error) {
	if mock.ProjetarDosesFunc == nil {
		panic("medicamentoServiceMock.ProjetarDosesFunc: method is nil but medicamentoService.ProjetarDoses was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input medicamento.ProjetarDosesInput
	}{Ctx: ctx, Input: input}
	mock.lockProjetarDoses.Lock()
	mock.calls.ProjetarDoses = append(mock.calls.ProjetarDoses, callInfo)
	mock.lockProjetarDoses.Unlock()
	return mock.ProjetarDosesFunc(ctx, input)
}

func (mock *medicamentoServiceMock) ProjetarDosesCalls() []struct {
	Ctx   context.Context
	Input medicamento.ProjetarDosesInput
} {
	mock.lockProjetarDoses.RLock()
	calls := mock.calls.ProjetarDoses
	mock.lockProjetarDoses.RUnlock()
	return calls
}

var _ shareLinkService = &shareLinkServiceMock{}

type shareLinkServiceMock struct {
	GerarFunc   func(ctx context.Context, input sharelink.GerarInput) (*sharelink.GerarResult, error)
	AcessarFunc func(ctx context.Context, rawToken string) (*sharelink.AcessarResult, error)
	RevogarFunc func(ctx context.Context, rawToken string) error

	calls struct {
		Gerar []struct {
			Ctx   context.Context
			Input sharelink.GerarInput
		}
		Acessar []struct {
			Ctx      context.Context
			RawToken string
		}
		Revogar []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockGerar   sync.RWMutex
	lockAcessar sync.RWMutex
	lockRevogar sync.RWMutex
}

func (mock *shareLinkServiceMock) Gerar(ctx context.Context, input sharelink.GerarInput) (*sharelink.GerarResult, error) {
	if mock.GerarFunc == nil {
		panic("shareLinkServiceMock.GerarFunc: method is nil but shareLinkService.Gerar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input sharelink.GerarInput
	}{Ctx: ctx, Input: input}
	mock.lockGerar.Lock()
	mock.calls.Gerar = append(mock.calls.Gerar, callInfo)
	mock.lockGerar.Unlock()
	return mock.GerarFunc(ctx, input)
}

func (mock *shareLinkServiceMock) GerarCalls() []struct {
	Ctx   context.Context
	Input sharelink.GerarInput
} {
	mock.lockGerar.RLock()
	calls := mock.calls.Gerar
	mock.lockGerar.RUnlock()
	return calls
}

func (mock *shareLinkServiceMock) Acessar(ctx context.Context, rawToken string) (*sharelink.AcessarResult, error) {
	if mock.AcessarFunc == nil {
		panic("shareLinkServiceMock.AcessarFunc: method is nil but shareLinkService.Acessar was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockAcessar.Lock()
	mock.calls.Acessar = append(mock.calls.Acessar, callInfo)
	mock.lockAcessar.Unlock()
	return mock.AcessarFunc(ctx, rawToken)
}

func (mock *shareLinkServiceMock) AcessarCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockAcessar.RLock()
	calls := mock.calls.Acessar
	mock.lockAcessar.RUnlock()
	return calls
}

func (mock *shareLinkServiceMock) Revogar(ctx context.Context, rawToken string) error {
	if mock.RevogarFunc == nil {
		panic("shareLinkServiceMock.RevogarFunc: method is nil but shareLinkService.Revogar was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockRevogar.Lock()
	mock.calls.Revogar = append(mock.calls.Revogar, callInfo)
	mock.lockRevogar.Unlock()
	return mock.RevogarFunc(ctx, rawToken)
}

func (mock *shareLinkServiceMock) RevogarCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockRevogar.RLock()
	calls := mock.calls.Revogar
	mock.lockRevogar.RUnlock()
	return calls
}
