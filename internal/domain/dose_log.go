package domain

import (
	"strings"
	"time"
)

// DoseStatus is the lifecycle state of a scheduled dose.
type DoseStatus string

const (
	DoseStatusPendente DoseStatus = "PENDENTE"
	DoseStatusTomado   DoseStatus = "TOMADO"
	DoseStatusAtrasado DoseStatus = "ATRASADO"
)

func (s DoseStatus) String() string { return string(s) }

func (s DoseStatus) IsValid() bool {
	switch s {
	case DoseStatusPendente, DoseStatusTomado, DoseStatusAtrasado:
		return true
	}
	return false
}

// DoseLogProps holds the fields for NovoDoseLog. An empty Status means PENDENTE.
type DoseLogProps struct {
	ID              string
	MedicamentoID   string
	HorarioPrevisto time.Time
	Status          DoseStatus
	HorarioReal     *time.Time
}

// DoseLog tracks one scheduled dose of a medication.
//
// Transitions:
//
//	PENDENTE --ConfirmarTomada--> TOMADO
//	PENDENTE --MarcarAtrasado---> ATRASADO
//	TOMADO | ATRASADO --ReverterParaPendente--> PENDENTE
type DoseLog struct {
	eventRecorder

	id              string
	medicamentoID   string
	horarioPrevisto time.Time
	horarioReal     *time.Time
	status          DoseStatus
}

// DoseLogSnapshot is the plain-data projection of a DoseLog.
type DoseLogSnapshot struct {
	ID              string     `json:"id"`
	MedicamentoID   string     `json:"medicamentoId"`
	HorarioPrevisto time.Time  `json:"horarioPrevisto"`
	Status          DoseStatus `json:"status"`
	HorarioReal     *time.Time `json:"horarioReal"`
}

func NovoDoseLog(props DoseLogProps) (*DoseLog, error) {
	id := strings.TrimSpace(props.ID)
	medicamentoID := strings.TrimSpace(props.MedicamentoID)

	if id == "" {
		return nil, NewValidationError("id", "DoseLog requer identificador")
	}
	if medicamentoID == "" {
		return nil, NewValidationError("medicamentoId", "DoseLog requer medicamento vinculado")
	}

	status := props.Status
	if !status.IsValid() {
		status = DoseStatusPendente
	}

	return &DoseLog{
		id:              id,
		medicamentoID:   medicamentoID,
		horarioPrevisto: props.HorarioPrevisto.UTC(),
		horarioReal:     copyTime(props.HorarioReal),
		status:          status,
	}, nil
}

func (d *DoseLog) ID() string                 { return d.id }
func (d *DoseLog) MedicamentoID() string      { return d.medicamentoID }
func (d *DoseLog) HorarioPrevisto() time.Time { return d.horarioPrevisto }
func (d *DoseLog) Status() DoseStatus         { return d.status }

// ConfirmarTomada marks the dose as taken at agora. Confirming a dose that
// is already TOMADO does nothing.
func (d *DoseLog) ConfirmarTomada(agora time.Time) error {
	switch d.status {
	case DoseStatusTomado:
		return nil
	case DoseStatusAtrasado:
		return newTransitionError("Dose atrasada ja contem registro real")
	}

	if agora.Before(d.horarioPrevisto) {
		return newTransitionError("Nao e possivel confirmar tomada antes do horario previsto")
	}

	confirmada, err := NewDoseConfirmada(DoseConfirmadaPayload{
		DoseLogID:     d.id,
		MedicamentoID: d.medicamentoID,
		ConfirmadoEm:  agora,
	})
	if err != nil {
		return err
	}

	instante := agora.UTC()
	d.horarioReal = &instante
	d.status = DoseStatusTomado
	d.record(confirmada)
	return nil
}

// MarcarAtrasado flags a pending dose as missed. It requires agora to be
// strictly after the scheduled time.
func (d *DoseLog) MarcarAtrasado(agora time.Time) error {
	switch d.status {
	case DoseStatusAtrasado:
		return nil
	case DoseStatusTomado:
		return newTransitionError("Nao e possivel marcar como atrasado uma dose tomada")
	}

	if !agora.After(d.horarioPrevisto) {
		return newTransitionError("Dose so pode ser marcada como atrasada apos o horario previsto")
	}

	instante := agora.UTC()
	d.horarioReal = &instante
	d.status = DoseStatusAtrasado
	return nil
}

// ReverterParaPendente undoes a confirmation or a missed flag.
func (d *DoseLog) ReverterParaPendente() {
	if d.status == DoseStatusPendente {
		return
	}
	d.horarioReal = nil
	d.status = DoseStatusPendente
}

func (d *DoseLog) Snapshot() DoseLogSnapshot {
	return DoseLogSnapshot{
		ID:              d.id,
		MedicamentoID:   d.medicamentoID,
		HorarioPrevisto: d.horarioPrevisto,
		Status:          d.status,
		HorarioReal:     copyTime(d.horarioReal),
	}
}
