package domain

import "strings"

// TipoDocumento classifies a patient document.
type TipoDocumento string

const (
	DocumentoLaudo   TipoDocumento = "laudo"
	DocumentoExame   TipoDocumento = "exame"
	DocumentoReceita TipoDocumento = "receita"
	DocumentoOutro   TipoDocumento = "outro"
)

func (t TipoDocumento) String() string { return string(t) }

func (t TipoDocumento) IsValid() bool {
	switch t {
	case DocumentoLaudo, DocumentoExame, DocumentoReceita, DocumentoOutro:
		return true
	}
	return false
}

// DocumentoProps holds the fields for NovoDocumento.
type DocumentoProps struct {
	ID             string
	PacienteID     string
	Tipo           TipoDocumento
	Titulo         string
	Compartilhavel bool
}

// Documento is a file kept for a patient (report, exam, prescription).
// Only documents marked for sharing are offered to share links.
type Documento struct {
	id             string
	pacienteID     string
	tipo           TipoDocumento
	titulo         string
	compartilhavel bool
}

// DocumentoSnapshot is the plain-data projection of a Documento.
type DocumentoSnapshot struct {
	ID                          string        `json:"id"`
	PacienteID                  string        `json:"pacienteId"`
	Tipo                        TipoDocumento `json:"tipo"`
	Titulo                      string        `json:"titulo"`
	MarcadoParaCompartilhamento bool          `json:"marcadoParaCompartilhamento"`
}

func NovoDocumento(props DocumentoProps) (*Documento, error) {
	id := strings.TrimSpace(props.ID)
	pacienteID := strings.TrimSpace(props.PacienteID)
	titulo := strings.TrimSpace(props.Titulo)

	if id == "" {
		return nil, NewValidationError("documentoId", "Documento requer identificador")
	}
	if pacienteID == "" {
		return nil, NewValidationError("pacienteId", "Documento requer paciente")
	}
	if titulo == "" {
		return nil, NewValidationError("titulo", "Documento requer titulo")
	}
	if !props.Tipo.IsValid() {
		return nil, NewValidationError("tipo", "Tipo de documento invalido")
	}

	return &Documento{
		id:             id,
		pacienteID:     pacienteID,
		tipo:           props.Tipo,
		titulo:         titulo,
		compartilhavel: props.Compartilhavel,
	}, nil
}

func (d *Documento) ID() string                  { return d.id }
func (d *Documento) PacienteID() string          { return d.pacienteID }
func (d *Documento) Tipo() TipoDocumento         { return d.tipo }
func (d *Documento) Titulo() string              { return d.titulo }
func (d *Documento) Compartilhavel() bool        { return d.compartilhavel }
func (d *Documento) MarcarParaCompartilhamento() { d.compartilhavel = true }
func (d *Documento) DesmarcarCompartilhamento()  { d.compartilhavel = false }

func (d *Documento) Renomear(novoTitulo string) error {
	titulo := strings.TrimSpace(novoTitulo)
	if titulo == "" {
		return NewValidationError("titulo", "Titulo de documento nao pode ser vazio")
	}
	d.titulo = titulo
	return nil
}

func (d *Documento) Snapshot() DocumentoSnapshot {
	return DocumentoSnapshot{
		ID:                          d.id,
		PacienteID:                  d.pacienteID,
		Tipo:                        d.tipo,
		Titulo:                      d.titulo,
		MarcadoParaCompartilhamento: d.compartilhavel,
	}
}

// VisivelPor reports whether a share link with scope e may expose d: the
// document must be marked for sharing and covered by the documento rule.
func (d *Documento) VisivelPor(e *EscopoCompartilhamento) bool {
	return d.compartilhavel && e != nil && e.Abrange(RecursoDocumento, d.id)
}
