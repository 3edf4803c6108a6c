package sharelink

import (
	"fmt"
	"strings"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// EscopoItem grants IDs of one resource type. No IDs grants every resource
// of that type.
type EscopoItem struct {
	Tipo string
	IDs  []string
}

// GerarInput holds the parameters for issuing a share link. Empty
// ShareLinkID and Token are generated; a nil Expiracao uses the default TTL.
type GerarInput struct {
	ShareLinkID string
	TutorID     string
	Token       string
	Expiracao   *time.Time
	Escopo      []EscopoItem
}

// Validate checks all fields and collects all errors.
func (i GerarInput) Validate() error {
	var errs []domain.FieldError

	if i.ShareLinkID != "" && strings.TrimSpace(i.ShareLinkID) == "" {
		errs = append(errs, domain.FieldError{Field: "shareLinkId", Message: "ShareLinkId obrigatorio"})
	}
	if strings.TrimSpace(i.TutorID) == "" {
		errs = append(errs, domain.FieldError{Field: "tutorId", Message: "TutorId obrigatorio"})
	}
	if len(i.Escopo) == 0 {
		errs = append(errs, domain.FieldError{Field: "escopo", Message: "Escopo obrigatorio"})
	}
	for idx, item := range i.Escopo {
		if !domain.TipoRecurso(strings.TrimSpace(item.Tipo)).IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("escopo[%d].tipo", idx),
				Message: fmt.Sprintf("Tipo de recurso invalido no escopo: %s", item.Tipo),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i GerarInput) escopo() (*domain.EscopoCompartilhamento, error) {
	e := domain.NovoEscopo()
	for _, item := range i.Escopo {
		if err := e.Incluir(domain.TipoRecurso(strings.TrimSpace(item.Tipo)), item.IDs...); err != nil {
			return nil, err
		}
	}
	return e, nil
}
