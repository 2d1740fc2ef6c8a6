package dto

import "github.com/google/uuid"

type CriterioNotaInput struct {
	CriterioID uuid.UUID `json:"criterio_id" validate:"required"`
	Nota       int       `json:"nota" validate:"required,min=1,max=5"`
}

// CreateAvaliacaoRequest é o payload do formulário público (sem login).
type CreateAvaliacaoRequest struct {
	CultoID        uuid.UUID           `json:"culto_id" validate:"required"`
	NotaGeral      int                 `json:"nota_geral" validate:"required,min=1,max=5"`
	Comentario     *string             `json:"comentario,omitempty"`
	NomeAvaliador  *string             `json:"nome_avaliador,omitempty" validate:"omitempty,max=255"`
	EmailAvaliador *string             `json:"email_avaliador,omitempty" validate:"omitempty,email"`
	Recomendaria   *bool               `json:"recomendaria,omitempty"`
	DataVisita     string              `json:"data_visita" validate:"required"` // YYYY-MM-DD
	Criterios      []CriterioNotaInput `json:"criterios" validate:"required,min=1,dive"`
}
