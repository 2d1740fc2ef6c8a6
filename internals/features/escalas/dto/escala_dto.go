package dto

import "github.com/google/uuid"

type CreateEscalaRequest struct {
	PessoaID    uuid.UUID `json:"pessoa_id" validate:"required"`
	CultoID     uuid.UUID `json:"culto_id" validate:"required"`
	FuncaoID    uuid.UUID `json:"funcao_id" validate:"required"`
	Observacoes *string   `json:"observacoes,omitempty"`
}

type UpdateEscalaRequest struct {
	FuncaoID    *uuid.UUID `json:"funcao_id,omitempty"`
	Observacoes *string    `json:"observacoes,omitempty"`
}
