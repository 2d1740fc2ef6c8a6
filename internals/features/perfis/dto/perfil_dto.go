package dto

import "github.com/google/uuid"

type CreatePerfilRequest struct {
	Nome         string      `json:"nome" validate:"required,min=3,max=100"`
	Descricao    *string     `json:"descricao,omitempty"`
	NivelAcesso  int         `json:"nivel_acesso" validate:"required,min=1,max=10"`
	Ativo        *bool       `json:"ativo,omitempty"`
	PermissaoIDs []uuid.UUID `json:"permissao_ids,omitempty"`
}

type UpdatePerfilRequest struct {
	Nome         *string      `json:"nome,omitempty" validate:"omitempty,min=3,max=100"`
	Descricao    *string      `json:"descricao,omitempty"`
	NivelAcesso  *int         `json:"nivel_acesso,omitempty" validate:"omitempty,min=1,max=10"`
	Ativo        *bool        `json:"ativo,omitempty"`
	PermissaoIDs *[]uuid.UUID `json:"permissao_ids,omitempty"`
}
