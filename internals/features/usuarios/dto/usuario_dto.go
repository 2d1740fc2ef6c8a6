package dto

import "github.com/google/uuid"

type CreateUsuarioRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	Senha    string    `json:"senha" validate:"required,min=6"`
	PessoaID uuid.UUID `json:"pessoa_id" validate:"required"`
	PerfilID uuid.UUID `json:"perfil_id" validate:"required"`
	Ativo    *bool     `json:"ativo,omitempty"`
}

type UpdateUsuarioRequest struct {
	Email    *string    `json:"email,omitempty" validate:"omitempty,email"`
	Senha    *string    `json:"senha,omitempty" validate:"omitempty,min=6"`
	PerfilID *uuid.UUID `json:"perfil_id,omitempty"`
	Ativo    *bool      `json:"ativo,omitempty"`
}
