package dto

import "github.com/google/uuid"

type CreatePessoaRequest struct {
	NomeCompleto   string     `json:"nome_completo" validate:"required,min=3,max=255"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	Telefone       *string    `json:"telefone,omitempty" validate:"omitempty,max=20"`
	Whatsapp       *string    `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	DataNascimento *string    `json:"data_nascimento,omitempty"` // YYYY-MM-DD
	Endereco       *string    `json:"endereco,omitempty"`
	Observacoes    *string    `json:"observacoes,omitempty"`
	Membro         *bool      `json:"membro,omitempty"`
	Ativo          *bool      `json:"ativo,omitempty"`
	CargoID        *uuid.UUID `json:"cargo_eclesiastico_id,omitempty"`
	DepartamentoID *uuid.UUID `json:"departamento_id,omitempty"`
}

type UpdatePessoaRequest struct {
	NomeCompleto   *string    `json:"nome_completo,omitempty" validate:"omitempty,min=3,max=255"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	Telefone       *string    `json:"telefone,omitempty" validate:"omitempty,max=20"`
	Whatsapp       *string    `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	DataNascimento *string    `json:"data_nascimento,omitempty"`
	Endereco       *string    `json:"endereco,omitempty"`
	Observacoes    *string    `json:"observacoes,omitempty"`
	Membro         *bool      `json:"membro,omitempty"`
	Ativo          *bool      `json:"ativo,omitempty"`
	CargoID        *uuid.UUID `json:"cargo_eclesiastico_id,omitempty"`
	DepartamentoID *uuid.UUID `json:"departamento_id,omitempty"`
}

// ReferenciaRequest serve cargos eclesiásticos e departamentos.
type ReferenciaRequest struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=100"`
	Descricao *string `json:"descricao,omitempty"`
	Ativo     *bool   `json:"ativo,omitempty"`
}
