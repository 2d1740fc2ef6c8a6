package dto

import "github.com/google/uuid"

type CreateVisitanteRequest struct {
	NomeCompleto        string     `json:"nome_completo" validate:"required,min=3,max=255"`
	Email               *string    `json:"email,omitempty" validate:"omitempty,email"`
	Telefone            *string    `json:"telefone,omitempty" validate:"omitempty,max=20"`
	Whatsapp            *string    `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	DataNascimento      *string    `json:"data_nascimento,omitempty"` // YYYY-MM-DD
	Endereco            *string    `json:"endereco,omitempty"`
	Observacoes         *string    `json:"observacoes,omitempty"`
	EhCristao           *bool      `json:"eh_cristao,omitempty"`
	MoraPerto           *bool      `json:"mora_perto,omitempty"`
	IgrejaOrigem        *string    `json:"igreja_origem,omitempty" validate:"omitempty,max=255"`
	AvisosOrganizador   *string    `json:"avisos_organizador,omitempty"`
	DataVisita          string     `json:"data_visita" validate:"required"` // YYYY-MM-DD
	DesejaRetorno       *bool      `json:"deseja_retorno,omitempty"`
	CultoID             *uuid.UUID `json:"culto_id,omitempty"`
	FormaConhecimentoID *uuid.UUID `json:"forma_conhecimento_id,omitempty"`
}

type UpdateVisitanteRequest struct {
	NomeCompleto        *string    `json:"nome_completo,omitempty" validate:"omitempty,min=3,max=255"`
	Email               *string    `json:"email,omitempty" validate:"omitempty,email"`
	Telefone            *string    `json:"telefone,omitempty" validate:"omitempty,max=20"`
	Whatsapp            *string    `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	DataNascimento      *string    `json:"data_nascimento,omitempty"`
	Endereco            *string    `json:"endereco,omitempty"`
	Observacoes         *string    `json:"observacoes,omitempty"`
	EhCristao           *bool      `json:"eh_cristao,omitempty"`
	MoraPerto           *bool      `json:"mora_perto,omitempty"`
	IgrejaOrigem        *string    `json:"igreja_origem,omitempty" validate:"omitempty,max=255"`
	AvisosOrganizador   *string    `json:"avisos_organizador,omitempty"`
	DataVisita          *string    `json:"data_visita,omitempty"`
	DesejaRetorno       *bool      `json:"deseja_retorno,omitempty"`
	RecebeuContato      *bool      `json:"recebeu_contato,omitempty"`
	CultoID             *uuid.UUID `json:"culto_id,omitempty"`
	FormaConhecimentoID *uuid.UUID `json:"forma_conhecimento_id,omitempty"`
}
