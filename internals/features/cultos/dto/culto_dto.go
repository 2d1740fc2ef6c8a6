package dto

import "github.com/google/uuid"

type AtividadeInput struct {
	Nome            string      `json:"nome" validate:"required,min=2,max=255"`
	Ordem           int         `json:"ordem"`
	HorarioInicio   *string     `json:"horario_inicio,omitempty"`
	HorarioFim      *string     `json:"horario_fim,omitempty"`
	Observacoes     *string     `json:"observacoes,omitempty"`
	TipoAtividadeID *uuid.UUID  `json:"tipo_atividade_id,omitempty"`
	PessoaIDs       []uuid.UUID `json:"pessoa_ids,omitempty"`
	DepartamentoIDs []uuid.UUID `json:"departamento_ids,omitempty"`
}

type EscalaInput struct {
	PessoaID    uuid.UUID `json:"pessoa_id" validate:"required"`
	FuncaoID    uuid.UUID `json:"funcao_id" validate:"required"`
	Observacoes *string   `json:"observacoes,omitempty"`
}

type CreateCultoRequest struct {
	Titulo        string           `json:"titulo" validate:"required,min=3,max=255"`
	DataCulto     string           `json:"data_culto" validate:"required"` // YYYY-MM-DD
	HorarioInicio string           `json:"horario_inicio" validate:"required"`
	HorarioFim    *string          `json:"horario_fim,omitempty"`
	Local         string           `json:"local" validate:"required,min=2,max=255"`
	TipoCultoID   uuid.UUID        `json:"tipo_culto_id" validate:"required"`
	Observacoes   *string          `json:"observacoes,omitempty"`
	Atividades    []AtividadeInput `json:"atividades,omitempty"`
	Escalas       []EscalaInput    `json:"escalas,omitempty"`
}

type UpdateCultoRequest struct {
	Titulo        *string    `json:"titulo,omitempty" validate:"omitempty,min=3,max=255"`
	DataCulto     *string    `json:"data_culto,omitempty"`
	HorarioInicio *string    `json:"horario_inicio,omitempty"`
	HorarioFim    *string    `json:"horario_fim,omitempty"`
	Local         *string    `json:"local,omitempty" validate:"omitempty,min=2,max=255"`
	TipoCultoID   *uuid.UUID `json:"tipo_culto_id,omitempty"`
	Observacoes   *string    `json:"observacoes,omitempty"`
}

type UpdateStatusCultoRequest struct {
	Status string `json:"status" validate:"required,oneof=planejado em_andamento finalizado cancelado"`
}
