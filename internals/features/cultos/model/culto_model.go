package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
)

/* =======================================================
   Status do culto
   ======================================================= */

const (
	StatusCultoPlanejado   = "planejado"
	StatusCultoEmAndamento = "em_andamento"
	StatusCultoFinalizado  = "finalizado"
	StatusCultoCancelado   = "cancelado"
)

// StatusCultoValido valida o valor recebido em payloads de atualização.
func StatusCultoValido(s string) bool {
	switch s {
	case StatusCultoPlanejado, StatusCultoEmAndamento, StatusCultoFinalizado, StatusCultoCancelado:
		return true
	}
	return false
}

// TransicaoCultoValida codifica o ciclo de vida do culto:
//
//	planejado    -> em_andamento | cancelado
//	em_andamento -> finalizado   | cancelado
//	finalizado   -> (terminal)
//	cancelado    -> (terminal)
func TransicaoCultoValida(de, para string) bool {
	switch de {
	case StatusCultoPlanejado:
		return para == StatusCultoEmAndamento || para == StatusCultoCancelado
	case StatusCultoEmAndamento:
		return para == StatusCultoFinalizado || para == StatusCultoCancelado
	}
	return false
}

/* =======================================================
   TipoCultoModel - dado de referência
   ======================================================= */

type TipoCultoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Cor       *string   `gorm:"size:7" json:"cor,omitempty"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TipoCultoModel) TableName() string { return "tipos_culto" }

func (m *TipoCultoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   CultoModel - evento de culto agendado
   ======================================================= */

type CultoModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Titulo string    `gorm:"size:255;not null" json:"titulo"`

	DataCulto    time.Time `gorm:"type:date;not null;index" json:"data_culto"`
	HorarioInicio string   `gorm:"type:time;not null" json:"horario_inicio"`
	HorarioFim    *string  `gorm:"type:time" json:"horario_fim,omitempty"`

	Local       string  `gorm:"size:255;not null;index" json:"local"`
	Status      string  `gorm:"size:20;not null;default:planejado;index" json:"status"`
	Observacoes *string `gorm:"type:text" json:"observacoes,omitempty"`

	TipoCultoID uuid.UUID `gorm:"type:uuid;not null;index" json:"tipo_culto_id"`
	TipoCulto   *TipoCultoModel `gorm:"foreignKey:TipoCultoID" json:"tipo_culto,omitempty"`

	CriadoPor *uuid.UUID `gorm:"type:uuid" json:"criado_por,omitempty"`

	Atividades []AtividadeModel `gorm:"foreignKey:CultoID" json:"atividades,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CultoModel) TableName() string { return "cultos" }

func (m *CultoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   Atividades do culto (programação interna)
   ======================================================= */

type TipoAtividadeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TipoAtividadeModel) TableName() string { return "tipos_atividade" }

func (m *TipoAtividadeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AtividadeModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome   string    `gorm:"size:255;not null" json:"nome"`
	Ordem  int       `gorm:"not null;default:0" json:"ordem"`

	HorarioInicio *string `gorm:"type:time" json:"horario_inicio,omitempty"`
	HorarioFim    *string `gorm:"type:time" json:"horario_fim,omitempty"`
	Observacoes   *string `gorm:"type:text" json:"observacoes,omitempty"`

	CultoID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"culto_id"`
	TipoAtividadeID *uuid.UUID `gorm:"type:uuid;index" json:"tipo_atividade_id,omitempty"`

	TipoAtividade *TipoAtividadeModel          `gorm:"foreignKey:TipoAtividadeID" json:"tipo_atividade,omitempty"`
	Pessoas       []AtividadePessoaModel       `gorm:"foreignKey:AtividadeID" json:"pessoas,omitempty"`
	Departamentos []AtividadeDepartamentoModel `gorm:"foreignKey:AtividadeID" json:"departamentos,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AtividadeModel) TableName() string { return "atividades" }

func (m *AtividadeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AtividadePessoaModel vincula responsáveis individuais a uma atividade.
type AtividadePessoaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AtividadeID uuid.UUID `gorm:"type:uuid;not null;index" json:"atividade_id"`
	PessoaID    uuid.UUID `gorm:"type:uuid;not null;index" json:"pessoa_id"`

	Pessoa *pessoasModel.PessoaModel `gorm:"foreignKey:PessoaID" json:"pessoa,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AtividadePessoaModel) TableName() string { return "atividade_pessoas" }

func (m *AtividadePessoaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AtividadeDepartamentoModel vincula departamentos responsáveis a uma atividade.
type AtividadeDepartamentoModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AtividadeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"atividade_id"`
	DepartamentoID uuid.UUID `gorm:"type:uuid;not null;index" json:"departamento_id"`

	Departamento *pessoasModel.DepartamentoModel `gorm:"foreignKey:DepartamentoID" json:"departamento,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AtividadeDepartamentoModel) TableName() string { return "atividade_departamentos" }

func (m *AtividadeDepartamentoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
