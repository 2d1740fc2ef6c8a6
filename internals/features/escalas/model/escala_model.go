package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
)

/* =======================================================
   Status da escala e máquina de estados
   ======================================================= */

const (
	StatusEscalaPendente   = "pendente"
	StatusEscalaConfirmada = "confirmada"
	StatusEscalaPresente   = "presente"
	StatusEscalaAusente    = "ausente"
	StatusEscalaCancelada  = "cancelada"
)

// TransicaoValida codifica a máquina de estados da escala:
//
//	pendente   -> confirmada | ausente | cancelada
//	confirmada -> presente   | ausente | cancelada
//	presente   -> (terminal)
//	ausente    -> (terminal)
//	cancelada  -> (terminal)
//
// presente só é alcançável via check-in a partir de confirmada.
func TransicaoValida(de, para string) bool {
	switch de {
	case StatusEscalaPendente:
		return para == StatusEscalaConfirmada || para == StatusEscalaAusente || para == StatusEscalaCancelada
	case StatusEscalaConfirmada:
		return para == StatusEscalaPresente || para == StatusEscalaAusente || para == StatusEscalaCancelada
	}
	return false
}

/* =======================================================
   FuncaoModel - função ministerial (dado de referência)
   ======================================================= */

type FuncaoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Cor       *string   `gorm:"size:7" json:"cor,omitempty"`

	RequerConfirmacao bool `gorm:"not null;default:true" json:"requer_confirmacao"`
	Ativo             bool `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FuncaoModel) TableName() string { return "funcoes" }

func (m *FuncaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   EscalaModel - atribuição pessoa x culto x função
   ======================================================= */

type EscalaModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PessoaID uuid.UUID `gorm:"type:uuid;not null;index" json:"pessoa_id"`
	CultoID  uuid.UUID `gorm:"type:uuid;not null;index" json:"culto_id"`
	FuncaoID uuid.UUID `gorm:"type:uuid;not null;index" json:"funcao_id"`

	Status      string  `gorm:"size:20;not null;default:pendente;index" json:"status"`
	Observacoes *string `gorm:"type:text" json:"observacoes,omitempty"`

	ConfirmadoEm *time.Time `json:"confirmado_em,omitempty"`
	CheckinEm    *time.Time `json:"checkin_em,omitempty"`

	Pessoa *pessoasModel.PessoaModel `gorm:"foreignKey:PessoaID" json:"pessoa,omitempty"`
	Culto  *cultosModel.CultoModel   `gorm:"foreignKey:CultoID" json:"culto,omitempty"`
	Funcao *FuncaoModel              `gorm:"foreignKey:FuncaoID" json:"funcao,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (EscalaModel) TableName() string { return "escalas" }

func (m *EscalaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Terminal informa se a escala chegou a um estado final.
func (m *EscalaModel) Terminal() bool {
	return m.Status == StatusEscalaPresente || m.Status == StatusEscalaAusente || m.Status == StatusEscalaCancelada
}
