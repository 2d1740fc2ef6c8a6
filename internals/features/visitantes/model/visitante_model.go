package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
)

/* =======================================================
   FormaConhecimentoModel - como o visitante conheceu a igreja
   ======================================================= */

type FormaConhecimentoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FormaConhecimentoModel) TableName() string { return "formas_conhecimento" }

func (m *FormaConhecimentoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   VisitanteModel - registro de visita a um culto
   ======================================================= */

type VisitanteModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NomeCompleto   string     `gorm:"size:255;not null;index" json:"nome_completo"`
	Email          *string    `gorm:"size:255" json:"email,omitempty"`
	Telefone       *string    `gorm:"size:20" json:"telefone,omitempty"`
	Whatsapp       *string    `gorm:"size:20" json:"whatsapp,omitempty"`
	DataNascimento *time.Time `gorm:"type:date" json:"data_nascimento,omitempty"`
	Endereco       *string    `gorm:"type:text" json:"endereco,omitempty"`
	Observacoes    *string    `gorm:"type:text" json:"observacoes,omitempty"`

	EhCristao         *bool   `json:"eh_cristao,omitempty"`
	MoraPerto         *bool   `json:"mora_perto,omitempty"`
	IgrejaOrigem      *string `gorm:"size:255" json:"igreja_origem,omitempty"`
	AvisosOrganizador *string `gorm:"type:text" json:"avisos_organizador,omitempty"`

	DataVisita     time.Time `gorm:"type:date;not null;index" json:"data_visita"`
	DesejaRetorno  bool      `gorm:"not null;default:false" json:"deseja_retorno"`
	RecebeuContato bool      `gorm:"not null;default:false" json:"recebeu_contato"`

	CultoID             *uuid.UUID `gorm:"type:uuid;index" json:"culto_id,omitempty"`
	FormaConhecimentoID *uuid.UUID `gorm:"type:uuid;index" json:"forma_conhecimento_id,omitempty"`
	CadastradoPor       *uuid.UUID `gorm:"type:uuid" json:"cadastrado_por,omitempty"`

	Culto             *cultosModel.CultoModel `gorm:"foreignKey:CultoID" json:"culto,omitempty"`
	FormaConhecimento *FormaConhecimentoModel `gorm:"foreignKey:FormaConhecimentoID" json:"forma_conhecimento,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VisitanteModel) TableName() string { return "visitantes" }

func (m *VisitanteModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
