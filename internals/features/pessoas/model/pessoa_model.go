package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CargoEclesiastico / Departamento - dados de referência
   ======================================================= */

type CargoEclesiasticoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CargoEclesiasticoModel) TableName() string { return "cargos_eclesiasticos" }

func (m *CargoEclesiasticoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type DepartamentoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DepartamentoModel) TableName() string { return "departamentos" }

func (m *DepartamentoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   PessoaModel - membro da igreja
   ======================================================= */

type PessoaModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NomeCompleto   string     `gorm:"size:255;not null;index" json:"nome_completo"`
	Email          *string    `gorm:"size:255;index" json:"email,omitempty"`
	Telefone       *string    `gorm:"size:20" json:"telefone,omitempty"`
	Whatsapp       *string    `gorm:"size:20" json:"whatsapp,omitempty"`
	DataNascimento *time.Time `gorm:"type:date" json:"data_nascimento,omitempty"`
	Endereco       *string    `gorm:"type:text" json:"endereco,omitempty"`
	Observacoes    *string    `gorm:"type:text" json:"observacoes,omitempty"`
	Membro         bool       `gorm:"not null;default:true" json:"membro"`
	Ativo          bool       `gorm:"not null;default:true" json:"ativo"`

	CargoEclesiasticoID *uuid.UUID `gorm:"type:uuid;index" json:"cargo_eclesiastico_id,omitempty"`
	DepartamentoID      *uuid.UUID `gorm:"type:uuid;index" json:"departamento_id,omitempty"`

	CargoEclesiastico *CargoEclesiasticoModel `gorm:"foreignKey:CargoEclesiasticoID" json:"cargo_eclesiastico,omitempty"`
	Departamento      *DepartamentoModel      `gorm:"foreignKey:DepartamentoID" json:"departamento,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PessoaModel) TableName() string { return "pessoas" }

func (m *PessoaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
