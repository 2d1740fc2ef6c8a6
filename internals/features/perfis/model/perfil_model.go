package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   PermissaoModel - capacidade atômica (dado de referência)
   ======================================================= */

type PermissaoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Codigo    string    `gorm:"size:100;uniqueIndex;not null" json:"codigo"`
	Nome      string    `gorm:"size:255;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Modulo    string    `gorm:"size:50;not null;index" json:"modulo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PermissaoModel) TableName() string { return "permissoes" }

func (m *PermissaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   PerfilModel - nível de acesso nomeado com permissões N:N
   ======================================================= */

type PerfilModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome        string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao   *string   `gorm:"type:text" json:"descricao,omitempty"`
	NivelAcesso int       `gorm:"not null" json:"nivel_acesso"` // 1..10
	Ativo       bool      `gorm:"not null;default:true" json:"ativo"`

	Permissoes []PermissaoModel `gorm:"many2many:perfil_permissoes;joinForeignKey:PerfilID;joinReferences:PermissaoID" json:"permissoes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PerfilModel) TableName() string { return "perfis" }

func (m *PerfilModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CodigosPermissoes projeta os códigos das permissões carregadas.
func (m *PerfilModel) CodigosPermissoes() []string {
	codigos := make([]string, 0, len(m.Permissoes))
	for _, p := range m.Permissoes {
		codigos = append(codigos, p.Codigo)
	}
	return codigos
}

/* =======================================================
   PerfilPermissaoModel - tabela de junção explícita
   ======================================================= */

type PerfilPermissaoModel struct {
	PerfilID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"perfil_id"`
	PermissaoID uuid.UUID `gorm:"type:uuid;primaryKey" json:"permissao_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PerfilPermissaoModel) TableName() string { return "perfil_permissoes" }
