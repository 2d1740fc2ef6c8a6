package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConfiguracaoModel guarda um par chave/valor de configuração do sistema.
// O valor é JSON livre para aceitar string, número, booleano ou objeto.
type ConfiguracaoModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Chave     string         `gorm:"size:100;uniqueIndex;not null" json:"chave"`
	Valor     datatypes.JSON `gorm:"not null" json:"valor"`
	Descricao *string        `gorm:"type:text" json:"descricao,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ConfiguracaoModel) TableName() string { return "configuracoes" }

func (m *ConfiguracaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
