package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Operações registradas na trilha de auditoria.
const (
	OperacaoCreate = "CREATE"
	OperacaoUpdate = "UPDATE"
	OperacaoDelete = "DELETE"
	OperacaoLogin  = "LOGIN"
	OperacaoLogout = "LOGOUT"
)

// LogAuditoriaModel é append-only: nunca atualizado nem excluído.
type LogAuditoriaModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID       *uuid.UUID     `gorm:"type:uuid;index" json:"usuario_id,omitempty"`
	Tabela          string         `gorm:"size:100;not null;index" json:"tabela"`
	Operacao        string         `gorm:"size:20;not null" json:"operacao"`
	RegistroID      *string        `gorm:"size:100" json:"registro_id,omitempty"`
	DadosAnteriores datatypes.JSON `json:"dados_anteriores,omitempty"`
	DadosNovos      datatypes.JSON `json:"dados_novos,omitempty"`
	IPAddress       *string        `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent       *string        `gorm:"size:512" json:"user_agent,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (LogAuditoriaModel) TableName() string { return "logs_auditoria" }

func (m *LogAuditoriaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
