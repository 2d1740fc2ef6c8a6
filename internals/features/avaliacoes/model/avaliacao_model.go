package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
)

/* =======================================================
   CriterioAvaliacaoModel - critérios configuráveis
   ======================================================= */

type CriterioAvaliacaoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string   `gorm:"type:text" json:"descricao,omitempty"`
	Ordem     int       `gorm:"not null;default:0" json:"ordem"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CriterioAvaliacaoModel) TableName() string { return "criterios_avaliacao" }

func (m *CriterioAvaliacaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =======================================================
   AvaliacaoModel - avaliação anônima de um culto
   ======================================================= */

type AvaliacaoModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CultoID uuid.UUID               `gorm:"type:uuid;not null;index" json:"culto_id"`
	Culto   *cultosModel.CultoModel `gorm:"foreignKey:CultoID" json:"culto,omitempty"`

	// Nota geral de 1 a 5.
	NotaGeral  int     `gorm:"not null" json:"nota_geral"`
	Comentario *string `gorm:"type:text" json:"comentario,omitempty"`

	// Identificação opcional: o formulário público aceita envio anônimo.
	NomeAvaliador  *string `gorm:"size:255" json:"nome_avaliador,omitempty"`
	EmailAvaliador *string `gorm:"size:255" json:"email_avaliador,omitempty"`

	Recomendaria *bool      `json:"recomendaria,omitempty"`
	DataVisita   *time.Time `gorm:"type:date" json:"data_visita,omitempty"`

	Criterios []AvaliacaoCriterioModel `gorm:"foreignKey:AvaliacaoID" json:"criterios,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AvaliacaoModel) TableName() string { return "avaliacoes" }

func (m *AvaliacaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AvaliacaoCriterioModel é a nota dada a um critério específico.
type AvaliacaoCriterioModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AvaliacaoID uuid.UUID `gorm:"type:uuid;not null;index" json:"avaliacao_id"`
	CriterioID  uuid.UUID `gorm:"type:uuid;not null;index" json:"criterio_id"`
	Nota        int       `gorm:"not null" json:"nota"`

	Criterio *CriterioAvaliacaoModel `gorm:"foreignKey:CriterioID" json:"criterio,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AvaliacaoCriterioModel) TableName() string { return "avaliacao_criterios" }

func (m *AvaliacaoCriterioModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
