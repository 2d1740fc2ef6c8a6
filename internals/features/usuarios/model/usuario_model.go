package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	perfisModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
)

// MaxTentativasLogin é o limite de falhas consecutivas antes do bloqueio.
const MaxTentativasLogin = 5

// DuracaoBloqueio é a janela de bloqueio após exceder o limite.
const DuracaoBloqueio = 30 * time.Minute

type UsuarioModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	SenhaHash   string    `gorm:"size:255;not null" json:"-"`
	Ativo           bool       `gorm:"not null;default:true" json:"ativo"`
	EmailVerificado bool       `gorm:"not null;default:false" json:"email_verificado"`
	UltimoLogin     *time.Time `json:"ultimo_login,omitempty"`

	TentativasLogin int        `gorm:"not null;default:0" json:"-"`
	BloqueadoAte    *time.Time `json:"-"`

	PessoaID uuid.UUID `gorm:"type:uuid;not null;index" json:"pessoa_id"`
	PerfilID uuid.UUID `gorm:"type:uuid;not null;index" json:"perfil_id"`

	Pessoa *pessoasModel.PessoaModel `gorm:"foreignKey:PessoaID" json:"pessoa,omitempty"`
	Perfil *perfisModel.PerfilModel  `gorm:"foreignKey:PerfilID" json:"perfil,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UsuarioModel) TableName() string { return "usuarios" }

func (m *UsuarioModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Bloqueado informa se a conta está dentro de uma janela de bloqueio.
func (m *UsuarioModel) Bloqueado(agora time.Time) bool {
	return m.BloqueadoAte != nil && agora.Before(*m.BloqueadoAte)
}

// VerificarSenha compara a senha em texto com o hash armazenado.
func (m *UsuarioModel) VerificarSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.SenhaHash), []byte(senha)) == nil
}

// HashSenha gera o hash bcrypt (custo 12) para armazenamento.
func HashSenha(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
