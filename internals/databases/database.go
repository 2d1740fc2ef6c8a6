package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	avaliacoesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/model"
	configuracoesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/configuracoes/model"
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	escalasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	perfisModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	usuariosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
	visitantesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gerenciamento_cultos&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate cria/atualiza o schema de todas as tabelas do sistema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&perfisModel.PermissaoModel{},
		&perfisModel.PerfilModel{},
		&perfisModel.PerfilPermissaoModel{},
		&pessoasModel.CargoEclesiasticoModel{},
		&pessoasModel.DepartamentoModel{},
		&pessoasModel.PessoaModel{},
		&usuariosModel.UsuarioModel{},
		&cultosModel.TipoCultoModel{},
		&cultosModel.CultoModel{},
		&cultosModel.TipoAtividadeModel{},
		&cultosModel.AtividadeModel{},
		&cultosModel.AtividadePessoaModel{},
		&cultosModel.AtividadeDepartamentoModel{},
		&escalasModel.FuncaoModel{},
		&escalasModel.EscalaModel{},
		&visitantesModel.FormaConhecimentoModel{},
		&visitantesModel.VisitanteModel{},
		&avaliacoesModel.CriterioAvaliacaoModel{},
		&avaliacoesModel.AvaliacaoModel{},
		&avaliacoesModel.AvaliacaoCriterioModel{},
		&auditoriaModel.LogAuditoriaModel{},
		&configuracoesModel.ConfiguracaoModel{},
	)
}

// EnsureIndexes cria os índices únicos parciais que servem de garantia de
// unicidade no banco. As verificações feitas nos controllers são apenas o
// pré-voo que devolve uma mensagem amigável; sob requisições concorrentes é
// esta camada que impede a gravação duplicada.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_escalas_pessoa_culto_funcao
			ON escalas (pessoa_id, culto_id, funcao_id)
			WHERE status <> 'cancelada' AND deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_cultos_data_local_inicio
			ON cultos (data_culto, local, horario_inicio)
			WHERE status <> 'cancelado' AND deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_usuarios_pessoa
			ON usuarios (pessoa_id)
			WHERE deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

func WarmUp() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if sqlDB, err := DB.DB(); err == nil {
			if err := sqlDB.Ping(); err != nil {
				log.Printf("warm-up ping err: %v", err)
			}
		}
	}()
}
