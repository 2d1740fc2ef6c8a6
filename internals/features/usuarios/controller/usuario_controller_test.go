package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/databases"
	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	escalasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	perfisModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&perfisModel.PermissaoModel{},
		&perfisModel.PerfilModel{},
		&perfisModel.PerfilPermissaoModel{},
		&pessoasModel.CargoEclesiasticoModel{},
		&pessoasModel.DepartamentoModel{},
		&pessoasModel.PessoaModel{},
		&model.UsuarioModel{},
		&cultosModel.TipoCultoModel{},
		&cultosModel.CultoModel{},
		&escalasModel.FuncaoModel{},
		&escalasModel.EscalaModel{},
		&auditoriaModel.LogAuditoriaModel{},
	))
	require.NoError(t, database.EnsureIndexes(db))

	app := fiber.New()
	ctrl := NewUsuarioController(db)
	app.Post("/api/usuarios", ctrl.Criar)
	return app, db
}

func criarVinculo(t *testing.T, db *gorm.DB) (pessoasModel.PessoaModel, perfisModel.PerfilModel) {
	t.Helper()

	pessoa := pessoasModel.PessoaModel{NomeCompleto: "José Pereira", Ativo: true}
	require.NoError(t, db.Create(&pessoa).Error)

	perfil := perfisModel.PerfilModel{Nome: "Secretaria", NivelAcesso: 5, Ativo: true}
	require.NoError(t, db.Create(&perfil).Error)

	return pessoa, perfil
}

func TestCriarUsuarioPessoaJaVinculadaRetornaConflito(t *testing.T) {
	app, db := setupApp(t)
	pessoa, perfil := criarVinculo(t, db)

	hash, err := model.HashSenha("segredo1")
	require.NoError(t, err)
	existente := model.UsuarioModel{
		Email: "jose@igreja.local", SenhaHash: hash, Ativo: true,
		PessoaID: pessoa.ID, PerfilID: perfil.ID,
	}
	require.NoError(t, db.Create(&existente).Error)

	body := `{"email":"jose2@igreja.local","senha":"segredo2",` +
		`"pessoa_id":"` + pessoa.ID.String() + `","perfil_id":"` + perfil.ID.String() + `"}`
	req := httptest.NewRequest("POST", "/api/usuarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var total int64
	require.NoError(t, db.Model(&model.UsuarioModel{}).
		Where("pessoa_id = ?", pessoa.ID).Count(&total).Error)
	assert.EqualValues(t, 1, total, "uma pessoa tem no máximo um usuário")
}

func TestIndiceUnicoPessoaUsuario(t *testing.T) {
	_, db := setupApp(t)
	pessoa, perfil := criarVinculo(t, db)

	hash, err := model.HashSenha("segredo1")
	require.NoError(t, err)

	primeiro := model.UsuarioModel{
		Email: "a@igreja.local", SenhaHash: hash, Ativo: true,
		PessoaID: pessoa.ID, PerfilID: perfil.ID,
	}
	require.NoError(t, db.Create(&primeiro).Error)

	segundo := model.UsuarioModel{
		Email: "b@igreja.local", SenhaHash: hash, Ativo: true,
		PessoaID: pessoa.ID, PerfilID: perfil.ID,
	}
	err = db.Create(&segundo).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Soft delete libera o vínculo: o índice é parcial em deleted_at IS NULL.
	require.NoError(t, db.Delete(&primeiro).Error)
	terceiro := model.UsuarioModel{
		Email: "c@igreja.local", SenhaHash: hash, Ativo: true,
		PessoaID: pessoa.ID, PerfilID: perfil.ID,
	}
	require.NoError(t, db.Create(&terceiro).Error)
}
