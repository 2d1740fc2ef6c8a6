package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pessoasModel.CargoEclesiasticoModel{},
		&pessoasModel.DepartamentoModel{},
		&pessoasModel.PessoaModel{},
		&model.TipoCultoModel{},
		&model.CultoModel{},
		&model.TipoAtividadeModel{},
		&model.AtividadeModel{},
		&model.AtividadePessoaModel{},
		&model.AtividadeDepartamentoModel{},
		&auditoriaModel.LogAuditoriaModel{},
	))

	app := fiber.New()
	ctrl := NewCultoController(db)
	app.Put("/api/cultos/:id", ctrl.Atualizar)
	return app, db
}

func criarCulto(t *testing.T, db *gorm.DB, data time.Time, status string) model.CultoModel {
	t.Helper()

	tipo := model.TipoCultoModel{Nome: "Celebração", Ativo: true}
	require.NoError(t, db.Create(&tipo).Error)

	culto := model.CultoModel{
		Titulo:        "Culto da manhã",
		DataCulto:     data,
		HorarioInicio: "09:00:00",
		Local:         "Templo Sede",
		Status:        status,
		TipoCultoID:   tipo.ID,
	}
	require.NoError(t, db.Create(&culto).Error)
	return culto
}

func TestAtualizarCultoPassadoRejeitado(t *testing.T) {
	app, db := setupApp(t)

	ontem := time.Now().AddDate(0, 0, -1)
	culto := criarCulto(t, db, ontem, model.StatusCultoPlanejado)

	req := httptest.NewRequest("PUT", "/api/cultos/"+culto.ID.String(),
		strings.NewReader(`{"titulo":"Título novo"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var atual model.CultoModel
	require.NoError(t, db.First(&atual, "id = ?", culto.ID).Error)
	assert.Equal(t, "Culto da manhã", atual.Titulo, "culto já realizado não aceita edição")
}

func TestAtualizarCultoFuturoPermitido(t *testing.T) {
	app, db := setupApp(t)

	proximaSemana := time.Now().AddDate(0, 0, 7)
	culto := criarCulto(t, db, proximaSemana, model.StatusCultoPlanejado)

	req := httptest.NewRequest("PUT", "/api/cultos/"+culto.ID.String(),
		strings.NewReader(`{"titulo":"Culto de Santa Ceia"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var atual model.CultoModel
	require.NoError(t, db.First(&atual, "id = ?", culto.ID).Error)
	assert.Equal(t, "Culto de Santa Ceia", atual.Titulo)
}
