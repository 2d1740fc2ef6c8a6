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
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
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
		&cultosModel.TipoCultoModel{},
		&cultosModel.CultoModel{},
		&cultosModel.TipoAtividadeModel{},
		&cultosModel.AtividadeModel{},
		&cultosModel.AtividadePessoaModel{},
		&cultosModel.AtividadeDepartamentoModel{},
		&model.FuncaoModel{},
		&model.EscalaModel{},
		&auditoriaModel.LogAuditoriaModel{},
	))

	app := fiber.New()
	ctrl := NewEscalaController(db)
	app.Put("/api/escalas/:id", ctrl.Atualizar)
	return app, db
}

func criarEscala(t *testing.T, db *gorm.DB, status string) model.EscalaModel {
	t.Helper()

	pessoa := pessoasModel.PessoaModel{NomeCompleto: "Maria de Souza", Ativo: true}
	require.NoError(t, db.Create(&pessoa).Error)

	tipo := cultosModel.TipoCultoModel{Nome: "Celebração", Ativo: true}
	require.NoError(t, db.Create(&tipo).Error)

	data, _ := time.Parse("2006-01-02", "2026-03-08")
	culto := cultosModel.CultoModel{
		Titulo:        "Culto da noite",
		DataCulto:     data,
		HorarioInicio: "19:00:00",
		Local:         "Templo Sede",
		Status:        cultosModel.StatusCultoPlanejado,
		TipoCultoID:   tipo.ID,
	}
	require.NoError(t, db.Create(&culto).Error)

	funcao := model.FuncaoModel{Nome: "Recepcionista", Ativo: true}
	require.NoError(t, db.Create(&funcao).Error)

	escala := model.EscalaModel{
		PessoaID: pessoa.ID, CultoID: culto.ID, FuncaoID: funcao.ID,
		Status: status,
	}
	require.NoError(t, db.Create(&escala).Error)
	return escala
}

func TestAtualizarEscalaConfirmadaRejeitaEdicao(t *testing.T) {
	app, db := setupApp(t)
	escala := criarEscala(t, db, model.StatusEscalaConfirmada)

	req := httptest.NewRequest("PUT", "/api/escalas/"+escala.ID.String(),
		strings.NewReader(`{"observacoes":"chegar 30 minutos antes"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var atual model.EscalaModel
	require.NoError(t, db.First(&atual, "id = ?", escala.ID).Error)
	assert.Nil(t, atual.Observacoes, "escala confirmada não aceita edição de campos")
}

func TestAtualizarEscalaAusenteRejeitaEdicao(t *testing.T) {
	app, db := setupApp(t)
	escala := criarEscala(t, db, model.StatusEscalaAusente)

	req := httptest.NewRequest("PUT", "/api/escalas/"+escala.ID.String(),
		strings.NewReader(`{"observacoes":"qualquer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAtualizarEscalaPendentePermiteEdicao(t *testing.T) {
	app, db := setupApp(t)
	escala := criarEscala(t, db, model.StatusEscalaPendente)

	req := httptest.NewRequest("PUT", "/api/escalas/"+escala.ID.String(),
		strings.NewReader(`{"observacoes":"ensaio às 18h"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var atual model.EscalaModel
	require.NoError(t, db.First(&atual, "id = ?", escala.ID).Error)
	require.NotNil(t, atual.Observacoes)
	assert.Equal(t, "ensaio às 18h", *atual.Observacoes)
}
