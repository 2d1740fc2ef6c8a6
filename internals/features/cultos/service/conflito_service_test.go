package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
)

func setupDB(t *testing.T) *gorm.DB {
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
	))
	return db
}

func criarCulto(t *testing.T, db *gorm.DB, data time.Time, local, inicio string, fim *string, status string) model.CultoModel {
	t.Helper()
	tipo := model.TipoCultoModel{Nome: "Celebração " + inicio + local, Ativo: true}
	require.NoError(t, db.Create(&tipo).Error)

	culto := model.CultoModel{
		Titulo:        "Culto de teste",
		DataCulto:     data,
		HorarioInicio: inicio,
		HorarioFim:    fim,
		Local:         local,
		Status:        status,
		TipoCultoID:   tipo.ID,
	}
	require.NoError(t, db.Create(&culto).Error)
	return culto
}

func ptr(s string) *string { return &s }

func dia(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestVerificarConflitoJanelasSobrepostas(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	criarCulto(t, db, data, "Templo Sede", "19:00:00", ptr("21:00:00"), model.StatusCultoPlanejado)

	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "20:00:00", Fim: ptr("22:00:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, conflito)
	assert.Equal(t, "19:00:00", conflito.HorarioInicio)
}

func TestVerificarConflitoJanelasEncostadasNaoConflitam(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	criarCulto(t, db, data, "Templo Sede", "19:00:00", ptr("21:00:00"), model.StatusCultoPlanejado)

	// Intervalos meio-abertos: terminar 21:00 e começar 21:00 é permitido.
	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "21:00:00", Fim: ptr("23:00:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, conflito)
}

func TestVerificarConflitoSimetria(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	criarCulto(t, db, data, "Templo Sede", "20:00:00", ptr("22:00:00"), model.StatusCultoPlanejado)

	// Candidato antes, sobrepondo o início do existente.
	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "19:00:00", Fim: ptr("20:30:00"),
	})
	require.NoError(t, err)
	assert.NotNil(t, conflito)
}

func TestVerificarConflitoLocalEDataDiferentes(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	criarCulto(t, db, data, "Templo Sede", "19:00:00", ptr("21:00:00"), model.StatusCultoPlanejado)

	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Anexo", Inicio: "19:00:00", Fim: ptr("21:00:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, conflito, "outro local não conflita")

	conflito, err = VerificarConflito(db, Janela{
		Data: dia(t, "2026-03-09"), Local: "Templo Sede", Inicio: "19:00:00", Fim: ptr("21:00:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, conflito, "outro dia não conflita")
}

func TestVerificarConflitoIgnoraCancelados(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	criarCulto(t, db, data, "Templo Sede", "19:00:00", ptr("21:00:00"), model.StatusCultoCancelado)

	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "19:30:00", Fim: ptr("20:30:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, conflito)
}

func TestVerificarConflitoSemHorarioFim(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	// Existente pontual: fim tratado como início (19:00).
	criarCulto(t, db, data, "Templo Sede", "19:00:00", nil, model.StatusCultoPlanejado)

	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "18:00:00", Fim: ptr("20:00:00"),
	})
	require.NoError(t, err)
	assert.NotNil(t, conflito, "candidato cobre o instante do existente")

	conflito, err = VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "19:00:00", Fim: ptr("20:00:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, conflito, "janela de duração zero não é coberta por começo igual")
}

func TestVerificarConflitoExcluiProprioRegistro(t *testing.T) {
	db := setupDB(t)
	data := dia(t, "2026-03-08")
	culto := criarCulto(t, db, data, "Templo Sede", "19:00:00", ptr("21:00:00"), model.StatusCultoPlanejado)

	// Atualização do próprio culto mantendo a janela não conflita consigo.
	conflito, err := VerificarConflito(db, Janela{
		Data: data, Local: "Templo Sede", Inicio: "19:00:00", Fim: ptr("21:00:00"),
		ExcludeID: &culto.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, conflito)
}

func TestNormalizarHorario(t *testing.T) {
	h, err := NormalizarHorario("19:30")
	require.NoError(t, err)
	assert.Equal(t, "19:30:00", h)

	h, err = NormalizarHorario("07:05:30")
	require.NoError(t, err)
	assert.Equal(t, "07:05:30", h)

	_, err = NormalizarHorario("25:00")
	assert.Error(t, err)

	_, err = NormalizarHorario("banana")
	assert.Error(t, err)
}

func TestTransicaoCultoValida(t *testing.T) {
	assert.True(t, model.TransicaoCultoValida(model.StatusCultoPlanejado, model.StatusCultoEmAndamento))
	assert.True(t, model.TransicaoCultoValida(model.StatusCultoPlanejado, model.StatusCultoCancelado))
	assert.True(t, model.TransicaoCultoValida(model.StatusCultoEmAndamento, model.StatusCultoFinalizado))
	assert.False(t, model.TransicaoCultoValida(model.StatusCultoPlanejado, model.StatusCultoFinalizado), "finalizar exige passar por em_andamento")
	assert.False(t, model.TransicaoCultoValida(model.StatusCultoFinalizado, model.StatusCultoPlanejado))
	assert.False(t, model.TransicaoCultoValida(model.StatusCultoCancelado, model.StatusCultoEmAndamento))
}
