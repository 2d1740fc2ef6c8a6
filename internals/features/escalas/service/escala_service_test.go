package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
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
		&cultosModel.TipoCultoModel{},
		&cultosModel.CultoModel{},
		&cultosModel.TipoAtividadeModel{},
		&cultosModel.AtividadeModel{},
		&cultosModel.AtividadePessoaModel{},
		&cultosModel.AtividadeDepartamentoModel{},
		&model.FuncaoModel{},
		&model.EscalaModel{},
	))
	return db
}

type cenario struct {
	pessoa uuid.UUID
	culto  uuid.UUID
	funcao uuid.UUID
}

func montarCenario(t *testing.T, db *gorm.DB) cenario {
	t.Helper()

	pessoa := pessoasModel.PessoaModel{NomeCompleto: "João da Silva", Ativo: true}
	require.NoError(t, db.Create(&pessoa).Error)

	tipo := cultosModel.TipoCultoModel{Nome: "Celebração", Ativo: true}
	require.NoError(t, db.Create(&tipo).Error)

	data, _ := time.Parse("2006-01-02", "2026-03-08")
	culto := cultosModel.CultoModel{
		Titulo:        "Culto da manhã",
		DataCulto:     data,
		HorarioInicio: "09:00:00",
		Local:         "Templo Sede",
		Status:        cultosModel.StatusCultoPlanejado,
		TipoCultoID:   tipo.ID,
	}
	require.NoError(t, db.Create(&culto).Error)

	funcao := model.FuncaoModel{Nome: "Operador de Som", Ativo: true}
	require.NoError(t, db.Create(&funcao).Error)

	return cenario{pessoa: pessoa.ID, culto: culto.ID, funcao: funcao.ID}
}

func TestVerificarDuplicidadeBloqueiaEscalaViva(t *testing.T) {
	db := setupDB(t)
	cen := montarCenario(t, db)

	escala := model.EscalaModel{
		PessoaID: cen.pessoa, CultoID: cen.culto, FuncaoID: cen.funcao,
		Status: model.StatusEscalaPendente,
	}
	require.NoError(t, db.Create(&escala).Error)

	dup, err := VerificarDuplicidade(db, cen.pessoa, cen.culto, cen.funcao, nil)
	require.NoError(t, err)
	require.NotNil(t, dup)
	assert.Equal(t, escala.ID, dup.ID)
}

func TestVerificarDuplicidadeCanceladaLiberaVaga(t *testing.T) {
	db := setupDB(t)
	cen := montarCenario(t, db)

	escala := model.EscalaModel{
		PessoaID: cen.pessoa, CultoID: cen.culto, FuncaoID: cen.funcao,
		Status: model.StatusEscalaCancelada,
	}
	require.NoError(t, db.Create(&escala).Error)

	dup, err := VerificarDuplicidade(db, cen.pessoa, cen.culto, cen.funcao, nil)
	require.NoError(t, err)
	assert.Nil(t, dup, "escala cancelada não bloqueia novo cadastro")
}

func TestVerificarDuplicidadeOutraFuncaoNaoBloqueia(t *testing.T) {
	db := setupDB(t)
	cen := montarCenario(t, db)

	escala := model.EscalaModel{
		PessoaID: cen.pessoa, CultoID: cen.culto, FuncaoID: cen.funcao,
		Status: model.StatusEscalaConfirmada,
	}
	require.NoError(t, db.Create(&escala).Error)

	outraFuncao := model.FuncaoModel{Nome: "Recepcionista", Ativo: true}
	require.NoError(t, db.Create(&outraFuncao).Error)

	dup, err := VerificarDuplicidade(db, cen.pessoa, cen.culto, outraFuncao.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, dup)
}

func TestVerificarDuplicidadeExcludeID(t *testing.T) {
	db := setupDB(t)
	cen := montarCenario(t, db)

	escala := model.EscalaModel{
		PessoaID: cen.pessoa, CultoID: cen.culto, FuncaoID: cen.funcao,
		Status: model.StatusEscalaPendente,
	}
	require.NoError(t, db.Create(&escala).Error)

	dup, err := VerificarDuplicidade(db, cen.pessoa, cen.culto, cen.funcao, &escala.ID)
	require.NoError(t, err)
	assert.Nil(t, dup, "a própria escala não conta como duplicata na atualização")
}

func TestTransicaoValida(t *testing.T) {
	casos := []struct {
		de, para string
		ok       bool
	}{
		{model.StatusEscalaPendente, model.StatusEscalaConfirmada, true},
		{model.StatusEscalaPendente, model.StatusEscalaAusente, true},
		{model.StatusEscalaPendente, model.StatusEscalaCancelada, true},
		{model.StatusEscalaPendente, model.StatusEscalaPresente, false}, // check-in exige confirmação prévia
		{model.StatusEscalaConfirmada, model.StatusEscalaPresente, true},
		{model.StatusEscalaConfirmada, model.StatusEscalaConfirmada, false}, // reconfirmar é erro
		{model.StatusEscalaConfirmada, model.StatusEscalaAusente, true},
		{model.StatusEscalaConfirmada, model.StatusEscalaCancelada, true},
		{model.StatusEscalaAusente, model.StatusEscalaCancelada, false}, // terminal
		{model.StatusEscalaAusente, model.StatusEscalaConfirmada, false},
		{model.StatusEscalaPresente, model.StatusEscalaCancelada, false}, // terminal
		{model.StatusEscalaCancelada, model.StatusEscalaPendente, false}, // terminal
	}

	for _, caso := range casos {
		assert.Equal(t, caso.ok, model.TransicaoValida(caso.de, caso.para),
			"%s -> %s", caso.de, caso.para)
	}
}

func TestTerminal(t *testing.T) {
	terminais := map[string]bool{
		model.StatusEscalaPendente:   false,
		model.StatusEscalaConfirmada: false,
		model.StatusEscalaPresente:   true,
		model.StatusEscalaAusente:    true,
		model.StatusEscalaCancelada:  true,
	}
	for status, esperado := range terminais {
		escala := model.EscalaModel{Status: status}
		assert.Equal(t, esperado, escala.Terminal(), status)
	}
}
