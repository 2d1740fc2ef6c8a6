package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAvaliacaoRequestExigeDataECriterios(t *testing.T) {
	v := validator.New()

	req := CreateAvaliacaoRequest{CultoID: uuid.New(), NotaGeral: 5}
	assert.Error(t, v.Struct(req), "sem data_visita e sem critérios o formulário é inválido")

	req.DataVisita = "2026-03-08"
	assert.Error(t, v.Struct(req), "ao menos um critério é obrigatório")

	req.Criterios = []CriterioNotaInput{}
	assert.Error(t, v.Struct(req), "lista vazia de critérios não basta")

	req.Criterios = []CriterioNotaInput{{CriterioID: uuid.New(), Nota: 4}}
	require.NoError(t, v.Struct(req))
}

func TestCreateAvaliacaoRequestNotaDeCriterioForaDaFaixa(t *testing.T) {
	v := validator.New()

	req := CreateAvaliacaoRequest{
		CultoID:    uuid.New(),
		NotaGeral:  5,
		DataVisita: "2026-03-08",
		Criterios:  []CriterioNotaInput{{CriterioID: uuid.New(), Nota: 6}},
	}
	assert.Error(t, v.Struct(req))
}

func TestCreateAvaliacaoRequestAnonimaContinuaValida(t *testing.T) {
	v := validator.New()

	req := CreateAvaliacaoRequest{
		CultoID:    uuid.New(),
		NotaGeral:  4,
		DataVisita: "2026-03-08",
		Criterios:  []CriterioNotaInput{{CriterioID: uuid.New(), Nota: 3}},
	}
	require.NoError(t, v.Struct(req), "identificação segue opcional")
}
