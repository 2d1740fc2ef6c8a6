package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseEm(t *testing.T, target string) PageParams {
	t.Helper()
	app := fiber.New()
	var params PageParams
	app.Get("/itens", func(c *fiber.Ctx) error {
		params = ParsePagination(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return params
}

func TestParsePaginationDefaults(t *testing.T) {
	p := parseEm(t, "/itens")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePaginationValoresInvalidos(t *testing.T) {
	p := parseEm(t, "/itens?page=0&limit=-5")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = parseEm(t, "/itens?page=abc&limit=xyz")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParsePaginationTeto(t *testing.T) {
	p := parseEm(t, "/itens?page=3&limit=500")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestBuildPagination(t *testing.T) {
	bloco := BuildPagination(25, PageParams{Page: 2, Limit: 10})
	assert.EqualValues(t, 25, bloco["total"])
	assert.Equal(t, 3, bloco["pages"])
	assert.Equal(t, true, bloco["hasNext"])
	assert.Equal(t, true, bloco["hasPrev"])

	bloco = BuildPagination(0, PageParams{Page: 1, Limit: 10})
	assert.Equal(t, 0, bloco["pages"])
	assert.Equal(t, false, bloco["hasNext"])
	assert.Equal(t, false, bloco["hasPrev"])
}

func TestSafeOrder(t *testing.T) {
	allowed := map[string]string{
		"nome":       "nome_completo",
		"created_at": "created_at",
	}

	assert.Equal(t, "nome_completo ASC", SafeOrder("nome", "asc", allowed, "created_at"))
	assert.Equal(t, "created_at DESC", SafeOrder("created_at", "DESC", allowed, "created_at"))
	// Coluna fora da whitelist cai no default.
	assert.Equal(t, "created_at ASC", SafeOrder("senha_hash; DROP TABLE", "asc", allowed, "created_at"))
	assert.Equal(t, "created_at ASC", SafeOrder("", "sideways", allowed, "created_at"))
}
