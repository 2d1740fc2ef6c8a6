package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int { return (p.Page - 1) * p.Limit }

// ParsePagination lê ?page= e ?limit= com defaults e teto.
func ParsePagination(c *fiber.Ctx) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	limit := atoiDefault(c.Query("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageParams{Page: page, Limit: limit}
}

// BuildPagination monta o bloco de paginação das respostas de listagem.
func BuildPagination(total int64, p PageParams) fiber.Map {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return fiber.Map{
		"page":    p.Page,
		"limit":   p.Limit,
		"total":   total,
		"pages":   pages,
		"hasNext": pages > 0 && p.Page < pages,
		"hasPrev": p.Page > 1,
	}
}

// SafeOrder devolve cláusula ORDER BY com coluna restrita a uma whitelist.
func SafeOrder(sortBy, order string, allowed map[string]string, defaultKey string) string {
	col, ok := allowed[strings.TrimSpace(sortBy)]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
