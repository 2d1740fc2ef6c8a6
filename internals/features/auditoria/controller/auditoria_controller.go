package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type AuditoriaController struct {
	DB *gorm.DB
}

func NewAuditoriaController(db *gorm.DB) *AuditoriaController {
	return &AuditoriaController{DB: db}
}

// GET /api/auditoria - consulta da trilha (somente admin_sistema).
func (ctrl *AuditoriaController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.LogAuditoriaModel{})

	if tabela := c.Query("tabela"); tabela != "" {
		q = q.Where("tabela = ?", tabela)
	}
	if operacao := c.Query("operacao"); operacao != "" {
		q = q.Where("operacao = ?", operacao)
	}
	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		q = q.Where("usuario_id = ?", usuarioID)
	}
	if registroID := c.Query("registro_id"); registroID != "" {
		q = q.Where("registro_id = ?", registroID)
	}
	if di := c.Query("data_inicio"); di != "" {
		q = q.Where("created_at >= ?", di)
	}
	if df := c.Query("data_fim"); df != "" {
		q = q.Where("created_at <= ?", df)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var logs []model.LogAuditoriaModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset()).
		Find(&logs).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, logs, helper.BuildPagination(total, p))
}
