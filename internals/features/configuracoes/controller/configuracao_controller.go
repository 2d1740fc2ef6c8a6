package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/configuracoes/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type ConfiguracaoController struct {
	DB *gorm.DB
}

func NewConfiguracaoController(db *gorm.DB) *ConfiguracaoController {
	return &ConfiguracaoController{DB: db}
}

// GET /api/configuracoes - devolve o mapa chave -> valor.
func (ctrl *ConfiguracaoController) Listar(c *fiber.Ctx) error {
	var linhas []model.ConfiguracaoModel
	if err := ctrl.DB.Order("chave ASC").Find(&linhas).Error; err != nil {
		return helper.InternalError(c, err)
	}

	mapa := make(map[string]interface{}, len(linhas))
	for _, cfg := range linhas {
		var v interface{}
		if err := json.Unmarshal(cfg.Valor, &v); err != nil {
			v = string(cfg.Valor)
		}
		mapa[cfg.Chave] = v
	}
	return helper.Success(c, mapa)
}

// PUT /api/configuracoes - upsert transacional de um mapa chave -> valor.
// Ou todas as chaves gravam, ou nenhuma.
func (ctrl *ConfiguracaoController) Atualizar(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if len(body) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Informe ao menos uma configuração")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for chave, valor := range body {
			raw, err := json.Marshal(valor)
			if err != nil {
				return err
			}
			cfg := model.ConfiguracaoModel{Chave: chave, Valor: datatypes.JSON(raw)}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "chave"}},
				DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
			}).Create(&cfg).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "configuracoes", "", nil, body)
	return helper.SuccessMessage(c, "Configurações atualizadas com sucesso", nil)
}
