package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type funcaoRequest struct {
	Nome              string  `json:"nome" validate:"required,min=2,max=100"`
	Descricao         *string `json:"descricao,omitempty"`
	Cor               *string `json:"cor,omitempty" validate:"omitempty,hexcolor"`
	RequerConfirmacao *bool   `json:"requer_confirmacao,omitempty"`
	Ativo             *bool   `json:"ativo,omitempty"`
}

type FuncaoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFuncaoController(db *gorm.DB) *FuncaoController {
	return &FuncaoController{DB: db, Validate: validator.New()}
}

// GET /api/funcoes
func (ctrl *FuncaoController) Listar(c *fiber.Ctx) error {
	var funcoes []model.FuncaoModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&funcoes).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, funcoes)
}

// POST /api/funcoes
func (ctrl *FuncaoController) Criar(c *fiber.Ctx) error {
	var req funcaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	funcao := model.FuncaoModel{Nome: req.Nome, Descricao: req.Descricao, Cor: req.Cor, RequerConfirmacao: true, Ativo: true}
	if req.RequerConfirmacao != nil {
		funcao.RequerConfirmacao = *req.RequerConfirmacao
	}
	if req.Ativo != nil {
		funcao.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Create(&funcao).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe uma função com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "funcoes", funcao.ID.String(), nil, funcao)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Função criada com sucesso", funcao)
}

// PUT /api/funcoes/:id
func (ctrl *FuncaoController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req funcaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var funcao model.FuncaoModel
	if err := ctrl.DB.First(&funcao, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Função não encontrada")
		}
		return helper.InternalError(c, err)
	}
	anterior := funcao

	funcao.Nome = req.Nome
	funcao.Descricao = req.Descricao
	funcao.Cor = req.Cor
	if req.RequerConfirmacao != nil {
		funcao.RequerConfirmacao = *req.RequerConfirmacao
	}
	if req.Ativo != nil {
		funcao.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Save(&funcao).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe uma função com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "funcoes", funcao.ID.String(), anterior, funcao)
	return helper.SuccessMessage(c, "Função atualizada com sucesso", funcao)
}

// DELETE /api/funcoes/:id
func (ctrl *FuncaoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var funcao model.FuncaoModel
	if err := ctrl.DB.First(&funcao, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Função não encontrada")
		}
		return helper.InternalError(c, err)
	}

	var emUso int64
	if err := ctrl.DB.Model(&model.EscalaModel{}).
		Where("funcao_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir: função em uso por escalas cadastradas")
	}

	if err := ctrl.DB.Delete(&funcao).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "funcoes", funcao.ID.String(), funcao, nil)
	return helper.SuccessMessage(c, "Função excluída com sucesso", nil)
}
