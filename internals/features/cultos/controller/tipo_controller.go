package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

// Controllers dos dados de referência de cultos (tipos de culto e de atividade).

type tipoRequest struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=100"`
	Descricao *string `json:"descricao,omitempty"`
	Cor       *string `json:"cor,omitempty" validate:"omitempty,hexcolor"`
	Ativo     *bool   `json:"ativo,omitempty"`
}

type TipoCultoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTipoCultoController(db *gorm.DB) *TipoCultoController {
	return &TipoCultoController{DB: db, Validate: validator.New()}
}

// GET /api/tipos-culto
func (ctrl *TipoCultoController) Listar(c *fiber.Ctx) error {
	var tipos []model.TipoCultoModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&tipos).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, tipos)
}

// POST /api/tipos-culto
func (ctrl *TipoCultoController) Criar(c *fiber.Ctx) error {
	var req tipoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tipo := model.TipoCultoModel{Nome: req.Nome, Descricao: req.Descricao, Cor: req.Cor, Ativo: true}
	if req.Ativo != nil {
		tipo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Create(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um tipo de culto com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "tipos_culto", tipo.ID.String(), nil, tipo)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tipo de culto criado com sucesso", tipo)
}

// PUT /api/tipos-culto/:id
func (ctrl *TipoCultoController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req tipoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tipo model.TipoCultoModel
	if err := ctrl.DB.First(&tipo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo de culto não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := tipo

	tipo.Nome = req.Nome
	tipo.Descricao = req.Descricao
	tipo.Cor = req.Cor
	if req.Ativo != nil {
		tipo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Save(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um tipo de culto com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "tipos_culto", tipo.ID.String(), anterior, tipo)
	return helper.SuccessMessage(c, "Tipo de culto atualizado com sucesso", tipo)
}

// DELETE /api/tipos-culto/:id
func (ctrl *TipoCultoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var tipo model.TipoCultoModel
	if err := ctrl.DB.First(&tipo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo de culto não encontrado")
		}
		return helper.InternalError(c, err)
	}

	var emUso int64
	if err := ctrl.DB.Model(&model.CultoModel{}).
		Where("tipo_culto_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir: tipo em uso por cultos cadastrados")
	}

	if err := ctrl.DB.Delete(&tipo).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "tipos_culto", tipo.ID.String(), tipo, nil)
	return helper.SuccessMessage(c, "Tipo de culto excluído com sucesso", nil)
}

type TipoAtividadeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTipoAtividadeController(db *gorm.DB) *TipoAtividadeController {
	return &TipoAtividadeController{DB: db, Validate: validator.New()}
}

// GET /api/tipos-atividade
func (ctrl *TipoAtividadeController) Listar(c *fiber.Ctx) error {
	var tipos []model.TipoAtividadeModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&tipos).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, tipos)
}

// POST /api/tipos-atividade
func (ctrl *TipoAtividadeController) Criar(c *fiber.Ctx) error {
	var req tipoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tipo := model.TipoAtividadeModel{Nome: req.Nome, Descricao: req.Descricao, Ativo: true}
	if req.Ativo != nil {
		tipo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Create(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um tipo de atividade com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "tipos_atividade", tipo.ID.String(), nil, tipo)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tipo de atividade criado com sucesso", tipo)
}

// PUT /api/tipos-atividade/:id
func (ctrl *TipoAtividadeController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req tipoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tipo model.TipoAtividadeModel
	if err := ctrl.DB.First(&tipo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo de atividade não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := tipo

	tipo.Nome = req.Nome
	tipo.Descricao = req.Descricao
	if req.Ativo != nil {
		tipo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Save(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um tipo de atividade com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "tipos_atividade", tipo.ID.String(), anterior, tipo)
	return helper.SuccessMessage(c, "Tipo de atividade atualizado com sucesso", tipo)
}

// DELETE /api/tipos-atividade/:id
func (ctrl *TipoAtividadeController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var tipo model.TipoAtividadeModel
	if err := ctrl.DB.First(&tipo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo de atividade não encontrado")
		}
		return helper.InternalError(c, err)
	}

	var emUso int64
	if err := ctrl.DB.Model(&model.AtividadeModel{}).
		Where("tipo_atividade_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir: tipo em uso por atividades cadastradas")
	}

	if err := ctrl.DB.Delete(&tipo).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "tipos_atividade", tipo.ID.String(), tipo, nil)
	return helper.SuccessMessage(c, "Tipo de atividade excluído com sucesso", nil)
}
