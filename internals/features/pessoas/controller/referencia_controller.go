package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

// Controllers dos dados de referência de pessoas (cargos e departamentos).

type CargoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCargoController(db *gorm.DB) *CargoController {
	return &CargoController{DB: db, Validate: validator.New()}
}

// GET /api/cargos-eclesiasticos
func (ctrl *CargoController) Listar(c *fiber.Ctx) error {
	var cargos []model.CargoEclesiasticoModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&cargos).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, cargos)
}

// POST /api/cargos-eclesiasticos
func (ctrl *CargoController) Criar(c *fiber.Ctx) error {
	var req dto.ReferenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cargo := model.CargoEclesiasticoModel{Nome: req.Nome, Descricao: req.Descricao, Ativo: true}
	if req.Ativo != nil {
		cargo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Create(&cargo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um cargo com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "cargos_eclesiasticos", cargo.ID.String(), nil, cargo)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cargo criado com sucesso", cargo)
}

// PUT /api/cargos-eclesiasticos/:id
func (ctrl *CargoController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ReferenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cargo model.CargoEclesiasticoModel
	if err := ctrl.DB.First(&cargo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Cargo não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := cargo

	cargo.Nome = req.Nome
	cargo.Descricao = req.Descricao
	if req.Ativo != nil {
		cargo.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Save(&cargo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um cargo com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "cargos_eclesiasticos", cargo.ID.String(), anterior, cargo)
	return helper.SuccessMessage(c, "Cargo atualizado com sucesso", cargo)
}

// DELETE /api/cargos-eclesiasticos/:id
func (ctrl *CargoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cargo model.CargoEclesiasticoModel
	if err := ctrl.DB.First(&cargo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Cargo não encontrado")
		}
		return helper.InternalError(c, err)
	}

	var emUso int64
	if err := ctrl.DB.Model(&model.PessoaModel{}).
		Where("cargo_eclesiastico_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir: cargo em uso por pessoas cadastradas")
	}

	if err := ctrl.DB.Delete(&cargo).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "cargos_eclesiasticos", cargo.ID.String(), cargo, nil)
	return helper.SuccessMessage(c, "Cargo excluído com sucesso", nil)
}

type DepartamentoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartamentoController(db *gorm.DB) *DepartamentoController {
	return &DepartamentoController{DB: db, Validate: validator.New()}
}

// GET /api/departamentos
func (ctrl *DepartamentoController) Listar(c *fiber.Ctx) error {
	var departamentos []model.DepartamentoModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&departamentos).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, departamentos)
}

// POST /api/departamentos
func (ctrl *DepartamentoController) Criar(c *fiber.Ctx) error {
	var req dto.ReferenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dep := model.DepartamentoModel{Nome: req.Nome, Descricao: req.Descricao, Ativo: true}
	if req.Ativo != nil {
		dep.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Create(&dep).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um departamento com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "departamentos", dep.ID.String(), nil, dep)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Departamento criado com sucesso", dep)
}

// PUT /api/departamentos/:id
func (ctrl *DepartamentoController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ReferenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dep model.DepartamentoModel
	if err := ctrl.DB.First(&dep, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := dep

	dep.Nome = req.Nome
	dep.Descricao = req.Descricao
	if req.Ativo != nil {
		dep.Ativo = *req.Ativo
	}
	if err := ctrl.DB.Save(&dep).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um departamento com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "departamentos", dep.ID.String(), anterior, dep)
	return helper.SuccessMessage(c, "Departamento atualizado com sucesso", dep)
}

// DELETE /api/departamentos/:id
func (ctrl *DepartamentoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var dep model.DepartamentoModel
	if err := ctrl.DB.First(&dep, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		return helper.InternalError(c, err)
	}

	var emUso int64
	if err := ctrl.DB.Model(&model.PessoaModel{}).
		Where("departamento_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir: departamento em uso por pessoas cadastradas")
	}

	if err := ctrl.DB.Delete(&dep).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "departamentos", dep.ID.String(), dep, nil)
	return helper.SuccessMessage(c, "Departamento excluído com sucesso", nil)
}
