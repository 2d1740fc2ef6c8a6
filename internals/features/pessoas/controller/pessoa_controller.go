package controller

import (
	"errors"
	"time"

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

type PessoaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPessoaController(db *gorm.DB) *PessoaController {
	return &PessoaController{DB: db, Validate: validator.New()}
}

var pessoaSortable = map[string]string{
	"nome_completo": "nome_completo",
	"created_at":    "created_at",
}

// GET /api/pessoas
func (ctrl *PessoaController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.PessoaModel{}).
		Preload("CargoEclesiastico").Preload("Departamento")

	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		q = q.Where("nome_completo ILIKE ? OR email ILIKE ? OR telefone ILIKE ?", like, like, like)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("ativo = ?", ativo == "true")
	}
	if membro := c.Query("membro"); membro != "" {
		q = q.Where("membro = ?", membro == "true")
	}
	if cargoID := c.Query("cargo_eclesiastico_id"); cargoID != "" {
		q = q.Where("cargo_eclesiastico_id = ?", cargoID)
	}
	if depID := c.Query("departamento_id"); depID != "" {
		q = q.Where("departamento_id = ?", depID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var pessoas []model.PessoaModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), pessoaSortable, "nome_completo")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&pessoas).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, pessoas, helper.BuildPagination(total, p))
}

// GET /api/pessoas/:id
func (ctrl *PessoaController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var pessoa model.PessoaModel
	if err := ctrl.DB.Preload("CargoEclesiastico").Preload("Departamento").
		First(&pessoa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pessoa não encontrada")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, pessoa)
}

// POST /api/pessoas
func (ctrl *PessoaController) Criar(c *fiber.Ctx) error {
	var req dto.CreatePessoaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pessoa := model.PessoaModel{
		NomeCompleto:        req.NomeCompleto,
		Email:               req.Email,
		Telefone:            req.Telefone,
		Whatsapp:            req.Whatsapp,
		Endereco:            req.Endereco,
		Observacoes:         req.Observacoes,
		Membro:              true,
		Ativo:               true,
		CargoEclesiasticoID: req.CargoID,
		DepartamentoID:      req.DepartamentoID,
	}
	if req.Membro != nil {
		pessoa.Membro = *req.Membro
	}
	if req.Ativo != nil {
		pessoa.Ativo = *req.Ativo
	}
	if req.DataNascimento != nil && *req.DataNascimento != "" {
		dt, err := time.Parse("2006-01-02", *req.DataNascimento)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_nascimento inválida, use o formato YYYY-MM-DD")
		}
		pessoa.DataNascimento = &dt
	}

	if err := ctrl.DB.Create(&pessoa).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "pessoas", pessoa.ID.String(), nil, pessoa)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pessoa cadastrada com sucesso", pessoa)
}

// PUT /api/pessoas/:id
func (ctrl *PessoaController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdatePessoaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var pessoa model.PessoaModel
	if err := ctrl.DB.First(&pessoa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pessoa não encontrada")
		}
		return helper.InternalError(c, err)
	}
	anterior := pessoa

	updates := map[string]interface{}{}
	if req.NomeCompleto != nil {
		updates["nome_completo"] = *req.NomeCompleto
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Telefone != nil {
		updates["telefone"] = *req.Telefone
	}
	if req.Whatsapp != nil {
		updates["whatsapp"] = *req.Whatsapp
	}
	if req.Endereco != nil {
		updates["endereco"] = *req.Endereco
	}
	if req.Observacoes != nil {
		updates["observacoes"] = *req.Observacoes
	}
	if req.Membro != nil {
		updates["membro"] = *req.Membro
	}
	if req.Ativo != nil {
		updates["ativo"] = *req.Ativo
	}
	if req.CargoID != nil {
		updates["cargo_eclesiastico_id"] = *req.CargoID
	}
	if req.DepartamentoID != nil {
		updates["departamento_id"] = *req.DepartamentoID
	}
	if req.DataNascimento != nil && *req.DataNascimento != "" {
		dt, err := time.Parse("2006-01-02", *req.DataNascimento)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_nascimento inválida, use o formato YYYY-MM-DD")
		}
		updates["data_nascimento"] = dt
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&pessoa).Updates(updates).Error; err != nil {
			return helper.InternalError(c, err)
		}
	}

	if err := ctrl.DB.Preload("CargoEclesiastico").Preload("Departamento").
		First(&pessoa, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "pessoas", pessoa.ID.String(), anterior, pessoa)
	return helper.SuccessMessage(c, "Pessoa atualizada com sucesso", pessoa)
}

// DELETE /api/pessoas/:id - soft delete; escalas ficam no histórico.
func (ctrl *PessoaController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var pessoa model.PessoaModel
	if err := ctrl.DB.First(&pessoa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pessoa não encontrada")
		}
		return helper.InternalError(c, err)
	}

	var usuariosVinculados int64
	if err := ctrl.DB.Table("usuarios").
		Where("pessoa_id = ? AND deleted_at IS NULL", id).
		Count(&usuariosVinculados).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if usuariosVinculados > 0 {
		return helper.Error(c, fiber.StatusConflict,
			"Não é possível excluir: existe usuário de acesso vinculado a esta pessoa")
	}

	if err := ctrl.DB.Delete(&pessoa).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "pessoas", pessoa.ID.String(), pessoa, nil)
	return helper.SuccessMessage(c, "Pessoa excluída com sucesso", nil)
}
