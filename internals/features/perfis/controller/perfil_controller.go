package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/repository"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type PerfilController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPerfilController(db *gorm.DB) *PerfilController {
	return &PerfilController{DB: db, Validate: validator.New()}
}

var perfilSortable = map[string]string{
	"nome":         "nome",
	"nivel_acesso": "nivel_acesso",
	"created_at":   "created_at",
}

// GET /api/perfis - paginação com filtros busca, ativo e nivel_acesso.
func (ctrl *PerfilController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.PerfilModel{}).Preload("Permissoes")

	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		q = q.Where("nome ILIKE ? OR descricao ILIKE ?", like, like)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("ativo = ?", ativo == "true")
	}
	if nivel := c.QueryInt("nivel_acesso"); nivel > 0 {
		q = q.Where("nivel_acesso = ?", nivel)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var perfis []model.PerfilModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), perfilSortable, "nome")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&perfis).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, perfis, helper.BuildPagination(total, p))
}

// GET /api/perfis/todos - lista completa (sem paginação) para selects.
func (ctrl *PerfilController) ListarTodos(c *fiber.Ctx) error {
	var perfis []model.PerfilModel
	if err := ctrl.DB.Where("ativo = ?", true).
		Order("nivel_acesso DESC, nome ASC").
		Find(&perfis).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, perfis)
}

// GET /api/perfis/permissoes - catálogo agrupado por módulo.
func (ctrl *PerfilController) ListarPermissoes(c *fiber.Ctx) error {
	var permissoes []model.PermissaoModel
	if err := ctrl.DB.Order("modulo ASC, codigo ASC").Find(&permissoes).Error; err != nil {
		return helper.InternalError(c, err)
	}

	porModulo := make(map[string][]model.PermissaoModel)
	for _, perm := range permissoes {
		porModulo[perm.Modulo] = append(porModulo[perm.Modulo], perm)
	}
	return helper.Success(c, porModulo)
}

// GET /api/perfis/:id
func (ctrl *PerfilController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var perfil model.PerfilModel
	if err := ctrl.DB.Preload("Permissoes").First(&perfil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, perfil)
}

// POST /api/perfis - cria o perfil e associa permissões na mesma transação.
func (ctrl *PerfilController) Criar(c *fiber.Ctx) error {
	var req dto.CreatePerfilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	perfil := model.PerfilModel{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		NivelAcesso: req.NivelAcesso,
		Ativo:       true,
	}
	if req.Ativo != nil {
		perfil.Ativo = *req.Ativo
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&perfil).Error; err != nil {
			return err
		}
		return repository.SetPerfilPermissoes(tx, perfil.ID, req.PermissaoIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um perfil com esse nome")
		}
		if errors.Is(err, repository.ErrPermissaoInexistente) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("Permissoes").First(&perfil, "id = ?", perfil.ID).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "perfis", perfil.ID.String(), nil, perfil)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Perfil criado com sucesso", perfil)
}

// PUT /api/perfis/:id
func (ctrl *PerfilController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdatePerfilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var perfil model.PerfilModel
	if err := ctrl.DB.Preload("Permissoes").First(&perfil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := perfil

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		updates["descricao"] = *req.Descricao
	}
	if req.NivelAcesso != nil {
		updates["nivel_acesso"] = *req.NivelAcesso
	}
	if req.Ativo != nil {
		updates["ativo"] = *req.Ativo
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&perfil).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.PermissaoIDs != nil {
			return repository.SetPerfilPermissoes(tx, perfil.ID, *req.PermissaoIDs)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um perfil com esse nome")
		}
		if errors.Is(err, repository.ErrPermissaoInexistente) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("Permissoes").First(&perfil, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "perfis", perfil.ID.String(), anterior, perfil)
	return helper.SuccessMessage(c, "Perfil atualizado com sucesso", perfil)
}

// PATCH /api/perfis/:id/ativo - alterna ativação sem tocar no resto.
func (ctrl *PerfilController) AlternarAtivo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var perfil model.PerfilModel
	if err := ctrl.DB.First(&perfil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := perfil

	perfil.Ativo = !perfil.Ativo
	if err := ctrl.DB.Model(&perfil).Update("ativo", perfil.Ativo).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "perfis", perfil.ID.String(), anterior, perfil)

	msg := "Perfil desativado com sucesso"
	if perfil.Ativo {
		msg = "Perfil ativado com sucesso"
	}
	return helper.SuccessMessage(c, msg, perfil)
}

// DELETE /api/perfis/:id - recusa exclusão se houver usuários vinculados.
func (ctrl *PerfilController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var perfil model.PerfilModel
	if err := ctrl.DB.First(&perfil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perfil não encontrado")
		}
		return helper.InternalError(c, err)
	}

	emUso, err := repository.ContarUsuariosDoPerfil(ctrl.DB, id)
	if err != nil {
		return helper.InternalError(c, err)
	}
	if emUso > 0 {
		return helper.Error(c, fiber.StatusConflict,
			fmt.Sprintf("Não é possível excluir: %d usuário(s) utilizam este perfil", emUso))
	}

	if err := ctrl.DB.Delete(&perfil).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "perfis", perfil.ID.String(), perfil, nil)
	return helper.SuccessMessage(c, "Perfil excluído com sucesso", nil)
}
