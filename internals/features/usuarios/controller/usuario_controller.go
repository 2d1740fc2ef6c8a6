package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	perfisModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type UsuarioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db, Validate: validator.New()}
}

var usuarioSortable = map[string]string{
	"email":      "email",
	"created_at": "created_at",
}

// GET /api/usuarios
func (ctrl *UsuarioController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.UsuarioModel{}).
		Preload("Pessoa").Preload("Perfil")

	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		q = q.Joins("LEFT JOIN pessoas ON pessoas.id = usuarios.pessoa_id").
			Where("usuarios.email ILIKE ? OR pessoas.nome_completo ILIKE ?", like, like)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("usuarios.ativo = ?", ativo == "true")
	}
	if perfilID := c.Query("perfil_id"); perfilID != "" {
		q = q.Where("usuarios.perfil_id = ?", perfilID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var usuarios []model.UsuarioModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), usuarioSortable, "email")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&usuarios).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, usuarios, helper.BuildPagination(total, p))
}

// GET /api/usuarios/:id
func (ctrl *UsuarioController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var usuario model.UsuarioModel
	if err := ctrl.DB.Preload("Pessoa").Preload("Perfil.Permissoes").
		First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, usuario)
}

// POST /api/usuarios
func (ctrl *UsuarioController) Criar(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var pessoa pessoasModel.PessoaModel
	if err := ctrl.DB.First(&pessoa, "id = ?", req.PessoaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Pessoa não encontrada")
		}
		return helper.InternalError(c, err)
	}
	// Uma pessoa tem no máximo uma conta de acesso.
	var existente model.UsuarioModel
	if err := ctrl.DB.Where("pessoa_id = ?", req.PessoaID).First(&existente).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Esta pessoa já possui um usuário vinculado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.InternalError(c, err)
	}

	var perfil perfisModel.PerfilModel
	if err := ctrl.DB.First(&perfil, "id = ?", req.PerfilID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Perfil não encontrado")
		}
		return helper.InternalError(c, err)
	}

	hash, err := model.HashSenha(req.Senha)
	if err != nil {
		return helper.InternalError(c, err)
	}

	usuario := model.UsuarioModel{
		Email:     req.Email,
		SenhaHash: hash,
		PessoaID:  req.PessoaID,
		PerfilID:  req.PerfilID,
		Ativo:     true,
	}
	if req.Ativo != nil {
		usuario.Ativo = *req.Ativo
	}

	if err := ctrl.DB.Create(&usuario).Error; err != nil {
		// Índices únicos: corrida entre o pré-voo (email ou pessoa) e o INSERT.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe um usuário com esse email ou vinculado a esta pessoa")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("Pessoa").Preload("Perfil").
		First(&usuario, "id = ?", usuario.ID).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "usuarios", usuario.ID.String(),
		nil, fiber.Map{"email": usuario.Email, "pessoa_id": usuario.PessoaID, "perfil_id": usuario.PerfilID})
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado com sucesso", usuario)
}

// PUT /api/usuarios/:id
func (ctrl *UsuarioController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usuario model.UsuarioModel
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := fiber.Map{"email": usuario.Email, "perfil_id": usuario.PerfilID, "ativo": usuario.Ativo}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Senha != nil {
		hash, err := model.HashSenha(*req.Senha)
		if err != nil {
			return helper.InternalError(c, err)
		}
		updates["senha_hash"] = hash
	}
	if req.PerfilID != nil {
		var perfil perfisModel.PerfilModel
		if err := ctrl.DB.First(&perfil, "id = ?", *req.PerfilID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "Perfil não encontrado")
			}
			return helper.InternalError(c, err)
		}
		updates["perfil_id"] = *req.PerfilID
	}
	if req.Ativo != nil {
		updates["ativo"] = *req.Ativo
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&usuario).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Error(c, fiber.StatusConflict, "Já existe um usuário com esse email")
			}
			return helper.InternalError(c, err)
		}
	}

	if err := ctrl.DB.Preload("Pessoa").Preload("Perfil").
		First(&usuario, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "usuarios", usuario.ID.String(),
		anterior, fiber.Map{"email": usuario.Email, "perfil_id": usuario.PerfilID, "ativo": usuario.Ativo})
	return helper.SuccessMessage(c, "Usuário atualizado com sucesso", usuario)
}

// PATCH /api/usuarios/:id/ativo - alterna o acesso sem mexer em mais nada.
func (ctrl *UsuarioController) AlternarAtivo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	if atual, err := helper.GetUserID(c); err == nil && atual == id {
		return helper.Error(c, fiber.StatusConflict, "Não é possível desativar o próprio usuário")
	}

	var usuario model.UsuarioModel
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}

	novo := !usuario.Ativo
	if err := ctrl.DB.Model(&usuario).Update("ativo", novo).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "usuarios", usuario.ID.String(),
		fiber.Map{"ativo": !novo}, fiber.Map{"ativo": novo})

	msg := "Usuário desativado com sucesso"
	if novo {
		msg = "Usuário ativado com sucesso"
	}
	return helper.SuccessMessage(c, msg, fiber.Map{"id": usuario.ID, "ativo": novo})
}

// PATCH /api/usuarios/:id/desbloquear - zera tentativas e janela de bloqueio.
func (ctrl *UsuarioController) Desbloquear(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var usuario model.UsuarioModel
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Model(&usuario).Updates(map[string]interface{}{
		"tentativas_login": 0,
		"bloqueado_ate":    nil,
	}).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "usuarios", usuario.ID.String(),
		nil, fiber.Map{"desbloqueado": true})
	return helper.SuccessMessage(c, "Usuário desbloqueado com sucesso", nil)
}

// DELETE /api/usuarios/:id - soft delete; autoexclusão é bloqueada.
func (ctrl *UsuarioController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	if atual, err := helper.GetUserID(c); err == nil && atual == id {
		return helper.Error(c, fiber.StatusConflict, "Não é possível excluir o próprio usuário")
	}

	var usuario model.UsuarioModel
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Delete(&usuario).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "usuarios", usuario.ID.String(),
		fiber.Map{"email": usuario.Email}, nil)
	return helper.SuccessMessage(c, "Usuário excluído com sucesso", nil)
}
