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
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type VisitanteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVisitanteController(db *gorm.DB) *VisitanteController {
	return &VisitanteController{DB: db, Validate: validator.New()}
}

var visitanteSortable = map[string]string{
	"nome_completo": "nome_completo",
	"data_visita":   "data_visita",
	"created_at":    "created_at",
}

// GET /api/visitantes
func (ctrl *VisitanteController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.VisitanteModel{}).
		Preload("Culto").Preload("FormaConhecimento")

	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		q = q.Where("nome_completo ILIKE ? OR email ILIKE ? OR telefone ILIKE ?", like, like, like)
	}
	if di := c.Query("data_inicio"); di != "" {
		q = q.Where("data_visita >= ?", di)
	}
	if df := c.Query("data_fim"); df != "" {
		q = q.Where("data_visita <= ?", df)
	}
	if cultoID := c.Query("culto_id"); cultoID != "" {
		q = q.Where("culto_id = ?", cultoID)
	}
	if dr := c.Query("deseja_retorno"); dr != "" {
		q = q.Where("deseja_retorno = ?", dr == "true")
	}
	if rc := c.Query("recebeu_contato"); rc != "" {
		q = q.Where("recebeu_contato = ?", rc == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var visitantes []model.VisitanteModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), visitanteSortable, "data_visita")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&visitantes).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, visitantes, helper.BuildPagination(total, p))
}

// GET /api/visitantes/:id
func (ctrl *VisitanteController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var visitante model.VisitanteModel
	if err := ctrl.DB.Preload("Culto").Preload("FormaConhecimento").
		First(&visitante, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visitante não encontrado")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, visitante)
}

// POST /api/visitantes
func (ctrl *VisitanteController) Criar(c *fiber.Ctx) error {
	var req dto.CreateVisitanteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	data, err := time.Parse("2006-01-02", req.DataVisita)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "data_visita inválida, use o formato YYYY-MM-DD")
	}

	visitante := model.VisitanteModel{
		NomeCompleto:        req.NomeCompleto,
		Email:               req.Email,
		Telefone:            req.Telefone,
		Whatsapp:            req.Whatsapp,
		Endereco:            req.Endereco,
		Observacoes:         req.Observacoes,
		EhCristao:           req.EhCristao,
		MoraPerto:           req.MoraPerto,
		IgrejaOrigem:        req.IgrejaOrigem,
		AvisosOrganizador:   req.AvisosOrganizador,
		DataVisita:          data,
		CultoID:             req.CultoID,
		FormaConhecimentoID: req.FormaConhecimentoID,
	}
	if req.DataNascimento != nil && *req.DataNascimento != "" {
		dn, err := time.Parse("2006-01-02", *req.DataNascimento)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_nascimento inválida, use o formato YYYY-MM-DD")
		}
		visitante.DataNascimento = &dn
	}
	if req.DesejaRetorno != nil {
		visitante.DesejaRetorno = *req.DesejaRetorno
	}
	if atual, err := helper.GetUserID(c); err == nil {
		visitante.CadastradoPor = &atual
	}

	if err := ctrl.DB.Create(&visitante).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "visitantes", visitante.ID.String(), nil, visitante)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Visitante registrado com sucesso", visitante)
}

// PUT /api/visitantes/:id
func (ctrl *VisitanteController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateVisitanteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var visitante model.VisitanteModel
	if err := ctrl.DB.First(&visitante, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visitante não encontrado")
		}
		return helper.InternalError(c, err)
	}
	anterior := visitante

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
	if req.EhCristao != nil {
		updates["eh_cristao"] = *req.EhCristao
	}
	if req.MoraPerto != nil {
		updates["mora_perto"] = *req.MoraPerto
	}
	if req.IgrejaOrigem != nil {
		updates["igreja_origem"] = *req.IgrejaOrigem
	}
	if req.AvisosOrganizador != nil {
		updates["avisos_organizador"] = *req.AvisosOrganizador
	}
	if req.DataNascimento != nil && *req.DataNascimento != "" {
		dn, err := time.Parse("2006-01-02", *req.DataNascimento)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_nascimento inválida, use o formato YYYY-MM-DD")
		}
		updates["data_nascimento"] = dn
	}
	if req.DesejaRetorno != nil {
		updates["deseja_retorno"] = *req.DesejaRetorno
	}
	if req.RecebeuContato != nil {
		updates["recebeu_contato"] = *req.RecebeuContato
	}
	if req.CultoID != nil {
		updates["culto_id"] = *req.CultoID
	}
	if req.FormaConhecimentoID != nil {
		updates["forma_conhecimento_id"] = *req.FormaConhecimentoID
	}
	if req.DataVisita != nil && *req.DataVisita != "" {
		data, err := time.Parse("2006-01-02", *req.DataVisita)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_visita inválida, use o formato YYYY-MM-DD")
		}
		updates["data_visita"] = data
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&visitante).Updates(updates).Error; err != nil {
			return helper.InternalError(c, err)
		}
	}

	if err := ctrl.DB.Preload("Culto").Preload("FormaConhecimento").
		First(&visitante, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "visitantes", visitante.ID.String(), anterior, visitante)
	return helper.SuccessMessage(c, "Visitante atualizado com sucesso", visitante)
}

// PATCH /api/visitantes/:id/contato - marca o retorno de contato feito.
func (ctrl *VisitanteController) MarcarContato(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var visitante model.VisitanteModel
	if err := ctrl.DB.First(&visitante, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visitante não encontrado")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Model(&visitante).Update("recebeu_contato", true).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "visitantes", visitante.ID.String(),
		nil, fiber.Map{"recebeu_contato": true})
	return helper.SuccessMessage(c, "Contato registrado com sucesso", nil)
}

// DELETE /api/visitantes/:id
func (ctrl *VisitanteController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var visitante model.VisitanteModel
	if err := ctrl.DB.First(&visitante, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visitante não encontrado")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Delete(&visitante).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "visitantes", visitante.ID.String(), visitante, nil)
	return helper.SuccessMessage(c, "Visitante excluído com sucesso", nil)
}

type FormaConhecimentoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFormaConhecimentoController(db *gorm.DB) *FormaConhecimentoController {
	return &FormaConhecimentoController{DB: db, Validate: validator.New()}
}

// GET /api/formas-conhecimento
func (ctrl *FormaConhecimentoController) Listar(c *fiber.Ctx) error {
	var formas []model.FormaConhecimentoModel
	q := ctrl.DB.Order("nome ASC")
	if c.Query("ativo") != "" {
		q = q.Where("ativo = ?", c.Query("ativo") == "true")
	}
	if err := q.Find(&formas).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, formas)
}

// POST /api/formas-conhecimento
func (ctrl *FormaConhecimentoController) Criar(c *fiber.Ctx) error {
	var req struct {
		Nome      string  `json:"nome" validate:"required,min=2,max=100"`
		Descricao *string `json:"descricao,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	forma := model.FormaConhecimentoModel{Nome: req.Nome, Descricao: req.Descricao, Ativo: true}
	if err := ctrl.DB.Create(&forma).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Já existe uma forma de conhecimento com esse nome")
		}
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "formas_conhecimento", forma.ID.String(), nil, forma)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Forma de conhecimento criada com sucesso", forma)
}
