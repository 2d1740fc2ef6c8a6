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
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/service"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type EscalaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEscalaController(db *gorm.DB) *EscalaController {
	return &EscalaController{DB: db, Validate: validator.New()}
}

var escalaSortable = map[string]string{
	"status":     "escalas.status",
	"created_at": "escalas.created_at",
}

// GET /api/escalas
func (ctrl *EscalaController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.EscalaModel{}).
		Preload("Pessoa").Preload("Funcao").Preload("Culto.TipoCulto")

	if cultoID := c.Query("culto_id"); cultoID != "" {
		q = q.Where("escalas.culto_id = ?", cultoID)
	}
	if pessoaID := c.Query("pessoa_id"); pessoaID != "" {
		q = q.Where("escalas.pessoa_id = ?", pessoaID)
	}
	if funcaoID := c.Query("funcao_id"); funcaoID != "" {
		q = q.Where("escalas.funcao_id = ?", funcaoID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("escalas.status = ?", status)
	}
	if di, df := c.Query("data_inicio"), c.Query("data_fim"); di != "" || df != "" {
		q = q.Joins("JOIN cultos ON cultos.id = escalas.culto_id")
		if di != "" {
			q = q.Where("cultos.data_culto >= ?", di)
		}
		if df != "" {
			q = q.Where("cultos.data_culto <= ?", df)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var escalas []model.EscalaModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), escalaSortable, "created_at")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&escalas).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, escalas, helper.BuildPagination(total, p))
}

// GET /api/escalas/pessoa/:pessoaId - escalas futuras e recentes da pessoa.
func (ctrl *EscalaController) ListarPorPessoa(c *fiber.Ctx) error {
	pessoaID, err := uuid.Parse(c.Params("pessoaId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var escalas []model.EscalaModel
	q := ctrl.DB.Preload("Funcao").Preload("Culto.TipoCulto").
		Joins("JOIN cultos ON cultos.id = escalas.culto_id").
		Where("escalas.pessoa_id = ?", pessoaID)

	if c.Query("futuras") == "true" {
		q = q.Where("cultos.data_culto >= ?", time.Now().Format("2006-01-02"))
	}

	if err := q.Order("cultos.data_culto ASC, cultos.horario_inicio ASC").
		Find(&escalas).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, escalas)
}

// GET /api/escalas/estatisticas - contagem por status e por função.
func (ctrl *EscalaController) Estatisticas(c *fiber.Ctx) error {
	type linha struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}

	filtrar := func(q *gorm.DB) *gorm.DB {
		if cultoID := c.Query("culto_id"); cultoID != "" {
			q = q.Where("escalas.culto_id = ?", cultoID)
		}
		if di, df := c.Query("data_inicio"), c.Query("data_fim"); di != "" || df != "" {
			q = q.Joins("JOIN cultos ON cultos.id = escalas.culto_id")
			if di != "" {
				q = q.Where("cultos.data_culto >= ?", di)
			}
			if df != "" {
				q = q.Where("cultos.data_culto <= ?", df)
			}
		}
		return q
	}

	var linhas []linha
	if err := filtrar(ctrl.DB.Model(&model.EscalaModel{})).
		Select("escalas.status AS status, COUNT(*) AS total").
		Group("escalas.status").Find(&linhas).Error; err != nil {
		return helper.InternalError(c, err)
	}

	porStatus := fiber.Map{
		model.StatusEscalaPendente:   int64(0),
		model.StatusEscalaConfirmada: int64(0),
		model.StatusEscalaPresente:   int64(0),
		model.StatusEscalaAusente:    int64(0),
		model.StatusEscalaCancelada:  int64(0),
	}
	var total int64
	for _, l := range linhas {
		porStatus[l.Status] = l.Total
		total += l.Total
	}

	type linhaFuncao struct {
		Funcao string `json:"funcao"`
		Total  int64  `json:"total"`
	}
	var porFuncao []linhaFuncao
	if err := filtrar(ctrl.DB.Model(&model.EscalaModel{})).
		Select("funcoes.nome AS funcao, COUNT(*) AS total").
		Joins("JOIN funcoes ON funcoes.id = escalas.funcao_id").
		Group("funcoes.nome").Order("total DESC").
		Find(&porFuncao).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.Success(c, fiber.Map{
		"total":      total,
		"por_status": porStatus,
		"por_funcao": porFuncao,
	})
}

// GET /api/escalas/:id
func (ctrl *EscalaController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var escala model.EscalaModel
	if err := ctrl.DB.Preload("Pessoa").Preload("Funcao").Preload("Culto.TipoCulto").
		First(&escala, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, escala)
}

// POST /api/escalas - a mesma pessoa não pode ter duas escalas vivas para o
// mesmo culto e função; escalas canceladas não bloqueiam.
func (ctrl *EscalaController) Criar(c *fiber.Ctx) error {
	var req dto.CreateEscalaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var culto cultosModel.CultoModel
	if err := ctrl.DB.First(&culto, "id = ?", req.CultoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Culto não encontrado")
		}
		return helper.InternalError(c, err)
	}
	if culto.Status == cultosModel.StatusCultoFinalizado || culto.Status == cultosModel.StatusCultoCancelado {
		return helper.Error(c, fiber.StatusConflict, "Não é possível escalar para cultos finalizados ou cancelados")
	}

	var pessoa pessoasModel.PessoaModel
	if err := ctrl.DB.First(&pessoa, "id = ?", req.PessoaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Pessoa não encontrada")
		}
		return helper.InternalError(c, err)
	}
	if !pessoa.Ativo {
		return helper.Error(c, fiber.StatusConflict, "Pessoa inativa não pode ser escalada")
	}

	var funcao model.FuncaoModel
	if err := ctrl.DB.First(&funcao, "id = ?", req.FuncaoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Função não encontrada")
		}
		return helper.InternalError(c, err)
	}

	duplicada, err := service.VerificarDuplicidade(ctrl.DB, req.PessoaID, req.CultoID, req.FuncaoID, nil)
	if err != nil {
		return helper.InternalError(c, err)
	}
	if duplicada != nil {
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"Esta pessoa já está escalada para este culto nesta função", duplicada)
	}

	escala := model.EscalaModel{
		PessoaID:    req.PessoaID,
		CultoID:     req.CultoID,
		FuncaoID:    req.FuncaoID,
		Status:      model.StatusEscalaPendente,
		Observacoes: req.Observacoes,
	}
	if err := ctrl.DB.Create(&escala).Error; err != nil {
		// Índice único parcial: corrida entre o pré-voo e o INSERT.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Esta pessoa já está escalada para este culto nesta função")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("Pessoa").Preload("Funcao").Preload("Culto").
		First(&escala, "id = ?", escala.ID).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "escalas", escala.ID.String(), nil, escala)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Escala criada com sucesso", escala)
}

// PUT /api/escalas/:id - troca de função ou observações; status não muda aqui.
// Só escalas pendentes são editáveis: a partir da confirmação o registro fica
// fechado e qualquer ajuste passa por cancelar e criar outra.
func (ctrl *EscalaController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateEscalaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	var escala model.EscalaModel
	if err := ctrl.DB.First(&escala, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.InternalError(c, err)
	}
	if escala.Status != model.StatusEscalaPendente {
		if escala.Status == model.StatusEscalaConfirmada {
			return helper.Error(c, fiber.StatusConflict, "Escalas confirmadas não podem ser editadas; cancele e crie uma nova")
		}
		return helper.Error(c, fiber.StatusConflict, "Escalas presentes, ausentes ou canceladas não podem ser alteradas")
	}
	anterior := escala

	updates := map[string]interface{}{}
	if req.Observacoes != nil {
		updates["observacoes"] = *req.Observacoes
	}
	if req.FuncaoID != nil && *req.FuncaoID != escala.FuncaoID {
		var funcao model.FuncaoModel
		if err := ctrl.DB.First(&funcao, "id = ?", *req.FuncaoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "Função não encontrada")
			}
			return helper.InternalError(c, err)
		}
		duplicada, err := service.VerificarDuplicidade(ctrl.DB, escala.PessoaID, escala.CultoID, *req.FuncaoID, &id)
		if err != nil {
			return helper.InternalError(c, err)
		}
		if duplicada != nil {
			return helper.ErrorWithDetails(c, fiber.StatusConflict,
				"Esta pessoa já está escalada para este culto nesta função", duplicada)
		}
		updates["funcao_id"] = *req.FuncaoID
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&escala).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Error(c, fiber.StatusConflict, "Esta pessoa já está escalada para este culto nesta função")
			}
			return helper.InternalError(c, err)
		}
	}

	if err := ctrl.DB.Preload("Pessoa").Preload("Funcao").Preload("Culto").
		First(&escala, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "escalas", escala.ID.String(), anterior, escala)
	return helper.SuccessMessage(c, "Escala atualizada com sucesso", escala)
}

// POST /api/escalas/:id/confirmar - pendente -> confirmada. Reconfirmar é erro.
func (ctrl *EscalaController) Confirmar(c *fiber.Ctx) error {
	return ctrl.transicionar(c, model.StatusEscalaConfirmada, func(escala *model.EscalaModel, agora time.Time) map[string]interface{} {
		return map[string]interface{}{
			"status":        model.StatusEscalaConfirmada,
			"confirmado_em": agora,
		}
	}, "Escala confirmada com sucesso")
}

// POST /api/escalas/:id/checkin - presença só a partir de confirmada.
func (ctrl *EscalaController) Checkin(c *fiber.Ctx) error {
	return ctrl.transicionar(c, model.StatusEscalaPresente, func(escala *model.EscalaModel, agora time.Time) map[string]interface{} {
		return map[string]interface{}{
			"status":     model.StatusEscalaPresente,
			"checkin_em": agora,
		}
	}, "Check-in registrado com sucesso")
}

// POST /api/escalas/:id/ausente
func (ctrl *EscalaController) MarcarAusente(c *fiber.Ctx) error {
	return ctrl.transicionar(c, model.StatusEscalaAusente, func(escala *model.EscalaModel, agora time.Time) map[string]interface{} {
		return map[string]interface{}{"status": model.StatusEscalaAusente}
	}, "Ausência registrada com sucesso")
}

// POST /api/escalas/:id/cancelar - motivo opcional anexado às observações.
func (ctrl *EscalaController) Cancelar(c *fiber.Ctx) error {
	var body struct {
		Motivo *string `json:"motivo,omitempty"`
	}
	_ = c.BodyParser(&body) // corpo vazio é aceito

	return ctrl.transicionar(c, model.StatusEscalaCancelada, func(escala *model.EscalaModel, agora time.Time) map[string]interface{} {
		updates := map[string]interface{}{"status": model.StatusEscalaCancelada}
		if body.Motivo != nil && *body.Motivo != "" {
			obs := "Cancelamento: " + *body.Motivo
			if escala.Observacoes != nil && *escala.Observacoes != "" {
				obs = *escala.Observacoes + "\n" + obs
			}
			updates["observacoes"] = obs
		}
		return updates
	}, "Escala cancelada com sucesso")
}

func (ctrl *EscalaController) transicionar(c *fiber.Ctx, para string, montarUpdates func(*model.EscalaModel, time.Time) map[string]interface{}, msg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var escala model.EscalaModel
	if err := ctrl.DB.First(&escala, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.InternalError(c, err)
	}

	if !model.TransicaoValida(escala.Status, para) {
		return helper.Error(c, fiber.StatusConflict,
			"Transição de status inválida: "+escala.Status+" -> "+para)
	}
	anterior := escala.Status

	if err := ctrl.DB.Model(&escala).Updates(montarUpdates(&escala, time.Now())).Error; err != nil {
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("Pessoa").Preload("Funcao").Preload("Culto").
		First(&escala, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "escalas", escala.ID.String(),
		fiber.Map{"status": anterior}, fiber.Map{"status": para})
	return helper.SuccessMessage(c, msg, escala)
}

// DELETE /api/escalas/:id
func (ctrl *EscalaController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var escala model.EscalaModel
	if err := ctrl.DB.First(&escala, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.InternalError(c, err)
	}
	if escala.Status == model.StatusEscalaPresente {
		return helper.Error(c, fiber.StatusConflict, "Escalas com presença registrada não podem ser excluídas")
	}
	if escala.Status == model.StatusEscalaConfirmada {
		return helper.Error(c, fiber.StatusConflict, "Escalas confirmadas devem ser canceladas antes da exclusão")
	}

	if err := ctrl.DB.Delete(&escala).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "escalas", escala.ID.String(), escala, nil)
	return helper.SuccessMessage(c, "Escala excluída com sucesso", nil)
}
