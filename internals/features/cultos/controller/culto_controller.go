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
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/service"
	escalasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type CultoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCultoController(db *gorm.DB) *CultoController {
	return &CultoController{DB: db, Validate: validator.New()}
}

var cultoSortable = map[string]string{
	"data_culto": "data_culto",
	"titulo":     "titulo",
	"created_at": "created_at",
}

// GET /api/cultos
func (ctrl *CultoController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.CultoModel{}).Preload("TipoCulto")

	if di := c.Query("data_inicio"); di != "" {
		q = q.Where("data_culto >= ?", di)
	}
	if df := c.Query("data_fim"); df != "" {
		q = q.Where("data_culto <= ?", df)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if tipo := c.Query("tipo_culto_id"); tipo != "" {
		q = q.Where("tipo_culto_id = ?", tipo)
	}
	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		q = q.Where("titulo ILIKE ? OR local ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var cultos []model.CultoModel
	if err := q.Order(helper.SafeOrder(c.Query("sort_by"), c.Query("order"), cultoSortable, "data_culto")).
		Limit(p.Limit).Offset(p.Offset()).
		Find(&cultos).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, cultos, helper.BuildPagination(total, p))
}

// GET /api/cultos/:id - com programação e escalas completas.
func (ctrl *CultoController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var culto model.CultoModel
	if err := ctrl.DB.
		Preload("TipoCulto").
		Preload("Atividades", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		Preload("Atividades.TipoAtividade").
		Preload("Atividades.Pessoas.Pessoa").
		Preload("Atividades.Departamentos.Departamento").
		First(&culto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.InternalError(c, err)
	}

	var escalas []escalasModel.EscalaModel
	if err := ctrl.DB.Preload("Pessoa").Preload("Funcao").
		Where("culto_id = ?", id).
		Order("created_at ASC").
		Find(&escalas).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.Success(c, fiber.Map{
		"culto":   culto,
		"escalas": escalas,
	})
}

// POST /api/cultos - cria culto, programação e escalas em uma transação.
// Conflito de agenda (mesmo dia, mesmo local, janelas sobrepostas) devolve 409
// com o culto conflitante nos detalhes.
func (ctrl *CultoController) Criar(c *fiber.Ctx) error {
	var req dto.CreateCultoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	data, err := time.Parse("2006-01-02", req.DataCulto)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "data_culto inválida, use o formato YYYY-MM-DD")
	}
	inicio, err := service.NormalizarHorario(req.HorarioInicio)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "horario_inicio inválido, use HH:MM")
	}
	var fim *string
	if req.HorarioFim != nil && *req.HorarioFim != "" {
		f, err := service.NormalizarHorario(*req.HorarioFim)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "horario_fim inválido, use HH:MM")
		}
		if f <= inicio {
			return helper.Error(c, fiber.StatusBadRequest, "horario_fim deve ser posterior ao horario_inicio")
		}
		fim = &f
	}

	var tipo model.TipoCultoModel
	if err := ctrl.DB.First(&tipo, "id = ?", req.TipoCultoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Tipo de culto não encontrado")
		}
		return helper.InternalError(c, err)
	}

	conflito, err := service.VerificarConflito(ctrl.DB, service.Janela{
		Data: data, Local: req.Local, Inicio: inicio, Fim: fim,
	})
	if err != nil {
		return helper.InternalError(c, err)
	}
	if conflito != nil {
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"Já existe um culto agendado neste local e horário", conflito)
	}

	culto := model.CultoModel{
		Titulo:        req.Titulo,
		DataCulto:     data,
		HorarioInicio: inicio,
		HorarioFim:    fim,
		Local:         req.Local,
		Status:        model.StatusCultoPlanejado,
		Observacoes:   req.Observacoes,
		TipoCultoID:   req.TipoCultoID,
	}
	if atual, err := helper.GetUserID(c); err == nil {
		culto.CriadoPor = &atual
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&culto).Error; err != nil {
			return err
		}
		if err := criarAtividades(tx, culto.ID, req.Atividades); err != nil {
			return err
		}
		for _, e := range req.Escalas {
			escala := escalasModel.EscalaModel{
				PessoaID:    e.PessoaID,
				CultoID:     culto.ID,
				FuncaoID:    e.FuncaoID,
				Status:      escalasModel.StatusEscalaPendente,
				Observacoes: e.Observacoes,
			}
			if err := tx.Create(&escala).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Conflito de agendamento ou escala duplicada")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Preload("TipoCulto").Preload("Atividades").
		First(&culto, "id = ?", culto.ID).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoCreate, "cultos", culto.ID.String(), nil, culto)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Culto criado com sucesso", culto)
}

// PUT /api/cultos/:id - cultos finalizados, cancelados ou de datas passadas
// não são editáveis.
func (ctrl *CultoController) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateCultoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var culto model.CultoModel
	if err := ctrl.DB.First(&culto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.InternalError(c, err)
	}
	if culto.Status == model.StatusCultoFinalizado || culto.Status == model.StatusCultoCancelado {
		return helper.Error(c, fiber.StatusConflict, "Cultos finalizados ou cancelados não podem ser alterados")
	}
	hoje, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if culto.DataCulto.Before(hoje) {
		return helper.Error(c, fiber.StatusConflict, "Cultos já realizados não podem ser alterados")
	}
	anterior := culto

	// Janela candidata: campos do request sobrepõem os atuais.
	data := culto.DataCulto
	local := culto.Local
	inicio := culto.HorarioInicio
	fim := culto.HorarioFim

	updates := map[string]interface{}{}
	if req.Titulo != nil {
		updates["titulo"] = *req.Titulo
	}
	if req.Observacoes != nil {
		updates["observacoes"] = *req.Observacoes
	}
	if req.TipoCultoID != nil {
		var tipo model.TipoCultoModel
		if err := ctrl.DB.First(&tipo, "id = ?", *req.TipoCultoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "Tipo de culto não encontrado")
			}
			return helper.InternalError(c, err)
		}
		updates["tipo_culto_id"] = *req.TipoCultoID
	}
	if req.DataCulto != nil {
		d, err := time.Parse("2006-01-02", *req.DataCulto)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "data_culto inválida, use o formato YYYY-MM-DD")
		}
		data = d
		updates["data_culto"] = d
	}
	if req.Local != nil {
		local = *req.Local
		updates["local"] = *req.Local
	}
	if req.HorarioInicio != nil {
		h, err := service.NormalizarHorario(*req.HorarioInicio)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "horario_inicio inválido, use HH:MM")
		}
		inicio = h
		updates["horario_inicio"] = h
	}
	if req.HorarioFim != nil {
		if *req.HorarioFim == "" {
			fim = nil
			updates["horario_fim"] = nil
		} else {
			h, err := service.NormalizarHorario(*req.HorarioFim)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "horario_fim inválido, use HH:MM")
			}
			fim = &h
			updates["horario_fim"] = h
		}
	}
	if fim != nil && *fim <= inicio {
		return helper.Error(c, fiber.StatusBadRequest, "horario_fim deve ser posterior ao horario_inicio")
	}

	conflito, err := service.VerificarConflito(ctrl.DB, service.Janela{
		Data: data, Local: local, Inicio: inicio, Fim: fim, ExcludeID: &id,
	})
	if err != nil {
		return helper.InternalError(c, err)
	}
	if conflito != nil {
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"Já existe um culto agendado neste local e horário", conflito)
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&culto).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Error(c, fiber.StatusConflict, "Já existe um culto agendado neste local e horário")
			}
			return helper.InternalError(c, err)
		}
	}

	if err := ctrl.DB.Preload("TipoCulto").First(&culto, "id = ?", id).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "cultos", culto.ID.String(), anterior, culto)
	return helper.SuccessMessage(c, "Culto atualizado com sucesso", culto)
}

// PATCH /api/cultos/:id/status
func (ctrl *CultoController) AtualizarStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateStatusCultoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var culto model.CultoModel
	if err := ctrl.DB.First(&culto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.InternalError(c, err)
	}

	if !model.TransicaoCultoValida(culto.Status, req.Status) {
		return helper.Error(c, fiber.StatusConflict,
			"Transição de status inválida: "+culto.Status+" -> "+req.Status)
	}
	anterior := culto.Status

	if err := ctrl.DB.Model(&culto).Update("status", req.Status).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoUpdate, "cultos", culto.ID.String(),
		fiber.Map{"status": anterior}, fiber.Map{"status": req.Status})
	return helper.SuccessMessage(c, "Status do culto atualizado com sucesso", culto)
}

// DELETE /api/cultos/:id - soft delete; cultos finalizados são histórico.
func (ctrl *CultoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var culto model.CultoModel
	if err := ctrl.DB.First(&culto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.InternalError(c, err)
	}
	if culto.Status == model.StatusCultoFinalizado {
		return helper.Error(c, fiber.StatusConflict, "Cultos finalizados não podem ser excluídos")
	}
	hoje, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if culto.DataCulto.Before(hoje) && culto.Status != model.StatusCultoCancelado {
		return helper.Error(c, fiber.StatusConflict, "Cultos já realizados não podem ser excluídos")
	}

	if err := ctrl.DB.Delete(&culto).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "cultos", culto.ID.String(), culto, nil)
	return helper.SuccessMessage(c, "Culto excluído com sucesso", nil)
}

func criarAtividades(tx *gorm.DB, cultoID uuid.UUID, atividades []dto.AtividadeInput) error {
	for i, a := range atividades {
		ordem := a.Ordem
		if ordem == 0 {
			ordem = i + 1
		}
		atividade := model.AtividadeModel{
			Nome:            a.Nome,
			Ordem:           ordem,
			Observacoes:     a.Observacoes,
			CultoID:         cultoID,
			TipoAtividadeID: a.TipoAtividadeID,
		}
		if a.HorarioInicio != nil && *a.HorarioInicio != "" {
			h, err := service.NormalizarHorario(*a.HorarioInicio)
			if err != nil {
				return err
			}
			atividade.HorarioInicio = &h
		}
		if a.HorarioFim != nil && *a.HorarioFim != "" {
			h, err := service.NormalizarHorario(*a.HorarioFim)
			if err != nil {
				return err
			}
			atividade.HorarioFim = &h
		}
		if err := tx.Create(&atividade).Error; err != nil {
			return err
		}
		for _, pid := range a.PessoaIDs {
			if err := tx.Create(&model.AtividadePessoaModel{
				AtividadeID: atividade.ID, PessoaID: pid,
			}).Error; err != nil {
				return err
			}
		}
		for _, did := range a.DepartamentoIDs {
			if err := tx.Create(&model.AtividadeDepartamentoModel{
				AtividadeID: atividade.ID, DepartamentoID: did,
			}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
