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
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/dto"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/model"
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type AvaliacaoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAvaliacaoController(db *gorm.DB) *AvaliacaoController {
	return &AvaliacaoController{DB: db, Validate: validator.New()}
}

// POST /api/avaliacoes/publica - endpoint aberto, sem autenticação.
// Avaliação e notas por critério gravam na mesma transação: ou entra tudo,
// ou nada entra.
func (ctrl *AvaliacaoController) CriarPublica(c *fiber.Ctx) error {
	var req dto.CreateAvaliacaoRequest
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

	ids := make([]uuid.UUID, 0, len(req.Criterios))
	for _, cr := range req.Criterios {
		ids = append(ids, cr.CriterioID)
	}
	var count int64
	if err := ctrl.DB.Model(&model.CriterioAvaliacaoModel{}).
		Where("id IN ? AND ativo = ?", ids, true).
		Count(&count).Error; err != nil {
		return helper.InternalError(c, err)
	}
	if count != int64(len(ids)) {
		return helper.Error(c, fiber.StatusBadRequest, "Um ou mais critérios de avaliação são inválidos")
	}

	dv, err := time.Parse("2006-01-02", req.DataVisita)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "data_visita inválida, use o formato YYYY-MM-DD")
	}

	avaliacao := model.AvaliacaoModel{
		CultoID:        req.CultoID,
		NotaGeral:      req.NotaGeral,
		Comentario:     req.Comentario,
		NomeAvaliador:  req.NomeAvaliador,
		EmailAvaliador: req.EmailAvaliador,
		Recomendaria:   req.Recomendaria,
		DataVisita:     &dv,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&avaliacao).Error; err != nil {
			return err
		}
		for _, cr := range req.Criterios {
			if err := tx.Create(&model.AvaliacaoCriterioModel{
				AvaliacaoID: avaliacao.ID,
				CriterioID:  cr.CriterioID,
				Nota:        cr.Nota,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Avaliação registrada. Obrigado pelo retorno!", fiber.Map{
		"id": avaliacao.ID,
	})
}

// GET /api/avaliacoes
func (ctrl *AvaliacaoController) Listar(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.AvaliacaoModel{}).
		Preload("Culto.TipoCulto").Preload("Criterios.Criterio")

	if cultoID := c.Query("culto_id"); cultoID != "" {
		q = q.Where("culto_id = ?", cultoID)
	}
	if nota := c.QueryInt("nota_geral"); nota > 0 {
		q = q.Where("nota_geral = ?", nota)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InternalError(c, err)
	}

	var avaliacoes []model.AvaliacaoModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset()).
		Find(&avaliacoes).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.SuccessList(c, avaliacoes, helper.BuildPagination(total, p))
}

// GET /api/avaliacoes/estatisticas - média geral e por critério.
func (ctrl *AvaliacaoController) Estatisticas(c *fiber.Ctx) error {
	geralQ := ctrl.DB.Model(&model.AvaliacaoModel{})
	if cultoID := c.Query("culto_id"); cultoID != "" {
		geralQ = geralQ.Where("culto_id = ?", cultoID)
	}

	var geral struct {
		Total int64    `json:"total"`
		Media *float64 `json:"media"`
	}
	if err := geralQ.Select("COUNT(*) AS total, AVG(nota_geral) AS media").
		Scan(&geral).Error; err != nil {
		return helper.InternalError(c, err)
	}

	type linhaCriterio struct {
		CriterioID uuid.UUID `json:"criterio_id"`
		Nome       string    `json:"nome"`
		Media      float64   `json:"media"`
		Total      int64     `json:"total"`
	}
	criterioQ := ctrl.DB.Table("avaliacao_criterios AS ac").
		Select("ac.criterio_id, ca.nome, AVG(ac.nota) AS media, COUNT(*) AS total").
		Joins("JOIN criterios_avaliacao ca ON ca.id = ac.criterio_id").
		Joins("JOIN avaliacoes a ON a.id = ac.avaliacao_id AND a.deleted_at IS NULL").
		Group("ac.criterio_id, ca.nome").
		Order("ca.nome ASC")
	if cultoID := c.Query("culto_id"); cultoID != "" {
		criterioQ = criterioQ.Where("a.culto_id = ?", cultoID)
	}

	var porCriterio []linhaCriterio
	if err := criterioQ.Find(&porCriterio).Error; err != nil {
		return helper.InternalError(c, err)
	}

	return helper.Success(c, fiber.Map{
		"total":        geral.Total,
		"media_geral":  geral.Media,
		"por_criterio": porCriterio,
	})
}

// GET /api/avaliacoes/:id
func (ctrl *AvaliacaoController) Buscar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var avaliacao model.AvaliacaoModel
	if err := ctrl.DB.Preload("Culto.TipoCulto").Preload("Criterios.Criterio").
		First(&avaliacao, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		return helper.InternalError(c, err)
	}
	return helper.Success(c, avaliacao)
}

// DELETE /api/avaliacoes/:id
func (ctrl *AvaliacaoController) Excluir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var avaliacao model.AvaliacaoModel
	if err := ctrl.DB.First(&avaliacao, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		return helper.InternalError(c, err)
	}

	if err := ctrl.DB.Delete(&avaliacao).Error; err != nil {
		return helper.InternalError(c, err)
	}

	auditoriaService.RegistrarRequest(c, ctrl.DB, auditoriaModel.OperacaoDelete, "avaliacoes", avaliacao.ID.String(), avaliacao, nil)
	return helper.SuccessMessage(c, "Avaliação excluída com sucesso", nil)
}

// GET /api/avaliacoes/criterios - público: alimenta o formulário aberto.
func (ctrl *AvaliacaoController) ListarCriterios(c *fiber.Ctx) error {
	var criterios []model.CriterioAvaliacaoModel
	if err := ctrl.DB.Where("ativo = ?", true).
		Order("ordem ASC, nome ASC").
		Find(&criterios).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.Success(c, criterios)
}
