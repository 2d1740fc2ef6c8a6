package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

// AvaliacaoPublicRoutes registra o formulário aberto de avaliação.
func AvaliacaoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAvaliacaoController(db)
	r.Post("/avaliacoes/publica", middlewares.AvaliacaoRateLimiter(), ctrl.CriarPublica)
	r.Get("/avaliacoes/criterios", ctrl.ListarCriterios)
}

// AvaliacaoRoutes registra a área administrativa de avaliações.
func AvaliacaoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAvaliacaoController(db)

	g := r.Group("/avaliacoes")
	g.Get("/", auth.RequirePermissions(constants.ReadAvaliacoes...), ctrl.Listar)
	g.Get("/estatisticas", auth.RequirePermissions(constants.ReadRelatorios...), ctrl.Estatisticas)
	g.Get("/:id", auth.RequirePermissions(constants.ReadAvaliacoes...), ctrl.Buscar)
	g.Delete("/:id", auth.RequirePermissions(constants.DeleteAvaliacoes...), ctrl.Excluir)
}
