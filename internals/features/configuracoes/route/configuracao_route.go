package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/configuracoes/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func ConfiguracaoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConfiguracaoController(db)

	g := r.Group("/configuracoes")
	g.Get("/", auth.RequirePermissions(constants.AdminOnly...), ctrl.Listar)
	g.Put("/", auth.RequirePermissions(constants.AdminOnly...), ctrl.Atualizar)
}
