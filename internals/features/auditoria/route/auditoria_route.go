package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func AuditoriaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditoriaController(db)
	r.Get("/auditoria", auth.RequirePermissions(constants.AdminOnly...), ctrl.Listar)
}
