package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func VisitanteRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVisitanteController(db)

	g := r.Group("/visitantes")
	g.Get("/", auth.RequirePermissions(constants.ReadVisitantes...), ctrl.Listar)
	g.Get("/:id", auth.RequirePermissions(constants.ReadVisitantes...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreateVisitantes...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdateVisitantes...), ctrl.Atualizar)
	g.Patch("/:id/contato", auth.RequirePermissions(constants.UpdateVisitantes...), ctrl.MarcarContato)
	g.Delete("/:id", auth.RequirePermissions(constants.DeleteVisitantes...), ctrl.Excluir)

	formaCtrl := controller.NewFormaConhecimentoController(db)
	f := r.Group("/formas-conhecimento")
	f.Get("/", auth.RequirePermissions(constants.ReadVisitantes...), formaCtrl.Listar)
	f.Post("/", auth.RequirePermissions(constants.PermManageVisitantes), formaCtrl.Criar)
}
