package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func CultoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCultoController(db)

	g := r.Group("/cultos")
	g.Get("/", auth.RequirePermissions(constants.ReadCultos...), ctrl.Listar)
	g.Get("/:id", auth.RequirePermissions(constants.ReadCultos...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreateCultos...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdateCultos...), ctrl.Atualizar)
	g.Patch("/:id/status", auth.RequirePermissions(constants.UpdateCultos...), ctrl.AtualizarStatus)
	g.Delete("/:id", auth.RequirePermissions(constants.DeleteCultos...), ctrl.Excluir)

	tipoCultoCtrl := controller.NewTipoCultoController(db)
	tc := r.Group("/tipos-culto")
	tc.Get("/", auth.RequirePermissions(constants.ReadCultos...), tipoCultoCtrl.Listar)
	tc.Post("/", auth.RequirePermissions(constants.PermManageCultos), tipoCultoCtrl.Criar)
	tc.Put("/:id", auth.RequirePermissions(constants.PermManageCultos), tipoCultoCtrl.Atualizar)
	tc.Delete("/:id", auth.RequirePermissions(constants.PermManageCultos), tipoCultoCtrl.Excluir)

	tipoAtividadeCtrl := controller.NewTipoAtividadeController(db)
	ta := r.Group("/tipos-atividade")
	ta.Get("/", auth.RequirePermissions(constants.ReadCultos...), tipoAtividadeCtrl.Listar)
	ta.Post("/", auth.RequirePermissions(constants.PermManageCultos), tipoAtividadeCtrl.Criar)
	ta.Put("/:id", auth.RequirePermissions(constants.PermManageCultos), tipoAtividadeCtrl.Atualizar)
	ta.Delete("/:id", auth.RequirePermissions(constants.PermManageCultos), tipoAtividadeCtrl.Excluir)
}
