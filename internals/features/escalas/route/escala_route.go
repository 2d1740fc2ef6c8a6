package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func EscalaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEscalaController(db)

	g := r.Group("/escalas")
	g.Get("/", auth.RequirePermissions(constants.ReadEscalas...), ctrl.Listar)
	g.Get("/estatisticas", auth.RequirePermissions(constants.ReadRelatorios...), ctrl.Estatisticas)
	g.Get("/pessoa/:pessoaId", auth.RequirePermissions(constants.ReadEscalas...), ctrl.ListarPorPessoa)
	g.Get("/:id", auth.RequirePermissions(constants.ReadEscalas...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreateEscalas...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdateEscalas...), ctrl.Atualizar)
	g.Post("/:id/confirmar", auth.RequirePermissions(constants.UpdateEscalas...), ctrl.Confirmar)
	g.Post("/:id/checkin", auth.RequirePermissions(constants.UpdateEscalas...), ctrl.Checkin)
	g.Post("/:id/ausente", auth.RequirePermissions(constants.UpdateEscalas...), ctrl.MarcarAusente)
	g.Post("/:id/cancelar", auth.RequirePermissions(constants.UpdateEscalas...), ctrl.Cancelar)
	g.Delete("/:id", auth.RequirePermissions(constants.DeleteEscalas...), ctrl.Excluir)

	funcaoCtrl := controller.NewFuncaoController(db)
	f := r.Group("/funcoes")
	f.Get("/", auth.RequirePermissions(constants.ReadEscalas...), funcaoCtrl.Listar)
	f.Post("/", auth.RequirePermissions(constants.PermManageEscalas), funcaoCtrl.Criar)
	f.Put("/:id", auth.RequirePermissions(constants.PermManageEscalas), funcaoCtrl.Atualizar)
	f.Delete("/:id", auth.RequirePermissions(constants.PermManageEscalas), funcaoCtrl.Excluir)
}
