package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func PerfilRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPerfilController(db)

	g := r.Group("/perfis")
	g.Get("/", auth.RequirePermissions(constants.ReadPerfis...), ctrl.Listar)
	g.Get("/todos", auth.RequirePermissions(constants.ReadPerfis...), ctrl.ListarTodos)
	g.Get("/permissoes", auth.RequirePermissions(constants.ReadPerfis...), ctrl.ListarPermissoes)
	g.Get("/:id", auth.RequirePermissions(constants.ReadPerfis...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreatePerfis...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdatePerfis...), ctrl.Atualizar)
	g.Patch("/:id/ativo", auth.RequirePermissions(constants.UpdatePerfis...), ctrl.AlternarAtivo)
	g.Delete("/:id", auth.RequirePermissions(constants.DeletePerfis...), ctrl.Excluir)
}
