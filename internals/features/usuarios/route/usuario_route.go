package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func UsuarioRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUsuarioController(db)

	g := r.Group("/usuarios")
	g.Get("/", auth.RequirePermissions(constants.ReadUsuarios...), ctrl.Listar)
	g.Get("/:id", auth.RequirePermissions(constants.ReadUsuarios...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreateUsuarios...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdateUsuarios...), ctrl.Atualizar)
	g.Patch("/:id/ativo", auth.RequirePermissions(constants.UpdateUsuarios...), ctrl.AlternarAtivo)
	g.Patch("/:id/desbloquear", auth.RequirePermissions(constants.UpdateUsuarios...), ctrl.Desbloquear)
	g.Delete("/:id", auth.RequirePermissions(constants.DeleteUsuarios...), ctrl.Excluir)
}
