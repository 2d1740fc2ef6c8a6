package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

func PessoaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPessoaController(db)

	g := r.Group("/pessoas")
	g.Get("/", auth.RequirePermissions(constants.ReadPessoas...), ctrl.Listar)
	g.Get("/:id", auth.RequirePermissions(constants.ReadPessoas...), ctrl.Buscar)
	g.Post("/", auth.RequirePermissions(constants.CreatePessoas...), ctrl.Criar)
	g.Put("/:id", auth.RequirePermissions(constants.UpdatePessoas...), ctrl.Atualizar)
	g.Delete("/:id", auth.RequirePermissions(constants.DeletePessoas...), ctrl.Excluir)

	cargoCtrl := controller.NewCargoController(db)
	cargos := r.Group("/cargos-eclesiasticos")
	cargos.Get("/", auth.RequirePermissions(constants.ReadPessoas...), cargoCtrl.Listar)
	cargos.Post("/", auth.RequirePermissions(constants.PermManagePessoas), cargoCtrl.Criar)
	cargos.Put("/:id", auth.RequirePermissions(constants.PermManagePessoas), cargoCtrl.Atualizar)
	cargos.Delete("/:id", auth.RequirePermissions(constants.PermManagePessoas), cargoCtrl.Excluir)

	depCtrl := controller.NewDepartamentoController(db)
	deps := r.Group("/departamentos")
	deps.Get("/", auth.RequirePermissions(constants.ReadPessoas...), depCtrl.Listar)
	deps.Post("/", auth.RequirePermissions(constants.PermManagePessoas), depCtrl.Criar)
	deps.Put("/:id", auth.RequirePermissions(constants.PermManagePessoas), depCtrl.Atualizar)
	deps.Delete("/:id", auth.RequirePermissions(constants.PermManagePessoas), depCtrl.Excluir)
}
