// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditoriaRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/route"
	authRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auth/route"
	avaliacoesRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/route"
	configuracoesRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/configuracoes/route"
	cultosRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/route"
	escalasRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/route"
	perfisRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/route"
	pessoasRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/route"
	usuariosRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/route"
	visitantesRoute "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/route"
	authMiddleware "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== PÚBLICAS =====================
	log.Println("[INFO] Registrando rotas públicas...")
	authRoute.AuthPublicRoutes(api, db)
	avaliacoesRoute.AvaliacaoPublicRoutes(api, db)

	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"servico": "gerenciamento-cultos",
				"uptime":  time.Since(startTime).String(),
			},
		})
	})

	// ===================== PROTEGIDAS =====================
	log.Println("[INFO] Registrando rotas protegidas...")
	protected := api.Group("", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(protected, db)
	perfisRoute.PerfilRoutes(protected, db)
	usuariosRoute.UsuarioRoutes(protected, db)
	pessoasRoute.PessoaRoutes(protected, db)
	cultosRoute.CultoRoutes(protected, db)
	escalasRoute.EscalaRoutes(protected, db)
	visitantesRoute.VisitanteRoutes(protected, db)
	avaliacoesRoute.AvaliacaoRoutes(protected, db)
	auditoriaRoute.AuditoriaRoutes(protected, db)
	configuracoesRoute.ConfiguracaoRoutes(protected, db)
}
