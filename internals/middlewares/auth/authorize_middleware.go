package auth

import (
	"github.com/gofiber/fiber/v2"

	perfisService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/service"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

// RequirePermissions libera a rota se o usuário autenticado possuir
// admin_sistema ou ao menos UMA das permissões listadas (OU lógico).
// Deve vir depois de AuthMiddleware na cadeia.
func RequirePermissions(codigos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		possuidas := perfisService.ResolverPermissoes(helper.GetPermissoes(c))
		if perfisService.Decidir(codigos, possuidas) {
			return c.Next()
		}
		return helper.Forbidden(c, codigos, possuidas.Lista())
	}
}
