// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
	perfisService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/service"
	usuariosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

// AuthMiddleware valida o JWT, carrega o usuário com perfil e permissões e
// grava o contexto resolvido em c.Locals. As permissões são resolvidas UMA vez
// por request; nada de autorização é decidido aqui.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Token de acesso não informado")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return helper.InternalError(c, errors.New("jwt secret ausente"))
		}

		claims := jwt.MapClaims{}
		parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Token sem identificação de usuário")
		}

		var usuario usuariosModel.UsuarioModel
		if err := db.Preload("Perfil.Permissoes").
			First(&usuario, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusUnauthorized, "Usuário não encontrado")
			}
			return helper.InternalError(c, err)
		}

		if !usuario.Ativo {
			return helper.Error(c, fiber.StatusForbidden, "Usuário desativado")
		}
		if usuario.Perfil == nil || !usuario.Perfil.Ativo {
			return helper.Error(c, fiber.StatusForbidden, "Perfil de acesso desativado")
		}

		permissoes := perfisService.ResolverPermissoes(usuario.Perfil.CodigosPermissoes())

		c.Locals(helper.LocalUserID, usuario.ID.String())
		c.Locals(helper.LocalPermissoes, permissoes.Lista())
		c.Locals(helper.LocalPerfilNome, usuario.Perfil.Nome)
		c.Locals(helper.LocalNivelAcesso, usuario.Perfil.NivelAcesso)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.New("header Authorization ausente")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("formato do header Authorization inválido")
	}
	return parts[1], nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["usuario_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("claim usuario_id ausente")
	}
	return uuid.Parse(raw)
}
