package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Chaves usadas em c.Locals pelo middleware de autenticação.
const (
	LocalUserID      = "usuario_id"
	LocalPermissoes  = "permissoes"
	LocalPerfilNome  = "perfil_nome"
	LocalNivelAcesso = "nivel_acesso"
)

// GetUserID devolve o id do usuário autenticado gravado pelo middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("usuário não autenticado")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("usuario_id inválido no contexto")
	}
	return id, nil
}

// GetUserIDPtr é a variante tolerante usada pela auditoria (pode ser nil).
func GetUserIDPtr(c *fiber.Ctx) *uuid.UUID {
	id, err := GetUserID(c)
	if err != nil {
		return nil
	}
	return &id
}

// GetPermissoes devolve o conjunto resolvido de códigos de permissão do request.
func GetPermissoes(c *fiber.Ctx) []string {
	if perms, ok := c.Locals(LocalPermissoes).([]string); ok {
		return perms
	}
	return nil
}
