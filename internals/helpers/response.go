package helper

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
)

// Todas as respostas seguem o envelope {success, data?, error?, message?, pagination?}.

// ✅ Sucesso simples (200)
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ✅ Sucesso com mensagem
func SuccessMessage(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Sucesso com código custom (ex.: 201 para created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// ✅ Lista paginada
func SuccessList(c *fiber.Ctx, data interface{}, pagination fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// ✅ Erro simples
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ✅ Erro com detalhes adicionais (ex.: registro conflitante)
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"details": details,
	})
}

// ✅ Erro de validação (validator.v10) com mensagens por campo
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			errorsMap[fieldErr.Field()] = "campo obrigatório"
		case "email":
			errorsMap[fieldErr.Field()] = "formato de email inválido"
		case "min":
			errorsMap[fieldErr.Field()] = "mínimo " + fieldErr.Param()
		case "max":
			errorsMap[fieldErr.Field()] = "máximo " + fieldErr.Param()
		case "oneof":
			errorsMap[fieldErr.Field()] = "deve ser um de: " + fieldErr.Param()
		default:
			errorsMap[fieldErr.Field()] = "valor inválido"
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Dados inválidos",
		"errors":  errorsMap,
	})
}

// ✅ 403 listando permissões requeridas vs. possuídas
func Forbidden(c *fiber.Ctx, requeridas, possuidas []string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success":               false,
		"error":                 "Acesso negado: permissões insuficientes",
		"permissoes_requeridas": requeridas,
		"permissoes_usuario":    possuidas,
	})
}

// ✅ 500 - mensagem suprimida fora de development
func InternalError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	if configs.IsDevelopment() && err != nil {
		return ErrorWithDetails(c, fiber.StatusInternalServerError, "Erro interno do servidor", err.Error())
	}
	return Error(c, fiber.StatusInternalServerError, "Erro interno do servidor")
}
