package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
	auditoriaModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
	auditoriaService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/service"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auth/dto"
	perfisService "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/service"
	usuariosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
// Falha de senha e email inexistente devolvem a MESMA mensagem genérica.
// Cinco falhas consecutivas bloqueiam a conta por trinta minutos.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var usuario usuariosModel.UsuarioModel
	err := ctrl.DB.Preload("Pessoa").Preload("Perfil.Permissoes").
		Where("email = ?", req.Email).
		First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email ou senha inválidos")
		}
		return helper.InternalError(c, err)
	}

	agora := time.Now()
	if usuario.Bloqueado(agora) {
		return helper.Error(c, fiber.StatusLocked,
			"Conta temporariamente bloqueada por excesso de tentativas. Tente novamente mais tarde.")
	}
	if !usuario.Ativo {
		return helper.Error(c, fiber.StatusForbidden, "Usuário desativado")
	}

	if !usuario.VerificarSenha(req.Senha) {
		usuario.TentativasLogin++
		updates := map[string]interface{}{"tentativas_login": usuario.TentativasLogin}
		if usuario.TentativasLogin >= usuariosModel.MaxTentativasLogin {
			ate := agora.Add(usuariosModel.DuracaoBloqueio)
			updates["bloqueado_ate"] = ate
			log.Printf("[WARN] Conta %s bloqueada até %s por tentativas excessivas", usuario.Email, ate.Format(time.RFC3339))
		}
		if err := ctrl.DB.Model(&usuario).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] Falha ao registrar tentativa de login: %v", err)
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Email ou senha inválidos")
	}

	// Sucesso: zera contadores e registra o último acesso.
	if err := ctrl.DB.Model(&usuario).Updates(map[string]interface{}{
		"tentativas_login": 0,
		"bloqueado_ate":    nil,
		"ultimo_login":     agora,
	}).Error; err != nil {
		log.Printf("[ERROR] Falha ao atualizar último login: %v", err)
	}

	token, err := ctrl.gerarToken(&usuario, agora)
	if err != nil {
		return helper.InternalError(c, err)
	}

	permissoes := perfisService.ResolverPermissoes(usuario.Perfil.CodigosPermissoes())

	uid := usuario.ID
	auditoriaService.Registrar(ctrl.DB, auditoriaService.Entrada{
		UsuarioID:  &uid,
		Tabela:     "usuarios",
		Operacao:   auditoriaModel.OperacaoLogin,
		RegistroID: usuario.ID.String(),
		IPAddress:  c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	})

	nome := usuario.Email
	if usuario.Pessoa != nil {
		nome = usuario.Pessoa.NomeCompleto
	}

	return helper.SuccessMessage(c, "Login realizado com sucesso", dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(configs.JWTExpiresIn.Seconds()),
		Usuario: dto.UsuarioLogado{
			ID:          usuario.ID.String(),
			Email:       usuario.Email,
			Nome:        nome,
			Perfil:      usuario.Perfil.Nome,
			NivelAcesso: usuario.Perfil.NivelAcesso,
			Permissoes:  permissoes.Lista(),
		},
	})
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	var usuario usuariosModel.UsuarioModel
	if err := ctrl.DB.Preload("Pessoa").Preload("Perfil.Permissoes").
		First(&usuario, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Usuário não encontrado")
		}
		return helper.InternalError(c, err)
	}

	permissoes := perfisService.ResolverPermissoes(usuario.Perfil.CodigosPermissoes())
	nome := usuario.Email
	if usuario.Pessoa != nil {
		nome = usuario.Pessoa.NomeCompleto
	}

	return helper.Success(c, dto.UsuarioLogado{
		ID:          usuario.ID.String(),
		Email:       usuario.Email,
		Nome:        nome,
		Perfil:      usuario.Perfil.Nome,
		NivelAcesso: usuario.Perfil.NivelAcesso,
		Permissoes:  permissoes.Lista(),
	})
}

// GET /api/auth/verify - confirma que o token do request continua válido.
func (ctrl *AuthController) Verify(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	return helper.Success(c, fiber.Map{
		"valido":     true,
		"usuario_id": userID.String(),
		"permissoes": helper.GetPermissoes(c),
	})
}

// POST /api/auth/logout - JWT é stateless; apenas audita a saída.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	uid := userID
	auditoriaService.Registrar(ctrl.DB, auditoriaService.Entrada{
		UsuarioID:  &uid,
		Tabela:     "usuarios",
		Operacao:   auditoriaModel.OperacaoLogout,
		RegistroID: userID.String(),
		IPAddress:  c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	})

	return helper.SuccessMessage(c, "Logout realizado com sucesso", nil)
}

func (ctrl *AuthController) gerarToken(usuario *usuariosModel.UsuarioModel, agora time.Time) (string, error) {
	claims := jwt.MapClaims{
		"usuario_id": usuario.ID.String(),
		"email":      usuario.Email,
		"iat":        agora.Unix(),
		"exp":        agora.Add(configs.JWTExpiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
