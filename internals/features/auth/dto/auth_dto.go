package dto

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// UsuarioLogado é o bloco de usuário devolvido no login e no /me.
type UsuarioLogado struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Nome        string   `json:"nome"`
	Perfil      string   `json:"perfil"`
	NivelAcesso int      `json:"nivel_acesso"`
	Permissoes  []string `json:"permissoes"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	Usuario   UsuarioLogado `json:"usuario"`
}
