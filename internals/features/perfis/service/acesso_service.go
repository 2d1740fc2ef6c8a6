package service

import (
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
)

// PermissoesResolvidas é o conjunto imutável de códigos de permissão do
// usuário, calculado uma vez por request a partir do perfil autenticado e
// passado explicitamente adiante (nunca anexado a objetos mutáveis).
type PermissoesResolvidas map[string]struct{}

// ResolverPermissoes monta o conjunto a partir dos códigos do perfil.
func ResolverPermissoes(codigos []string) PermissoesResolvidas {
	set := make(PermissoesResolvidas, len(codigos))
	for _, c := range codigos {
		set[c] = struct{}{}
	}
	return set
}

// Contem informa se o conjunto possui o código dado.
func (p PermissoesResolvidas) Contem(codigo string) bool {
	_, ok := p[codigo]
	return ok
}

// Lista devolve os códigos em slice (para respostas 403 e payloads de login).
func (p PermissoesResolvidas) Lista() []string {
	out := make([]string, 0, len(p))
	for c := range p {
		out = append(out, c)
	}
	return out
}

// Decidir é a função de decisão de acesso: permite se o usuário possui
// admin_sistema ou ao menos UMA das permissões requeridas (OU lógico, não E).
// Função pura dos dois conjuntos, sem efeitos colaterais.
func Decidir(requeridas []string, usuario PermissoesResolvidas) bool {
	if usuario.Contem(constants.PermAdminSistema) {
		return true
	}
	for _, req := range requeridas {
		if usuario.Contem(req) {
			return true
		}
	}
	return false
}
