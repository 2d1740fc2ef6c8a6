package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
)

func TestDecidirPermiteComQualquerPermissaoRequerida(t *testing.T) {
	usuario := ResolverPermissoes([]string{"read_cultos", "read_escalas"})

	assert.True(t, Decidir([]string{"read_cultos"}, usuario))
	assert.True(t, Decidir([]string{"manage_cultos", "read_cultos"}, usuario), "OU lógico: basta uma")
	assert.False(t, Decidir([]string{"manage_cultos"}, usuario))
	assert.False(t, Decidir([]string{"delete_cultos", "update_cultos"}, usuario))
}

func TestDecidirAdminSistemaSempre(t *testing.T) {
	admin := ResolverPermissoes([]string{constants.PermAdminSistema})

	assert.True(t, Decidir([]string{"delete_perfis"}, admin))
	assert.True(t, Decidir([]string{"qualquer_coisa"}, admin))
	assert.True(t, Decidir(nil, admin))
}

func TestDecidirConjuntoVazio(t *testing.T) {
	vazio := ResolverPermissoes(nil)

	assert.False(t, Decidir([]string{"read_cultos"}, vazio))
	assert.False(t, Decidir(nil, vazio), "sem requeridas e sem admin: nega")
}

func TestResolverPermissoesDeduplicaECompara(t *testing.T) {
	set := ResolverPermissoes([]string{"a", "b", "a"})

	assert.Len(t, set.Lista(), 2)
	assert.True(t, set.Contem("a"))
	assert.False(t, set.Contem("c"))
}
