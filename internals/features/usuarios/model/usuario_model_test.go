package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	require.NoError(t, err)
	require.NotEqual(t, "segredo123", hash)

	u := UsuarioModel{SenhaHash: hash}
	assert.True(t, u.VerificarSenha("segredo123"))
	assert.False(t, u.VerificarSenha("Segredo123"))
	assert.False(t, u.VerificarSenha(""))
}

func TestBloqueado(t *testing.T) {
	agora := time.Now()

	u := UsuarioModel{}
	assert.False(t, u.Bloqueado(agora), "sem janela de bloqueio")

	futuro := agora.Add(10 * time.Minute)
	u.BloqueadoAte = &futuro
	assert.True(t, u.Bloqueado(agora))

	// Janela expirada libera o login mesmo com o campo preenchido.
	passado := agora.Add(-time.Minute)
	u.BloqueadoAte = &passado
	assert.False(t, u.Bloqueado(agora))
}
