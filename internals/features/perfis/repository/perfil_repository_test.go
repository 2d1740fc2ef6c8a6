package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	usuariosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.PermissaoModel{},
		&model.PerfilModel{},
		&model.PerfilPermissaoModel{},
		&pessoasModel.CargoEclesiasticoModel{},
		&pessoasModel.DepartamentoModel{},
		&pessoasModel.PessoaModel{},
		&usuariosModel.UsuarioModel{},
	))
	return db
}

func criarPermissao(t *testing.T, db *gorm.DB, codigo string) model.PermissaoModel {
	t.Helper()
	perm := model.PermissaoModel{Codigo: codigo, Nome: codigo, Modulo: "teste"}
	require.NoError(t, db.Create(&perm).Error)
	return perm
}

func criarPerfil(t *testing.T, db *gorm.DB, nome string) model.PerfilModel {
	t.Helper()
	perfil := model.PerfilModel{Nome: nome, NivelAcesso: 1, Ativo: true}
	require.NoError(t, db.Create(&perfil).Error)
	return perfil
}

func TestSetPerfilPermissoesSubstituiConjunto(t *testing.T) {
	db := setupDB(t)
	perfil := criarPerfil(t, db, "Secretaria")
	a := criarPermissao(t, db, "read_pessoas")
	b := criarPermissao(t, db, "manage_pessoas")
	c := criarPermissao(t, db, "read_cultos")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return SetPerfilPermissoes(tx, perfil.ID, []uuid.UUID{a.ID, b.ID})
	}))

	// Substituição: o conjunto novo vale integralmente, não é acumulado.
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return SetPerfilPermissoes(tx, perfil.ID, []uuid.UUID{c.ID})
	}))

	var linhas []model.PerfilPermissaoModel
	require.NoError(t, db.Where("perfil_id = ?", perfil.ID).Find(&linhas).Error)
	require.Len(t, linhas, 1)
	assert.Equal(t, c.ID, linhas[0].PermissaoID)
}

func TestSetPerfilPermissoesConjuntoVazioLimpa(t *testing.T) {
	db := setupDB(t)
	perfil := criarPerfil(t, db, "Voluntário")
	a := criarPermissao(t, db, "read_escalas")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return SetPerfilPermissoes(tx, perfil.ID, []uuid.UUID{a.ID})
	}))
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return SetPerfilPermissoes(tx, perfil.ID, nil)
	}))

	var count int64
	require.NoError(t, db.Model(&model.PerfilPermissaoModel{}).
		Where("perfil_id = ?", perfil.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSetPerfilPermissoesIDInexistente(t *testing.T) {
	db := setupDB(t)
	perfil := criarPerfil(t, db, "Recepção")
	a := criarPermissao(t, db, "read_visitantes")

	err := db.Transaction(func(tx *gorm.DB) error {
		return SetPerfilPermissoes(tx, perfil.ID, []uuid.UUID{a.ID, uuid.New()})
	})
	require.ErrorIs(t, err, ErrPermissaoInexistente)

	// A transação abortada não deixa associação parcial.
	var count int64
	require.NoError(t, db.Model(&model.PerfilPermissaoModel{}).
		Where("perfil_id = ?", perfil.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContarUsuariosDoPerfil(t *testing.T) {
	db := setupDB(t)
	perfil := criarPerfil(t, db, "Pastor")

	pessoa := pessoasModel.PessoaModel{NomeCompleto: "Maria Souza", Ativo: true}
	require.NoError(t, db.Create(&pessoa).Error)

	hash, err := usuariosModel.HashSenha("segredo123")
	require.NoError(t, err)
	usuario := usuariosModel.UsuarioModel{
		Email: "maria@igreja.local", SenhaHash: hash, Ativo: true,
		PessoaID: pessoa.ID, PerfilID: perfil.ID,
	}
	require.NoError(t, db.Create(&usuario).Error)

	emUso, err := ContarUsuariosDoPerfil(db, perfil.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, emUso)

	// Soft delete tira o usuário da contagem.
	require.NoError(t, db.Delete(&usuario).Error)
	emUso, err = ContarUsuariosDoPerfil(db, perfil.ID)
	require.NoError(t, err)
	assert.Zero(t, emUso)

	emUso, err = ContarUsuariosDoPerfil(db, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, emUso)
}
