package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
)

var ErrPermissaoInexistente = errors.New("uma ou mais permissões não foram encontradas")

// SetPerfilPermissoes substitui as associações perfil↔permissão de forma
// transacional: valida os ids, apaga as linhas atuais e insere as novas.
// Substituição explícita em vez de diffing implícito de associação do ORM.
func SetPerfilPermissoes(tx *gorm.DB, perfilID uuid.UUID, permissaoIDs []uuid.UUID) error {
	if len(permissaoIDs) > 0 {
		var count int64
		if err := tx.Model(&model.PermissaoModel{}).
			Where("id IN ?", permissaoIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(permissaoIDs)) {
			return ErrPermissaoInexistente
		}
	}

	if err := tx.Where("perfil_id = ?", perfilID).
		Delete(&model.PerfilPermissaoModel{}).Error; err != nil {
		return err
	}

	if len(permissaoIDs) == 0 {
		return nil
	}

	linhas := make([]model.PerfilPermissaoModel, 0, len(permissaoIDs))
	for _, pid := range permissaoIDs {
		linhas = append(linhas, model.PerfilPermissaoModel{
			PerfilID:    perfilID,
			PermissaoID: pid,
		})
	}
	return tx.Create(&linhas).Error
}

// ContarUsuariosDoPerfil conta usuários ativos (não excluídos) que referenciam
// o perfil. Usado para bloquear exclusão de perfil em uso.
func ContarUsuariosDoPerfil(db *gorm.DB, perfilID uuid.UUID) (int64, error) {
	var count int64
	err := db.Table("usuarios").
		Where("perfil_id = ? AND deleted_at IS NULL", perfilID).
		Count(&count).Error
	return count, err
}
