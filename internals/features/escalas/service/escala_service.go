package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
)

// VerificarDuplicidade procura uma escala viva (não cancelada) para a mesma
// tripla pessoa/culto/função. Cancelar libera a vaga: uma escala cancelada não
// bloqueia novo cadastro. Devolve a escala duplicada ou nil.
func VerificarDuplicidade(db *gorm.DB, pessoaID, cultoID, funcaoID uuid.UUID, excludeID *uuid.UUID) (*model.EscalaModel, error) {
	q := db.Model(&model.EscalaModel{}).
		Where("pessoa_id = ? AND culto_id = ? AND funcao_id = ?", pessoaID, cultoID, funcaoID).
		Where("status <> ?", model.StatusEscalaCancelada)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var existente model.EscalaModel
	err := q.First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existente, nil
}
