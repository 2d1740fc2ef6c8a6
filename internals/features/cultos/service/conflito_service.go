package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
)

// Janela é o candidato a agendamento normalizado para o teste de conflito.
// Horários são strings HH:MM:SS; a comparação lexicográfica preserva a ordem.
type Janela struct {
	Data      time.Time
	Local     string
	Inicio    string
	Fim       *string // nil = evento pontual, tratado como fim == início
	ExcludeID *uuid.UUID
}

// FimEfetivo aplica a regra COALESCE(fim, inicio).
func (j Janela) FimEfetivo() string {
	if j.Fim != nil && *j.Fim != "" {
		return *j.Fim
	}
	return j.Inicio
}

// VerificarConflito procura um culto não cancelado no mesmo dia e local cuja
// janela se sobreponha à candidata. Intervalos meio-abertos [inicio, fim):
// terminar 21:00 e começar 21:00 NÃO conflita.
//
//	existente.inicio < candidato.fim AND candidato.inicio < COALESCE(existente.fim, existente.inicio)
//
// Devolve o culto conflitante (para a resposta 409) ou nil.
func VerificarConflito(db *gorm.DB, j Janela) (*model.CultoModel, error) {
	q := db.Model(&model.CultoModel{}).
		Where("data_culto = ?", j.Data).
		Where("local = ?", j.Local).
		Where("status <> ?", model.StatusCultoCancelado).
		Where("horario_inicio < ? AND ? < COALESCE(horario_fim, horario_inicio)", j.FimEfetivo(), j.Inicio)

	if j.ExcludeID != nil {
		q = q.Where("id <> ?", *j.ExcludeID)
	}

	var conflito model.CultoModel
	err := q.Preload("TipoCulto").First(&conflito).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conflito, nil
}

// NormalizarHorario valida HH:MM ou HH:MM:SS e devolve sempre HH:MM:SS.
func NormalizarHorario(s string) (string, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", errors.New("horário inválido, use HH:MM ou HH:MM:SS")
}
