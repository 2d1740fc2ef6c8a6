package service

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/helpers"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auditoria/model"
)

type Entrada struct {
	UsuarioID       *uuid.UUID
	Tabela          string
	Operacao        string
	RegistroID      string
	DadosAnteriores interface{}
	DadosNovos      interface{}
	IPAddress       string
	UserAgent       string
}

// Registrar grava a entrada de auditoria em background. Falha de auditoria
// nunca falha nem desfaz a operação principal: só loga o erro localmente.
func Registrar(db *gorm.DB, e Entrada) {
	linha := model.LogAuditoriaModel{
		UsuarioID:       e.UsuarioID,
		Tabela:          e.Tabela,
		Operacao:        e.Operacao,
		DadosAnteriores: toJSON(e.DadosAnteriores),
		DadosNovos:      toJSON(e.DadosNovos),
	}
	if e.RegistroID != "" {
		rid := e.RegistroID
		linha.RegistroID = &rid
	}
	if e.IPAddress != "" {
		ip := e.IPAddress
		linha.IPAddress = &ip
	}
	if e.UserAgent != "" {
		ua := e.UserAgent
		linha.UserAgent = &ua
	}

	go func() {
		if err := db.Session(&gorm.Session{NewDB: true}).Create(&linha).Error; err != nil {
			log.Printf("❌ Erro ao registrar log de auditoria (%s %s): %v", e.Operacao, e.Tabela, err)
		}
	}()
}

// RegistrarRequest preenche ator, IP e user-agent a partir do request.
func RegistrarRequest(c *fiber.Ctx, db *gorm.DB, operacao, tabela, registroID string, antes, depois interface{}) {
	Registrar(db, Entrada{
		UsuarioID:       helper.GetUserIDPtr(c),
		Tabela:          tabela,
		Operacao:        operacao,
		RegistroID:      registroID,
		DadosAnteriores: antes,
		DadosNovos:      depois,
		IPAddress:       c.IP(),
		UserAgent:       c.Get(fiber.HeaderUserAgent),
	})
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("❌ Erro ao serializar payload de auditoria: %v", err)
		return nil
	}
	return datatypes.JSON(b)
}
