package seeds

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/configs"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/constants"
	avaliacoesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/avaliacoes/model"
	configuracoesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/configuracoes/model"
	cultosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/cultos/model"
	escalasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/escalas/model"
	perfisModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/model"
	perfisRepo "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/perfis/repository"
	pessoasModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/pessoas/model"
	usuariosModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/usuarios/model"
	visitantesModel "github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/visitantes/model"
)

// Run popula dados de referência e o usuário administrador inicial.
// Idempotente: pode rodar em todo boot com SEED=true.
func Run(db *gorm.DB) error {
	log.Println("🌱 Iniciando seed...")

	if err := seedPermissoes(db); err != nil {
		return err
	}
	if err := seedPerfis(db); err != nil {
		return err
	}
	if err := seedReferencias(db); err != nil {
		return err
	}
	if err := seedConfiguracoes(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}

	log.Println("✅ Seed concluído.")
	return nil
}

type permissaoSeed struct {
	Codigo string
	Nome   string
	Modulo string
}

func catalogoPermissoes() []permissaoSeed {
	return []permissaoSeed{
		{constants.PermAdminSistema, "Administrador do sistema", "sistema"},

		{constants.PermCreateCultos, "Criar cultos", "cultos"},
		{constants.PermReadCultos, "Consultar cultos", "cultos"},
		{constants.PermUpdateCultos, "Atualizar cultos", "cultos"},
		{constants.PermDeleteCultos, "Excluir cultos", "cultos"},
		{constants.PermManageCultos, "Gerenciar cultos", "cultos"},

		{constants.PermCreateEscalas, "Criar escalas", "escalas"},
		{constants.PermReadEscalas, "Consultar escalas", "escalas"},
		{constants.PermUpdateEscalas, "Atualizar escalas", "escalas"},
		{constants.PermDeleteEscalas, "Excluir escalas", "escalas"},
		{constants.PermManageEscalas, "Gerenciar escalas", "escalas"},

		{constants.PermCreatePessoas, "Cadastrar pessoas", "pessoas"},
		{constants.PermReadPessoas, "Consultar pessoas", "pessoas"},
		{constants.PermUpdatePessoas, "Atualizar pessoas", "pessoas"},
		{constants.PermDeletePessoas, "Excluir pessoas", "pessoas"},
		{constants.PermManagePessoas, "Gerenciar pessoas", "pessoas"},

		{constants.PermCreateVisitantes, "Registrar visitantes", "visitantes"},
		{constants.PermReadVisitantes, "Consultar visitantes", "visitantes"},
		{constants.PermUpdateVisitantes, "Atualizar visitantes", "visitantes"},
		{constants.PermDeleteVisitantes, "Excluir visitantes", "visitantes"},
		{constants.PermManageVisitantes, "Gerenciar visitantes", "visitantes"},

		{constants.PermCreateAvaliacoes, "Criar avaliações", "avaliacoes"},
		{constants.PermReadAvaliacoes, "Consultar avaliações", "avaliacoes"},
		{constants.PermUpdateAvaliacoes, "Atualizar avaliações", "avaliacoes"},
		{constants.PermDeleteAvaliacoes, "Excluir avaliações", "avaliacoes"},

		{constants.PermReadRelatorios, "Consultar relatórios", "relatorios"},

		{constants.PermCreateUsuarios, "Criar usuários", "usuarios"},
		{constants.PermReadUsuarios, "Consultar usuários", "usuarios"},
		{constants.PermUpdateUsuarios, "Atualizar usuários", "usuarios"},
		{constants.PermDeleteUsuarios, "Excluir usuários", "usuarios"},

		{constants.PermCreatePerfis, "Criar perfis", "perfis"},
		{constants.PermReadPerfis, "Consultar perfis", "perfis"},
		{constants.PermUpdatePerfis, "Atualizar perfis", "perfis"},
		{constants.PermDeletePerfis, "Excluir perfis", "perfis"},
	}
}

func seedPermissoes(db *gorm.DB) error {
	for _, p := range catalogoPermissoes() {
		perm := perfisModel.PermissaoModel{Codigo: p.Codigo, Nome: p.Nome, Modulo: p.Modulo}
		if err := db.Where("codigo = ?", p.Codigo).FirstOrCreate(&perm).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPerfis(db *gorm.DB) error {
	perfis := []struct {
		Nome        string
		NivelAcesso int
		Codigos     []string
	}{
		{"Administrador", 10, []string{constants.PermAdminSistema}},
		{"Pastor", 8, []string{
			constants.PermManageCultos, constants.PermManageEscalas,
			constants.PermManagePessoas, constants.PermManageVisitantes,
			constants.PermReadAvaliacoes, constants.PermDeleteAvaliacoes,
			constants.PermReadRelatorios,
			constants.PermReadUsuarios, constants.PermReadPerfis,
		}},
		{"Líder de Ministério", 6, []string{
			constants.PermManageEscalas, constants.PermReadCultos,
			constants.PermReadPessoas, constants.PermReadRelatorios,
		}},
		{"Secretaria", 5, []string{
			constants.PermManagePessoas, constants.PermManageVisitantes,
			constants.PermReadCultos, constants.PermReadEscalas,
		}},
		{"Recepção", 3, []string{
			constants.PermCreateVisitantes, constants.PermReadVisitantes,
			constants.PermUpdateVisitantes, constants.PermReadCultos,
		}},
		{"Voluntário", 2, []string{
			constants.PermReadCultos, constants.PermReadEscalas,
		}},
	}

	for _, seed := range perfis {
		perfil := perfisModel.PerfilModel{Nome: seed.Nome, NivelAcesso: seed.NivelAcesso, Ativo: true}
		if err := db.Where("nome = ?", seed.Nome).FirstOrCreate(&perfil).Error; err != nil {
			return err
		}

		var permissoes []perfisModel.PermissaoModel
		if err := db.Where("codigo IN ?", seed.Codigos).Find(&permissoes).Error; err != nil {
			return err
		}
		ids := make([]uuid.UUID, 0, len(permissoes))
		for _, p := range permissoes {
			ids = append(ids, p.ID)
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			return perfisRepo.SetPerfilPermissoes(tx, perfil.ID, ids)
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedReferencias(db *gorm.DB) error {
	cargos := []string{"Pastor", "Presbítero", "Evangelista", "Diácono", "Diaconisa", "Missionário", "Membro"}
	for _, nome := range cargos {
		cargo := pessoasModel.CargoEclesiasticoModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&cargo).Error; err != nil {
			return err
		}
	}

	departamentos := []string{"Louvor", "Mídia", "Recepção", "Infantil", "Jovens", "Intercessão", "Diaconia"}
	for _, nome := range departamentos {
		dep := pessoasModel.DepartamentoModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&dep).Error; err != nil {
			return err
		}
	}

	tiposCulto := []string{"Culto de Celebração", "Culto de Oração", "Culto de Ensino", "Culto de Jovens", "Santa Ceia", "Vigília"}
	for _, nome := range tiposCulto {
		tipo := cultosModel.TipoCultoModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&tipo).Error; err != nil {
			return err
		}
	}

	tiposAtividade := []string{"Louvor", "Palavra", "Ofertório", "Avisos", "Oração", "Ceia", "Batismo"}
	for _, nome := range tiposAtividade {
		tipo := cultosModel.TipoAtividadeModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&tipo).Error; err != nil {
			return err
		}
	}

	funcoes := []string{"Pregador", "Dirigente", "Ministro de Louvor", "Operador de Som", "Operador de Projeção", "Recepcionista", "Diácono de Plantão", "Intercessor"}
	for _, nome := range funcoes {
		funcao := escalasModel.FuncaoModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&funcao).Error; err != nil {
			return err
		}
	}

	formas := []string{"Convite de amigo", "Redes sociais", "Passou em frente", "Evangelismo", "Família", "Outro"}
	for _, nome := range formas {
		forma := visitantesModel.FormaConhecimentoModel{Nome: nome, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&forma).Error; err != nil {
			return err
		}
	}

	criterios := []string{"Louvor", "Palavra", "Recepção", "Organização", "Som e Mídia"}
	for i, nome := range criterios {
		criterio := avaliacoesModel.CriterioAvaliacaoModel{Nome: nome, Ordem: i + 1, Ativo: true}
		if err := db.Where("nome = ?", nome).FirstOrCreate(&criterio).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedConfiguracoes(db *gorm.DB) error {
	padroes := map[string]string{
		"nome_igreja":              `"Igreja Local"`,
		"local_padrao":             `"Templo Sede"`,
		"avaliacao_publica_ativa":  `true`,
		"antecedencia_escala_dias": `7`,
	}
	for chave, valor := range padroes {
		cfg := configuracoesModel.ConfiguracaoModel{Chave: chave, Valor: datatypes.JSON(valor)}
		if err := db.Where("chave = ?", chave).FirstOrCreate(&cfg).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@igreja.local")

	var existente usuariosModel.UsuarioModel
	err := db.Where("email = ?", email).First(&existente).Error
	if err == nil {
		return nil // admin já existe
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var perfilAdmin perfisModel.PerfilModel
	if err := db.Where("nome = ?", "Administrador").First(&perfilAdmin).Error; err != nil {
		return err
	}

	pessoa := pessoasModel.PessoaModel{NomeCompleto: "Administrador do Sistema", Ativo: true}
	if err := db.Create(&pessoa).Error; err != nil {
		return err
	}

	senha := configs.GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	hash, err := usuariosModel.HashSenha(senha)
	if err != nil {
		return err
	}

	admin := usuariosModel.UsuarioModel{
		Email:     email,
		SenhaHash: hash,
		Ativo:     true,
		PessoaID:  pessoa.ID,
		PerfilID:  perfilAdmin.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("👤 Usuário administrador criado: %s", email)
	return nil
}
