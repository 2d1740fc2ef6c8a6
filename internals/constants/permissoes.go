package constants

// Códigos de permissão do sistema. A tabela permissoes é dado de referência
// imutável; estes códigos são a fonte usada por rotas e seed.
const (
	PermAdminSistema = "admin_sistema"

	PermCreateCultos = "create_cultos"
	PermReadCultos   = "read_cultos"
	PermUpdateCultos = "update_cultos"
	PermDeleteCultos = "delete_cultos"
	PermManageCultos = "manage_cultos"

	PermCreateEscalas = "create_escalas"
	PermReadEscalas   = "read_escalas"
	PermUpdateEscalas = "update_escalas"
	PermDeleteEscalas = "delete_escalas"
	PermManageEscalas = "manage_escalas"

	PermCreatePessoas = "create_pessoas"
	PermReadPessoas   = "read_pessoas"
	PermUpdatePessoas = "update_pessoas"
	PermDeletePessoas = "delete_pessoas"
	PermManagePessoas = "manage_pessoas"

	PermCreateVisitantes = "create_visitantes"
	PermReadVisitantes   = "read_visitantes"
	PermUpdateVisitantes = "update_visitantes"
	PermDeleteVisitantes = "delete_visitantes"
	PermManageVisitantes = "manage_visitantes"

	PermCreateAvaliacoes = "create_avaliacoes"
	PermReadAvaliacoes   = "read_avaliacoes"
	PermUpdateAvaliacoes = "update_avaliacoes"
	PermDeleteAvaliacoes = "delete_avaliacoes"

	PermReadRelatorios = "read_relatorios"

	PermCreateUsuarios = "create_usuarios"
	PermReadUsuarios   = "read_usuarios"
	PermUpdateUsuarios = "update_usuarios"
	PermDeleteUsuarios = "delete_usuarios"

	PermCreatePerfis = "create_perfis"
	PermReadPerfis   = "read_perfis"
	PermUpdatePerfis = "update_perfis"
	PermDeletePerfis = "delete_perfis"
)

// ==========================
// ✅ Grupos por operação
// ==========================
var (
	ReadCultos   = []string{PermReadCultos, PermManageCultos}
	CreateCultos = []string{PermCreateCultos, PermManageCultos}
	UpdateCultos = []string{PermUpdateCultos, PermManageCultos}
	DeleteCultos = []string{PermDeleteCultos, PermManageCultos}

	ReadEscalas   = []string{PermReadEscalas, PermManageEscalas}
	CreateEscalas = []string{PermCreateEscalas, PermManageEscalas}
	UpdateEscalas = []string{PermUpdateEscalas, PermManageEscalas}
	DeleteEscalas = []string{PermDeleteEscalas, PermManageEscalas}

	ReadPessoas   = []string{PermReadPessoas, PermManagePessoas}
	CreatePessoas = []string{PermCreatePessoas, PermManagePessoas}
	UpdatePessoas = []string{PermUpdatePessoas, PermManagePessoas}
	DeletePessoas = []string{PermDeletePessoas, PermManagePessoas}

	ReadVisitantes   = []string{PermReadVisitantes, PermManageVisitantes}
	CreateVisitantes = []string{PermCreateVisitantes, PermManageVisitantes}
	UpdateVisitantes = []string{PermUpdateVisitantes, PermManageVisitantes}
	DeleteVisitantes = []string{PermDeleteVisitantes, PermManageVisitantes}

	ReadAvaliacoes   = []string{PermReadAvaliacoes}
	DeleteAvaliacoes = []string{PermDeleteAvaliacoes}

	ReadUsuarios   = []string{PermReadUsuarios}
	CreateUsuarios = []string{PermCreateUsuarios}
	UpdateUsuarios = []string{PermUpdateUsuarios}
	DeleteUsuarios = []string{PermDeleteUsuarios}

	ReadPerfis   = []string{PermReadPerfis}
	CreatePerfis = []string{PermCreatePerfis}
	UpdatePerfis = []string{PermUpdatePerfis}
	DeletePerfis = []string{PermDeletePerfis}

	ReadRelatorios = []string{PermReadRelatorios}

	AdminOnly = []string{PermAdminSistema}
)
