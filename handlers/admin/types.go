package admin

// Constants for error messages
const (
	ErrEquipeNotFound  = "Equipe não encontrada"
	ErrUsuarioNotFound = "Usuário não encontrado"
	ErrUsernameInUse   = "Nome de usuário já está em uso"
	ErrCodigoInUse     = "Código de equipe já está em uso"
	ErrNivelInvalido   = "Nível de acesso inválido"
	ErrStatusInvalido  = "Status de sistema inválido"
	ErrStatusNotFound  = "Status do sistema não configurado"
	ErrHashPassword    = "Falha ao processar a senha"
	ErrDefaultPassword = "Senha padrão não configurada"
	ErrFailedTxCommit  = "Falha ao confirmar a transação"
)

// EquipeRequest defines the structure for creating or updating a team
type EquipeRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Codigo      string `json:"codigo" binding:"required"`
	Responsavel string `json:"responsavel"`
	Ativo       *bool  `json:"ativo"`
}

// UsuarioRequest defines the structure for creating or updating a user
type UsuarioRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password"`
	Nivel    string  `json:"nivel" binding:"required"`
	EquipeID *string `json:"equipe_id"`
	Ativo    *bool   `json:"ativo"`
}

// StatusSistemaRequest binds the administrator's phase change
type StatusSistemaRequest struct {
	StatusAtual string `json:"status_atual" binding:"required"`
}
