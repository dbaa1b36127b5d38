package auth

// Constants for error messages
const (
	ErrInvalidCredentials = "Credenciais inválidas"
	ErrProfileInactive    = "Perfil de acesso inativo"
	ErrProfileNotFound    = "Perfil de acesso não encontrado"
	ErrEquipeOnlyLogin    = "Este login é apenas para equipes"
	ErrEquipeOnly         = "Apenas equipes podem selecionar equipe"
	ErrEquipeRequired     = "ID da equipe é obrigatório"
	ErrEquipeNotFound     = "Equipe não encontrada ou inativa"
	ErrTokenGenerate      = "Falha ao gerar token de acesso"
	ErrStatusUnavailable  = "Não foi possível obter o status do sistema"
)

// LoginRequest model for login endpoints
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SelecionarEquipeRequest binds the team chosen after a team login
type SelecionarEquipeRequest struct {
	EquipeID string `json:"equipe_id" binding:"required"`
}

// UserPayload is the user block returned by the login and profile endpoints
type UserPayload struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Nivel        string  `json:"nivel"`
	NivelDisplay string  `json:"nivel_display"`
	Equipe       *string `json:"equipe"`
	EquipeID     *string `json:"equipe_id"`
}

// LoginResponse model for authentication responses
type LoginResponse struct {
	Token                   string      `json:"token"`
	User                    UserPayload `json:"user"`
	StatusSistema           string      `json:"status_sistema"`
	RequiresEquipeSelection bool        `json:"requires_equipe_selection,omitempty"`
}
