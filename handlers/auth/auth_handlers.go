package auth

import (
	"net/http"
	"time"

	"acelerador/database"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/sessions"
	"acelerador/utils"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

func userPayload(user *models.Usuario, role workflow.Role) UserPayload {
	payload := UserPayload{
		ID:           user.ID,
		Username:     user.Username,
		Nivel:        string(role),
		NivelDisplay: role.Display(),
	}
	if user.Equipe != nil {
		payload.Equipe = &user.Equipe.Nome
		payload.EquipeID = &user.Equipe.ID
	}
	return payload
}

func authenticate(c *gin.Context, username, password string) *models.Usuario {
	var user models.Usuario
	if err := database.DB.Preload("Equipe").Where("username = ?", username).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return nil
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return nil
	}
	if !user.Ativo {
		response.Error(c, http.StatusForbidden, ErrProfileInactive)
		return nil
	}
	return &user
}

func openSession(c *gin.Context, user *models.Usuario) (string, bool) {
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerate)
		return "", false
	}
	if sessions.Default != nil {
		sessions.Default.Save(c, token, &sessions.Session{User: *user, Equipe: user.Equipe})
	}

	now := time.Now()
	database.DB.Model(user).Update("last_connected", &now)
	return token, true
}

// Login authenticates any profile and opens a session
// @Summary Login
// @Description Authenticate a user of any access level and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401,403 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user := authenticate(c, req.Username, req.Password)
	if user == nil {
		return
	}

	role := workflow.NormalizeRole(user.Nivel)
	if !role.Valid() {
		response.Error(c, http.StatusForbidden, ErrProfileNotFound)
		return
	}

	token, ok := openSession(c, user)
	if !ok {
		return
	}

	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:         token,
		User:          userPayload(user, role),
		StatusSistema: string(phase),
	})
}

// LoginEquipe authenticates a team credential and flags that a team must
// still be selected before the actor is fully resolved
// @Summary Team login
// @Description Authenticate a team credential; the session stays provisional until a team is selected
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401,403 {object} map[string]string
// @Router /auth/login_equipe [post]
func LoginEquipe(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user := authenticate(c, req.Username, req.Password)
	if user == nil {
		return
	}

	role := workflow.NormalizeRole(user.Nivel)
	if role != workflow.RoleEquipe {
		response.Error(c, http.StatusForbidden, ErrEquipeOnlyLogin)
		return
	}

	token, ok := openSession(c, user)
	if !ok {
		return
	}

	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:                   token,
		User:                    userPayload(user, role),
		StatusSistema:           string(phase),
		RequiresEquipeSelection: true,
	})
}

// EquipesDisponiveis lists the active teams a team credential may bind to
// @Summary List selectable teams
// @Tags Auth
// @Produce json
// @Success 200 {array} models.Equipe
// @Failure 401,403 {object} map[string]string
// @Router /auth/equipes_disponiveis [get]
// @Security Bearer
func EquipesDisponiveis(c *gin.Context) {
	if middleware.GetRoleFromRequest(c) != workflow.RoleEquipe {
		response.Error(c, http.StatusForbidden, ErrEquipeOnly)
		return
	}

	var equipes []models.Equipe
	if err := database.DB.Where("ativo = ?", true).Order("nome").Find(&equipes).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar equipes")
		return
	}
	c.JSON(http.StatusOK, equipes)
}

// SelecionarEquipe binds the chosen team to the session, completing the
// two-phase team login. Only equipe profiles ever carry a team.
// @Summary Select team
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SelecionarEquipeRequest true "Chosen team"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,404 {object} map[string]string
// @Router /auth/selecionar_equipe [post]
// @Security Bearer
func SelecionarEquipe(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	if workflow.NormalizeRole(user.Nivel) != workflow.RoleEquipe {
		response.Error(c, http.StatusForbidden, ErrEquipeOnly)
		return
	}

	var req SelecionarEquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrEquipeRequired)
		return
	}

	var equipe models.Equipe
	if err := database.DB.Where("id = ? AND ativo = ?", req.EquipeID, true).First(&equipe).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrEquipeNotFound)
		return
	}

	if err := database.DB.Model(&models.Usuario{}).Where("id = ?", user.ID).Update("equipe_id", equipe.ID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao selecionar equipe")
		return
	}

	user.EquipeID = &equipe.ID
	user.Equipe = &equipe
	if token := c.GetString(middleware.ContextTokenKey); token != "" && sessions.Default != nil {
		sessions.Default.Save(c, token, &sessions.Session{User: *user, Equipe: &equipe})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Equipe selecionada com sucesso",
		"equipe": gin.H{
			"id":     equipe.ID,
			"nome":   equipe.Nome,
			"codigo": equipe.Codigo,
		},
	})
}

// MeuPerfil returns the authenticated profile, the current system status and
// the permission map the dashboards use to show or hide affordances
// @Summary Get profile
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401,503 {object} map[string]string
// @Router /auth/meu_perfil [get]
// @Security Bearer
func MeuPerfil(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	role := workflow.NormalizeRole(user.Nivel)
	phase, err := database.CurrentPhase()
	if err != nil {
		// Fail closed: without a readable phase no permission is granted
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           userPayload(user, role),
		"status_sistema": string(phase),
		"permissoes": gin.H{
			"pode_enviar_propostas":    workflow.CanSubmitProposal(role, phase),
			"pode_registrar_vendas":    workflow.CanRegisterSale(role, phase),
			"pode_validar_propostas":   workflow.CanValidateProposal(role, phase),
			"pode_validar_vendas":      workflow.CanValidateSale(role, phase),
			"pode_alterar_status":      workflow.CanChangePhase(role),
			"pode_gerenciar_pontuacao": workflow.CanManageScoring(role),
			"pode_ver_dashboard_geral": workflow.CanViewDashboardGeral(role),
		},
	})
}

// Logout clears the server-side session. Idempotent: logging out twice is fine.
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
// @Security Bearer
func Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" && sessions.Default != nil {
		sessions.Default.Clear(c, token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout efetuado com sucesso"})
}
