package admin

import (
	"net/http"
	"time"

	"acelerador/config"
	"acelerador/database"
	"acelerador/metrics"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/utils"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// ListUsuarios returns every registered profile with its team preloaded
// @Summary List users
// @Description List all access profiles for administration
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Usuario
// @Failure 401,403 {object} map[string]string
// @Router /admin/usuarios [get]
// @Security Bearer
func ListUsuarios(c *gin.Context) {
	start := time.Now()
	var usuarios []models.Usuario
	if err := database.DB.Preload("Equipe").Order("username").Find(&usuarios).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar usuários")
		return
	}
	metrics.RecordDBOperation("select", "usuarios", start)
	c.JSON(http.StatusOK, usuarios)
}

// CreateUsuario registers a new access profile. When no password is given the
// configured default password is used.
// @Summary Create user
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body UsuarioRequest true "User data"
// @Success 201 {object} models.Usuario
// @Failure 400,401,403,409 {object} map[string]string
// @Router /admin/usuarios [post]
// @Security Bearer
func CreateUsuario(c *gin.Context) {
	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	role := workflow.NormalizeRole(req.Nivel)
	if !role.Valid() {
		response.Error(c, http.StatusBadRequest, ErrNivelInvalido)
		return
	}

	var count int64
	database.DB.Model(&models.Usuario{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	password := req.Password
	if password == "" {
		password = config.DefaultPassword
	}
	if password == "" {
		response.Error(c, http.StatusBadRequest, ErrDefaultPassword)
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPassword)
		return
	}

	usuario := models.Usuario{
		Username: req.Username,
		Password: hashed,
		Nivel:    string(role),
		Ativo:    true,
	}
	if role == workflow.RoleEquipe {
		usuario.EquipeID = req.EquipeID
	}
	if req.Ativo != nil {
		usuario.Ativo = *req.Ativo
	}

	if err := database.DB.Create(&usuario).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao criar usuário")
		return
	}
	database.DB.Preload("Equipe").First(&usuario, "id = ?", usuario.ID)
	c.JSON(http.StatusCreated, usuario)
}

// UpdateUsuario updates an access profile. Password changes go through the
// dedicated reset endpoint, not here.
// @Summary Update user
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UsuarioRequest true "User data"
// @Success 200 {object} models.Usuario
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /admin/usuarios/{id} [put]
// @Security Bearer
func UpdateUsuario(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUsuarioNotFound)
		return
	}

	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	role := workflow.NormalizeRole(req.Nivel)
	if !role.Valid() {
		response.Error(c, http.StatusBadRequest, ErrNivelInvalido)
		return
	}

	if req.Username != usuario.Username {
		var count int64
		database.DB.Model(&models.Usuario{}).Where("username = ? AND id <> ?", req.Username, usuario.ID).Count(&count)
		if count > 0 {
			response.Error(c, http.StatusConflict, ErrUsernameInUse)
			return
		}
	}

	usuario.Username = req.Username
	usuario.Nivel = string(role)
	if role == workflow.RoleEquipe {
		usuario.EquipeID = req.EquipeID
	} else {
		// Only team credentials carry a team binding
		usuario.EquipeID = nil
	}
	if req.Ativo != nil {
		usuario.Ativo = *req.Ativo
	}

	if err := database.DB.Save(&usuario).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao atualizar usuário")
		return
	}
	database.DB.Preload("Equipe").First(&usuario, "id = ?", usuario.ID)
	c.JSON(http.StatusOK, usuario)
}

// ResetPassword resets a profile's password to the configured default
// @Summary Reset user password
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404 {object} map[string]string
// @Router /admin/usuarios/{id}/resetar_senha [put]
// @Security Bearer
func ResetPassword(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUsuarioNotFound)
		return
	}

	if config.DefaultPassword == "" {
		response.Error(c, http.StatusBadRequest, ErrDefaultPassword)
		return
	}

	hashed, err := utils.HashPassword(config.DefaultPassword)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPassword)
		return
	}

	if err := database.DB.Model(&usuario).Update("password", hashed).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao redefinir a senha")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida para o padrão"})
}

// DeleteUsuario removes an access profile and its cached session
// @Summary Delete user
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404 {object} map[string]string
// @Router /admin/usuarios/{id} [delete]
// @Security Bearer
func DeleteUsuario(c *gin.Context) {
	id := c.Param("id")

	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if actor.ID == id {
		response.Error(c, http.StatusBadRequest, "Não é possível excluir o próprio usuário")
		return
	}

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUsuarioNotFound)
		return
	}

	if err := database.DB.Delete(&usuario).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao excluir usuário")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário excluído com sucesso"})
}
