package admin

import (
	"net/http"
	"time"

	"acelerador/database"
	"acelerador/metrics"
	"acelerador/models"
	"acelerador/utils/response"

	"github.com/gin-gonic/gin"
)

// ListEquipes returns every registered team, active or not
// @Summary List teams
// @Description List all teams for administration
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Equipe
// @Failure 401,403 {object} map[string]string
// @Router /admin/equipes [get]
// @Security Bearer
func ListEquipes(c *gin.Context) {
	start := time.Now()
	var equipes []models.Equipe
	if err := database.DB.Order("nome").Find(&equipes).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar equipes")
		return
	}
	metrics.RecordDBOperation("select", "equipes", start)
	c.JSON(http.StatusOK, equipes)
}

// CreateEquipe registers a new team
// @Summary Create team
// @Description Create a team with a unique access code
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body EquipeRequest true "Team data"
// @Success 201 {object} models.Equipe
// @Failure 400,401,403,409 {object} map[string]string
// @Router /admin/equipes [post]
// @Security Bearer
func CreateEquipe(c *gin.Context) {
	var req EquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.Equipe{}).Where("codigo = ?", req.Codigo).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrCodigoInUse)
		return
	}

	equipe := models.Equipe{
		Nome:        req.Nome,
		Codigo:      req.Codigo,
		Responsavel: req.Responsavel,
		Ativo:       true,
	}
	if req.Ativo != nil {
		equipe.Ativo = *req.Ativo
	}

	if err := database.DB.Create(&equipe).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao criar equipe")
		return
	}
	c.JSON(http.StatusCreated, equipe)
}

// UpdateEquipe updates a team's registration data
// @Summary Update team
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body EquipeRequest true "Team data"
// @Success 200 {object} models.Equipe
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /admin/equipes/{id} [put]
// @Security Bearer
func UpdateEquipe(c *gin.Context) {
	id := c.Param("id")

	var equipe models.Equipe
	if err := database.DB.First(&equipe, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrEquipeNotFound)
		return
	}

	var req EquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Codigo != equipe.Codigo {
		var count int64
		database.DB.Model(&models.Equipe{}).Where("codigo = ? AND id <> ?", req.Codigo, equipe.ID).Count(&count)
		if count > 0 {
			response.Error(c, http.StatusConflict, ErrCodigoInUse)
			return
		}
	}

	equipe.Nome = req.Nome
	equipe.Codigo = req.Codigo
	equipe.Responsavel = req.Responsavel
	if req.Ativo != nil {
		equipe.Ativo = *req.Ativo
	}

	if err := database.DB.Save(&equipe).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao atualizar equipe")
		return
	}
	c.JSON(http.StatusOK, equipe)
}

// DeleteEquipe removes a team and detaches its users. The team's proposals
// and sales are kept for the historical ranking.
// @Summary Delete team
// @Tags Admin
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404 {object} map[string]string
// @Router /admin/equipes/{id} [delete]
// @Security Bearer
func DeleteEquipe(c *gin.Context) {
	id := c.Param("id")

	var equipe models.Equipe
	if err := database.DB.First(&equipe, "id = ?", id).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrEquipeNotFound)
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Usuario{}).Where("equipe_id = ?", equipe.ID).Update("equipe_id", nil).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, "Falha ao desvincular usuários da equipe")
		return
	}

	if err := tx.Delete(&equipe).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, "Falha ao excluir equipe")
		return
	}

	if err := tx.Commit().Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedTxCommit)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipe excluída com sucesso"})
}
