package admin

import (
	"net/http"

	"acelerador/database"
	"acelerador/metrics"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/services"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// GetStatusSistema returns the current global phase
// @Summary Get system status
// @Description Return the global phase that gates every workflow operation
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,503 {object} map[string]string
// @Router /admin/status_sistema [get]
// @Security Bearer
func GetStatusSistema(c *gin.Context) {
	var status models.StatusSistema
	if err := database.DB.First(&status).Error; err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusNotFound)
		return
	}

	phase := workflow.ParsePhase(status.StatusAtual)
	c.JSON(http.StatusOK, gin.H{
		"status_atual":    status.StatusAtual,
		"status_display":  phase.Display(),
		"data_alteracao":  status.DataAlteracao,
		"alterado_por_id": status.AlteradoPorID,
	})
}

// UpdateStatusSistema moves the system to another phase. Any direction is
// allowed; only the administrator role may do it.
// @Summary Change system status
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body StatusSistemaRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403 {object} map[string]string
// @Router /admin/status_sistema [put]
// @Security Bearer
func UpdateStatusSistema(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	if !workflow.CanChangePhase(middleware.GetRoleFromRequest(c)) {
		response.Error(c, http.StatusForbidden, "Apenas administradores podem alterar o status do sistema")
		return
	}

	var req StatusSistemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	phase := workflow.ParsePhase(req.StatusAtual)
	if !phase.Valid() {
		response.Error(c, http.StatusBadRequest, ErrStatusInvalido)
		return
	}

	var status models.StatusSistema
	if err := database.DB.First(&status).Error; err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusNotFound)
		return
	}

	previous := status.StatusAtual
	status.StatusAtual = string(phase)
	status.AlteradoPorID = &user.ID
	if err := database.DB.Save(&status).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao alterar o status do sistema")
		return
	}

	metrics.PhaseChanges.WithLabelValues(previous, string(phase)).Inc()

	// Freeze the standings of the new phase right away
	go services.AtualizarRanking()

	c.JSON(http.StatusOK, gin.H{
		"message":         "Status do sistema alterado com sucesso",
		"status_anterior": previous,
		"status_atual":    string(phase),
		"status_display":  phase.Display(),
	})
}
