package propostas

import (
	"net/http"
	"time"

	"acelerador/database"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/services"
	"acelerador/utils"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// ListParaValidacao returns every proposal for the gestor's validation queue,
// submitted ones first
// @Summary List proposals for validation
// @Tags Propostas
// @Produce json
// @Success 200 {array} models.Proposta
// @Failure 401,403 {object} map[string]string
// @Router /gestor/propostas [get]
// @Security Bearer
func ListParaValidacao(c *gin.Context) {
	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}
	if !workflow.CanValidateProposal(middleware.GetRoleFromRequest(c), phase) {
		response.TransitionDenied(c, &workflow.TransitionError{
			Code:    workflow.CodeFaseNaoPermitida,
			Message: "Validação de propostas não permitida no status atual",
			Phase:   phase,
		})
		return
	}

	query := database.DB.Preload("Equipe").Preload("Venda").Order("data_envio")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var propostas []models.Proposta
	if err := query.Find(&propostas).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar propostas")
		return
	}
	c.JSON(http.StatusOK, propostas)
}

// ListEquipesGestor gives the gestor an overview of the active teams with
// their proposal counts per status
// @Summary List teams for the gestor
// @Tags Propostas
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401,403 {object} map[string]string
// @Router /gestor/equipes [get]
// @Security Bearer
func ListEquipesGestor(c *gin.Context) {
	var equipes []models.Equipe
	if err := database.DB.Where("ativo = ?", true).Order("nome").Find(&equipes).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar equipes")
		return
	}

	result := make([]gin.H, 0, len(equipes))
	for _, equipe := range equipes {
		counts := gin.H{}
		for _, status := range []string{models.PropostaEnviada, models.PropostaValidada, models.PropostaRejeitada} {
			var count int64
			database.DB.Model(&models.Proposta{}).Where("equipe_id = ? AND status = ?", equipe.ID, status).Count(&count)
			counts[status] = count
		}
		result = append(result, gin.H{
			"id":          equipe.ID,
			"nome":        equipe.Nome,
			"codigo":      equipe.Codigo,
			"responsavel": equipe.Responsavel,
			"propostas":   counts,
		})
	}
	c.JSON(http.StatusOK, result)
}

// ValidarProposta applies the gestor's decision to a submitted proposal.
// Validation computes and freezes the proposal's points; rejection records
// the mandatory reason and opens the team's correction loop.
// @Summary Validate or reject proposal
// @Tags Propostas
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param request body ValidacaoRequest true "Decision"
// @Success 200 {object} models.Proposta
// @Failure 400,401,403,404 {object} map[string]string
// @Router /gestor/propostas/{id}/validar [put]
// @Security Bearer
func ValidarProposta(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	var proposta models.Proposta
	if err := database.DB.First(&proposta, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPropostaNotFound)
		return
	}

	var req ValidacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := workflow.CheckValidateProposal(middleware.GetRoleFromRequest(c), phase, &proposta, req.Acao, req.Motivo); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	now := time.Now()
	proposta.DataValidacao = &now
	proposta.ValidadoPorID = &user.ID

	if req.Acao == "validar" {
		cfg, err := database.GetScoringConfig()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Configuração de pontuação indisponível")
			return
		}
		proposta.Status = models.PropostaValidada
		proposta.MotivoRejeicao = ""
		proposta.PontosBonus = utils.CalculateBonusPoints(&proposta)
		proposta.Pontos = utils.CalculateProposalPoints(&proposta, cfg)
	} else {
		proposta.Status = models.PropostaRejeitada
		proposta.MotivoRejeicao = req.Motivo
		proposta.Pontos = 0
		proposta.PontosBonus = 0
	}

	if err := database.DB.Save(&proposta).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveProposta)
		return
	}

	go services.AtualizarRanking()
	c.JSON(http.StatusOK, proposta)
}
