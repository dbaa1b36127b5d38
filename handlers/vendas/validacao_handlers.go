package vendas

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

// ListParaValidar returns the pending sales waiting for the gestor
// @Summary List sales for validation
// @Tags Vendas
// @Produce json
// @Success 200 {array} models.Venda
// @Failure 401,403 {object} map[string]string
// @Router /gestor/vendas/para_validar [get]
// @Security Bearer
func ListParaValidar(c *gin.Context) {
	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}
	if !workflow.CanValidateSale(middleware.GetRoleFromRequest(c), phase) {
		response.TransitionDenied(c, &workflow.TransitionError{
			Code:    workflow.CodeFaseNaoPermitida,
			Message: "Validação de vendas não permitida no status atual",
			Phase:   phase,
		})
		return
	}

	var vendas []models.Venda
	err = database.DB.Preload("Proposta").Preload("Proposta.Equipe").
		Where("status_validacao = ?", models.VendaPendente).
		Order("data_venda").Find(&vendas).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar vendas")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// ValidarVenda applies the gestor's decision to a pending sale. Validation
// computes the product points generated by the sold quantity; rejection
// records the reason and reopens the correction loop.
// @Summary Validate or reject sale
// @Tags Vendas
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param request body ValidacaoRequest true "Decision"
// @Success 200 {object} models.Venda
// @Failure 400,401,403,404 {object} map[string]string
// @Router /gestor/vendas/{id}/validar [put]
// @Security Bearer
func ValidarVenda(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	var venda models.Venda
	if err := database.DB.Preload("Proposta").First(&venda, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrVendaNotFound)
		return
	}
	if venda.Proposta == nil {
		response.Error(c, http.StatusNotFound, ErrPropostaNotFound)
		return
	}

	var req ValidacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := workflow.CheckValidateSale(middleware.GetRoleFromRequest(c), phase, &venda, req.Acao, req.Motivo); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	now := time.Now()
	venda.DataValidacao = &now
	venda.ValidadoPorID = &user.ID

	if req.Acao == "validar" {
		cfg, err := database.GetScoringConfig()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Configuração de pontuação indisponível")
			return
		}
		venda.StatusValidacao = models.VendaValidada
		venda.MotivoRejeicao = ""
		venda.PontosGerados = utils.CalculateSalePoints(&venda, cfg)
	} else {
		venda.StatusValidacao = models.VendaRejeitada
		venda.MotivoRejeicao = req.Motivo
		venda.PontosGerados = 0
	}

	if err := database.DB.Save(&venda).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveVenda)
		return
	}

	go services.AtualizarRanking()
	c.JSON(http.StatusOK, venda)
}
