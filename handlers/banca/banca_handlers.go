package banca

import (
	"fmt"
	"net/http"
	"time"

	"acelerador/database"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/services"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the competition-wide aggregates shown on the banca screen
// @Summary General dashboard
// @Tags Banca
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,503 {object} map[string]string
// @Router /banca/dashboard [get]
// @Security Bearer
func Dashboard(c *gin.Context) {
	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	var totalEquipes int64
	database.DB.Model(&models.Equipe{}).Where("ativo = ?", true).Count(&totalEquipes)

	propostasPorStatus := gin.H{}
	for _, status := range []string{models.PropostaEnviada, models.PropostaValidada, models.PropostaRejeitada} {
		var count int64
		database.DB.Model(&models.Proposta{}).Where("status = ?", status).Count(&count)
		propostasPorStatus[status] = count
	}

	vendasPorStatus := gin.H{}
	for _, status := range []string{models.VendaPendente, models.VendaValidada, models.VendaRejeitada} {
		var count int64
		database.DB.Model(&models.Venda{}).Where("status_validacao = ?", status).Count(&count)
		vendasPorStatus[status] = count
	}

	var valorTotalVendas float64
	database.DB.Model(&models.Venda{}).Where("status_validacao = ?", models.VendaValidada).
		Select("COALESCE(SUM(valor_total_venda), 0)").Scan(&valorTotalVendas)

	c.JSON(http.StatusOK, gin.H{
		"status_sistema":       string(phase),
		"status_display":       phase.Display(),
		"total_equipes":        totalEquipes,
		"propostas_por_status": propostasPorStatus,
		"vendas_por_status":    vendasPorStatus,
		"valor_total_vendas":   valorTotalVendas,
	})
}

// Ranking recomputes and returns the live standings
// @Summary Get ranking
// @Tags Banca
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,503 {object} map[string]string
// @Router /banca/ranking [get]
// @Security Bearer
func Ranking(c *gin.Context) {
	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	standings, err := services.ComputeRanking()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrRankingFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estado_sistema": string(phase),
		"ranking":        standings,
	})
}

// ExportRanking downloads the current standings as an XLSX spreadsheet
// @Summary Export ranking
// @Tags Banca
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401,403,500 {object} map[string]string
// @Router /banca/ranking/export [get]
// @Security Bearer
func ExportRanking(c *gin.Context) {
	standings, err := services.ComputeRanking()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrRankingFailed)
		return
	}

	buf, err := services.ExportRankingXLSX(standings)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao gerar a planilha do ranking")
		return
	}

	filename := fmt.Sprintf("ranking_%s.xlsx", time.Now().Format("2006-01-02_15-04"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetConfiguracao returns the scoring weights in force
// @Summary Get scoring configuration
// @Tags Banca
// @Produce json
// @Success 200 {object} models.ConfiguracaoPontuacao
// @Failure 401,403,503 {object} map[string]string
// @Router /banca/configuracao-pontuacao [get]
// @Security Bearer
func GetConfiguracao(c *gin.Context) {
	cfg, err := database.GetScoringConfig()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrConfigUnavailable)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfiguracao tunes the scoring weights. Points already frozen on
// validated proposals and sales are not recomputed.
// @Summary Update scoring configuration
// @Tags Banca
// @Accept json
// @Produce json
// @Param request body ConfiguracaoRequest true "Scoring weights"
// @Success 200 {object} models.ConfiguracaoPontuacao
// @Failure 400,401,403 {object} map[string]string
// @Router /banca/configuracao-pontuacao [put]
// @Security Bearer
func UpdateConfiguracao(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	if !workflow.CanManageScoring(middleware.GetRoleFromRequest(c)) {
		response.Error(c, http.StatusForbidden, "Apenas a banca pode gerenciar a pontuação")
		return
	}

	var req ConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if *req.PontosPropostaValidada < 0 || *req.PontosPorProduto < 0 {
		response.Error(c, http.StatusBadRequest, "Os pesos de pontuação devem ser maiores ou iguais a zero")
		return
	}

	cfg, err := database.GetScoringConfig()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrConfigUnavailable)
		return
	}

	cfg.PontosPropostaValidada = *req.PontosPropostaValidada
	cfg.PontosPorProduto = *req.PontosPorProduto
	cfg.AtualizadoPorID = &user.ID

	if err := database.DB.Save(cfg).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao salvar a configuração de pontuação")
		return
	}
	c.JSON(http.StatusOK, cfg)
}
