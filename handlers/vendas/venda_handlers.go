package vendas

import (
	"net/http"
	"strconv"
	"strings"

	"acelerador/config"
	"acelerador/database"
	"acelerador/middleware"
	"acelerador/models"
	"acelerador/utils"
	"acelerador/utils/response"
	"acelerador/workflow"

	"github.com/gin-gonic/gin"
)

func temVendaAtiva(propostaID string) bool {
	var count int64
	database.DB.Model(&models.Venda{}).
		Where("proposta_id = ? AND status_validacao <> ?", propostaID, models.VendaRejeitada).
		Count(&count)
	return count > 0
}

// ListPropostasValidadas returns the team's validated proposals that can still
// receive a sale, i.e. those without an active one
// @Summary List sellable proposals
// @Tags Vendas
// @Produce json
// @Success 200 {array} models.Proposta
// @Failure 401,403 {object} map[string]string
// @Router /equipe/propostas-validadas [get]
// @Security Bearer
func ListPropostasValidadas(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	var propostas []models.Proposta
	err := database.DB.
		Where("equipe_id = ? AND status = ?", equipe.ID, models.PropostaValidada).
		Where("id NOT IN (?)", database.DB.Model(&models.Venda{}).Select("proposta_id").
			Where("status_validacao <> ?", models.VendaRejeitada)).
		Order("data_envio").Find(&propostas).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar propostas validadas")
		return
	}
	c.JSON(http.StatusOK, propostas)
}

// RegisterVenda records a sale against one of the team's validated proposals.
// Quantity and value default to the proposal's own numbers when omitted; an
// optional PDF can back the sale up. The sale starts pending and only scores
// after the gestor validates it.
// @Summary Register sale
// @Tags Vendas
// @Accept multipart/form-data
// @Produce json
// @Param proposta_id formData string true "Proposal ID"
// @Param quantidade_produtos_vendidos formData integer false "Sold quantity, defaults to the proposal's"
// @Param valor_total_venda formData number false "Sale value, defaults to the proposal's"
// @Param cliente_venda formData string false "Client"
// @Param observacoes formData string false "Notes"
// @Param arquivo_pdf formData file false "Sale PDF"
// @Success 201 {object} models.Venda
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /equipe/vendas [post]
// @Security Bearer
func RegisterVenda(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	phase, err := database.CurrentPhase()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, ErrStatusUnavailable)
		return
	}

	propostaID := strings.TrimSpace(c.PostForm("proposta_id"))
	if propostaID == "" {
		response.Error(c, http.StatusBadRequest, "ID da proposta é obrigatório")
		return
	}

	var proposta models.Proposta
	if err := database.DB.First(&proposta, "id = ?", propostaID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPropostaNotFound)
		return
	}

	quantidade := proposta.QuantidadeProdutos
	if raw := strings.TrimSpace(c.PostForm("quantidade_produtos_vendidos")); raw != "" {
		quantidade, err = strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Quantidade de produtos vendidos inválida")
			return
		}
	}
	valor := proposta.ValorProposta
	if raw := strings.TrimSpace(c.PostForm("valor_total_venda")); raw != "" {
		valor, err = utils.ParseDecimal(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Valor total da venda inválido")
			return
		}
	}

	if err := workflow.CheckRegisterSale(middleware.GetRoleFromRequest(c), phase, equipe.ID, &proposta, quantidade, temVendaAtiva(proposta.ID)); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	venda := models.Venda{
		PropostaID:                 proposta.ID,
		QuantidadeProdutosVendidos: quantidade,
		ValorTotalVenda:            valor,
		ClienteVenda:               c.PostForm("cliente_venda"),
		Observacoes:                c.PostForm("observacoes"),
		StatusValidacao:            models.VendaPendente,
	}
	if file, ferr := c.FormFile("arquivo_pdf"); ferr == nil {
		path, err := utils.SavePDFUpload(c, file, config.UploadDir)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		venda.ArquivoPDF = path
	}

	if err := database.DB.Create(&venda).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveVenda)
		return
	}
	c.JSON(http.StatusCreated, venda)
}

// ListMinhasVendas returns every sale of the session's team
// @Summary List team sales
// @Tags Vendas
// @Produce json
// @Success 200 {array} models.Venda
// @Failure 401,403 {object} map[string]string
// @Router /equipe/vendas [get]
// @Security Bearer
func ListMinhasVendas(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	var vendas []models.Venda
	err := database.DB.Preload("Proposta").
		Joins("JOIN propostas ON propostas.id = vendas.proposta_id").
		Where("propostas.equipe_id = ?", equipe.ID).
		Order("vendas.data_venda DESC").Find(&vendas).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar vendas")
		return
	}
	c.JSON(http.StatusOK, vendas)
}

// CorrigirVenda overwrites a rejected sale's data and sends it back to the
// validation queue as pending. Fields present in the form replace the stored
// ones, including an optional replacement PDF.
// @Summary Correct rejected sale
// @Tags Vendas
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Sale ID"
// @Param quantidade_produtos_vendidos formData integer false "Sold quantity"
// @Param valor_total_venda formData number false "Sale value"
// @Param cliente_venda formData string false "Client"
// @Param observacoes formData string false "Notes"
// @Param arquivo_pdf formData file false "Replacement PDF"
// @Success 200 {object} models.Venda
// @Failure 400,401,403,404 {object} map[string]string
// @Router /equipe/vendas/{id}/corrigir [put]
// @Security Bearer
func CorrigirVenda(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
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

	quantidade := venda.QuantidadeProdutosVendidos
	if raw := strings.TrimSpace(c.PostForm("quantidade_produtos_vendidos")); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Quantidade de produtos vendidos inválida")
			return
		}
		quantidade = q
	}
	valor := venda.ValorTotalVenda
	if raw := strings.TrimSpace(c.PostForm("valor_total_venda")); raw != "" {
		v, err := utils.ParseDecimal(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Valor total da venda inválido")
			return
		}
		valor = v
	}

	if err := workflow.CheckCorrectSale(middleware.GetRoleFromRequest(c), equipe.ID, &venda, venda.Proposta.EquipeID, quantidade); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	venda.QuantidadeProdutosVendidos = quantidade
	venda.ValorTotalVenda = valor
	if v := c.PostForm("cliente_venda"); v != "" {
		venda.ClienteVenda = v
	}
	if v := c.PostForm("observacoes"); v != "" {
		venda.Observacoes = v
	}
	if file, ferr := c.FormFile("arquivo_pdf"); ferr == nil {
		path, err := utils.SavePDFUpload(c, file, config.UploadDir)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		venda.ArquivoPDF = path
	}

	venda.StatusValidacao = models.VendaPendente
	venda.MotivoRejeicao = ""
	venda.DataValidacao = nil
	venda.ValidadoPorID = nil
	venda.PontosGerados = 0

	if err := database.DB.Save(&venda).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveVenda)
		return
	}
	c.JSON(http.StatusOK, venda)
}
