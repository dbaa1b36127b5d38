package propostas

import (
	"errors"
	"mime/multipart"
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

func formBool(c *gin.Context, field string) bool {
	v := strings.ToLower(strings.TrimSpace(c.PostForm(field)))
	return v == "true" || v == "1"
}

func formFloat(c *gin.Context, field string) (float64, error) {
	return utils.ParseDecimal(c.PostForm(field))
}

func formInt(c *gin.Context, field string) (int, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func saveArquivo(c *gin.Context, file *multipart.FileHeader) (string, error) {
	path, err := utils.SavePDFUpload(c, file, config.UploadDir)
	if errors.Is(err, utils.ErrNotPDF) {
		return "", errors.New(ErrArquivoInvalido)
	}
	return path, err
}

// ListMinhasPropostas returns the proposals of the session's team with their sales
// @Summary List team proposals
// @Tags Propostas
// @Produce json
// @Success 200 {array} models.Proposta
// @Failure 401,403 {object} map[string]string
// @Router /equipe/propostas [get]
// @Security Bearer
func ListMinhasPropostas(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	var propostas []models.Proposta
	if err := database.DB.Preload("Venda").Where("equipe_id = ?", equipe.ID).
		Order("data_envio DESC").Find(&propostas).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao listar propostas")
		return
	}
	c.JSON(http.StatusOK, propostas)
}

// SubmitProposta registers a new proposal for the session's team. Only during
// the workshop phase, and the PDF attachment is mandatory.
// @Summary Submit proposal
// @Tags Propostas
// @Accept multipart/form-data
// @Produce json
// @Param cliente formData string true "Client name"
// @Param vendedor formData string true "Seller name"
// @Param valor_proposta formData number true "Proposal value"
// @Param quantidade_produtos formData integer false "Product count"
// @Param arquivo_pdf formData file true "Proposal PDF"
// @Success 201 {object} models.Proposta
// @Failure 400,401,403 {object} map[string]string
// @Router /equipe/propostas [post]
// @Security Bearer
func SubmitProposta(c *gin.Context) {
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

	valor, err := formFloat(c, "valor_proposta")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Valor da proposta inválido")
		return
	}

	quantidade, err := formInt(c, "quantidade_produtos")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Quantidade de produtos inválida")
		return
	}

	file, fileErr := c.FormFile("arquivo_pdf")
	if err := workflow.CheckSubmitProposal(middleware.GetRoleFromRequest(c), phase, valor, quantidade, fileErr == nil); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	path, err := saveArquivo(c, file)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var numero int64
	database.DB.Model(&models.Proposta{}).Where("equipe_id = ?", equipe.ID).Count(&numero)

	proposta := models.Proposta{
		EquipeID:           equipe.ID,
		Cliente:            c.PostForm("cliente"),
		Vendedor:           c.PostForm("vendedor"),
		ValorProposta:      valor,
		QuantidadeProdutos: quantidade,
		Descricao:          c.PostForm("descricao"),
		ArquivoPDF:         path,

		BonusVinhosCasaPeriniMundo: formBool(c, "bonus_vinhos_casa_perini_mundo"),
		BonusVinhosFracaoUnica:     formBool(c, "bonus_vinhos_fracao_unica"),
		BonusEspumantesVintage:     formBool(c, "bonus_espumantes_vintage"),
		BonusEspumantesPremium:     formBool(c, "bonus_espumantes_premium"),
		BonusAceleracao:            formBool(c, "bonus_aceleracao"),

		Status:               models.PropostaEnviada,
		NumeroPropostaEquipe: int(numero) + 1,
	}

	if err := database.DB.Create(&proposta).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveProposta)
		return
	}
	c.JSON(http.StatusCreated, proposta)
}

// ResubmitProposta corrects a rejected proposal and sends it back for
// validation. Fields present in the form overwrite the stored ones; the
// rejection reason and the validation stamp are cleared.
// @Summary Resubmit proposal
// @Tags Propostas
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} models.Proposta
// @Failure 400,401,403,404 {object} map[string]string
// @Router /equipe/propostas/{id}/reenviar [put]
// @Security Bearer
func ResubmitProposta(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	var proposta models.Proposta
	if err := database.DB.First(&proposta, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPropostaNotFound)
		return
	}

	if err := workflow.CheckResubmitProposal(middleware.GetRoleFromRequest(c), equipe.ID, &proposta); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	if v := c.PostForm("cliente"); v != "" {
		proposta.Cliente = v
	}
	if v := c.PostForm("vendedor"); v != "" {
		proposta.Vendedor = v
	}
	if v := c.PostForm("descricao"); v != "" {
		proposta.Descricao = v
	}
	if raw := strings.TrimSpace(c.PostForm("valor_proposta")); raw != "" {
		valor, err := formFloat(c, "valor_proposta")
		if err != nil || valor < 0 {
			response.Error(c, http.StatusBadRequest, "Valor da proposta inválido")
			return
		}
		proposta.ValorProposta = valor
	}
	if raw := strings.TrimSpace(c.PostForm("quantidade_produtos")); raw != "" {
		quantidade, err := formInt(c, "quantidade_produtos")
		if err != nil || quantidade < 0 {
			response.Error(c, http.StatusBadRequest, "Quantidade de produtos inválida")
			return
		}
		proposta.QuantidadeProdutos = quantidade
	}
	if file, err := c.FormFile("arquivo_pdf"); err == nil {
		path, err := saveArquivo(c, file)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		proposta.ArquivoPDF = path
	}

	proposta.Status = models.PropostaEnviada
	proposta.MotivoRejeicao = ""
	proposta.DataValidacao = nil
	proposta.ValidadoPorID = nil
	proposta.Pontos = 0
	proposta.PontosBonus = 0

	if err := database.DB.Save(&proposta).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSaveProposta)
		return
	}
	c.JSON(http.StatusOK, proposta)
}

// DiscardProposta permanently removes a rejected proposal
// @Summary Discard rejected proposal
// @Tags Propostas
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404 {object} map[string]string
// @Router /equipe/propostas/{id} [delete]
// @Security Bearer
func DiscardProposta(c *gin.Context) {
	equipe := middleware.GetEquipeFromRequest(c)
	if equipe == nil {
		response.Error(c, http.StatusForbidden, ErrEquipeNotResolved)
		return
	}

	var proposta models.Proposta
	if err := database.DB.First(&proposta, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPropostaNotFound)
		return
	}

	if err := workflow.CheckDiscardProposal(middleware.GetRoleFromRequest(c), equipe.ID, &proposta); err != nil {
		response.TransitionDenied(c, err)
		return
	}

	if err := database.DB.Delete(&proposta).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Falha ao excluir proposta")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proposta descartada com sucesso"})
}
