package utils_test

import (
	"testing"

	"acelerador/models"
	"acelerador/utils"

	"github.com/stretchr/testify/assert"
)

func defaultConfig() *models.ConfiguracaoPontuacao {
	return &models.ConfiguracaoPontuacao{PontosPropostaValidada: 1, PontosPorProduto: 1}
}

func TestCalculateBonusPoints(t *testing.T) {
	assert.Equal(t, 0, utils.CalculateBonusPoints(&models.Proposta{}))

	p := &models.Proposta{
		BonusVinhosCasaPeriniMundo: true,
		BonusEspumantesVintage:     true,
	}
	assert.Equal(t, 10, utils.CalculateBonusPoints(p))

	p.BonusAceleracao = true
	assert.Equal(t, 35, utils.CalculateBonusPoints(p))

	all := &models.Proposta{
		BonusVinhosCasaPeriniMundo: true,
		BonusVinhosFracaoUnica:     true,
		BonusEspumantesVintage:     true,
		BonusEspumantesPremium:     true,
		BonusAceleracao:            true,
	}
	assert.Equal(t, 4*utils.PontosBonusLinha+utils.PontosBonusAceleracao, utils.CalculateBonusPoints(all))
}

func TestCalculateProposalPoints(t *testing.T) {
	cfg := defaultConfig()

	p := &models.Proposta{
		Status:             models.PropostaValidada,
		QuantidadeProdutos: 3,
	}
	// 1 for the validated proposal + 3 products
	assert.Equal(t, 4, utils.CalculateProposalPoints(p, cfg))

	p.BonusVinhosFracaoUnica = true
	assert.Equal(t, 9, utils.CalculateProposalPoints(p, cfg))

	// Anything not validated scores zero
	p.Status = models.PropostaEnviada
	assert.Equal(t, 0, utils.CalculateProposalPoints(p, cfg))
	p.Status = models.PropostaRejeitada
	assert.Equal(t, 0, utils.CalculateProposalPoints(p, cfg))
}

func TestCalculateProposalPointsCustomWeights(t *testing.T) {
	cfg := &models.ConfiguracaoPontuacao{PontosPropostaValidada: 10, PontosPorProduto: 2}
	p := &models.Proposta{
		Status:             models.PropostaValidada,
		QuantidadeProdutos: 5,
		BonusAceleracao:    true,
	}
	assert.Equal(t, 10+5*2+utils.PontosBonusAceleracao, utils.CalculateProposalPoints(p, cfg))
}

func TestCalculateSalePoints(t *testing.T) {
	cfg := defaultConfig()

	v := &models.Venda{
		StatusValidacao:            models.VendaValidada,
		QuantidadeProdutosVendidos: 2,
	}
	// The sale scores only the quantity actually sold; base and bonuses stay
	// with the proposal
	assert.Equal(t, 2, utils.CalculateSalePoints(v, cfg))

	v.StatusValidacao = models.VendaPendente
	assert.Equal(t, 0, utils.CalculateSalePoints(v, cfg))
	v.StatusValidacao = models.VendaRejeitada
	assert.Equal(t, 0, utils.CalculateSalePoints(v, cfg))
}

func TestCalculateSoldProposalPoints(t *testing.T) {
	cfg := defaultConfig()
	p := &models.Proposta{
		Status:             models.PropostaValidada,
		QuantidadeProdutos: 3,
		BonusAceleracao:    true,
	}
	v := &models.Venda{
		StatusValidacao:            models.VendaValidada,
		QuantidadeProdutosVendidos: 3,
	}

	// Base once, sold products once, bonus once: 1 + 3 + 25
	assert.Equal(t, 29, utils.CalculateSoldProposalPoints(p, v, cfg))

	// A concluded sale never scores more than the sum of its parts: the
	// ranking value of a sold proposal equals the proposal's own worth when
	// everything proposed was sold
	assert.Equal(t, utils.CalculateProposalPoints(p, cfg), utils.CalculateSoldProposalPoints(p, v, cfg))

	// Selling less than proposed scores over the sold quantity
	v.QuantidadeProdutosVendidos = 1
	assert.Equal(t, 27, utils.CalculateSoldProposalPoints(p, v, cfg))

	// Nothing counts until the gestor validates the sale
	v.StatusValidacao = models.VendaPendente
	assert.Equal(t, 0, utils.CalculateSoldProposalPoints(p, v, cfg))
}
