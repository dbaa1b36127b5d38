package utils

import "acelerador/models"

// Fixed bonus weights defined by the competition rules: +5 per product-line
// bonus, +25 for a sale closed during the game.
const (
	PontosBonusLinha      = 5
	PontosBonusAceleracao = 25
)

// CalculateBonusPoints sums the bonus flags self-declared on a proposal
func CalculateBonusPoints(p *models.Proposta) int {
	pontos := 0
	if p.BonusVinhosCasaPeriniMundo {
		pontos += PontosBonusLinha
	}
	if p.BonusVinhosFracaoUnica {
		pontos += PontosBonusLinha
	}
	if p.BonusEspumantesVintage {
		pontos += PontosBonusLinha
	}
	if p.BonusEspumantesPremium {
		pontos += PontosBonusLinha
	}
	if p.BonusAceleracao {
		pontos += PontosBonusAceleracao
	}
	return pontos
}

// CalculateProposalPoints computes the points a validated proposal is worth:
// the fixed per-proposal value, plus points per registered product, plus
// bonuses. Anything not validated scores zero.
func CalculateProposalPoints(p *models.Proposta, cfg *models.ConfiguracaoPontuacao) int {
	if p.Status != models.PropostaValidada {
		return 0
	}
	return cfg.PontosPropostaValidada + p.QuantidadeProdutos*cfg.PontosPorProduto + CalculateBonusPoints(p)
}

// CalculateSalePoints computes the product points of a validated sale: sold
// quantity times the per-product weight, nothing else. The per-proposal base
// and the bonus flags are already carried by the proposal and must not be
// counted again here. Pending or rejected sales score zero.
func CalculateSalePoints(v *models.Venda, cfg *models.ConfiguracaoPontuacao) int {
	if v.StatusValidacao != models.VendaValidada {
		return 0
	}
	return v.QuantidadeProdutosVendidos * cfg.PontosPorProduto
}

// CalculateSoldProposalPoints is the ranking value of a proposal whose sale
// was validated: the base once, the sold quantity times the per-product
// weight, and the bonuses once. It replaces the proposal's own points in the
// team total, so nothing is counted twice.
func CalculateSoldProposalPoints(p *models.Proposta, v *models.Venda, cfg *models.ConfiguracaoPontuacao) int {
	if v.StatusValidacao != models.VendaValidada {
		return 0
	}
	return cfg.PontosPropostaValidada + v.QuantidadeProdutosVendidos*cfg.PontosPorProduto + CalculateBonusPoints(p)
}
