package services

import (
	"log"
	"sort"

	"acelerador/database"
	"acelerador/models"
	"acelerador/realtime"
	"acelerador/utils"
)

// TeamStanding is one row of the computed ranking
type TeamStanding struct {
	EquipeID            string  `json:"equipe_id"`
	EquipeNome          string  `json:"equipe_nome"`
	Posicao             int     `json:"posicao"`
	Pontos              int     `json:"pontos"`
	PropostasEnviadas   int     `json:"propostas_enviadas"`
	PropostasValidadas  int     `json:"propostas_validadas"`
	VendasConcretizadas int     `json:"vendas_concretizadas"`
	ValorTotalVendas    float64 `json:"valor_total_vendas"`
}

// ComputeRanking recomputes the standings of every active team from scratch.
// Each proposal is counted exactly once: a proposal with a validated sale
// scores base + sold products + bonuses, an unsold validated proposal keeps
// the points frozen at its validation. Ordered by points, then by total sales
// value. Nothing is cached; callers re-run it after every mutation that can
// change a score.
func ComputeRanking() ([]TeamStanding, error) {
	var equipes []models.Equipe
	if err := database.DB.Where("ativo = ?", true).Find(&equipes).Error; err != nil {
		return nil, err
	}

	cfg, err := database.GetScoringConfig()
	if err != nil {
		return nil, err
	}

	standings := make([]TeamStanding, 0, len(equipes))
	for _, equipe := range equipes {
		var propostas []models.Proposta
		if err := database.DB.Preload("Venda").Where("equipe_id = ?", equipe.ID).Find(&propostas).Error; err != nil {
			return nil, err
		}

		row := TeamStanding{EquipeID: equipe.ID, EquipeNome: equipe.Nome}
		row.PropostasEnviadas = len(propostas)
		for _, p := range propostas {
			if p.Status != models.PropostaValidada {
				continue
			}
			row.PropostasValidadas++
			if p.Venda != nil && p.Venda.StatusValidacao == models.VendaValidada {
				row.VendasConcretizadas++
				row.Pontos += utils.CalculateSoldProposalPoints(&p, p.Venda, cfg)
				row.ValorTotalVendas += p.Venda.ValorTotalVenda
			} else {
				row.Pontos += p.Pontos
			}
		}
		standings = append(standings, row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Pontos != standings[j].Pontos {
			return standings[i].Pontos > standings[j].Pontos
		}
		return standings[i].ValorTotalVendas > standings[j].ValorTotalVendas
	})
	for i := range standings {
		standings[i].Posicao = i + 1
	}

	return standings, nil
}

// AtualizarRanking recomputes the standings, persists them for the current
// phase and pushes the update to connected banca dashboards
func AtualizarRanking() {
	phase, err := database.CurrentPhase()
	if err != nil {
		log.Printf("Ranking update skipped, cannot read system status: %v", err)
		return
	}

	standings, err := ComputeRanking()
	if err != nil {
		log.Printf("Ranking update failed: %v", err)
		return
	}

	for _, row := range standings {
		var ranking models.Ranking
		err := database.DB.Where("equipe_id = ? AND estado_sistema = ?", row.EquipeID, string(phase)).First(&ranking).Error
		if err != nil {
			ranking = models.Ranking{EquipeID: row.EquipeID, EstadoSistema: string(phase)}
		}
		ranking.Posicao = row.Posicao
		ranking.Pontos = row.Pontos
		ranking.PropostasEnviadas = row.PropostasEnviadas
		ranking.PropostasValidadas = row.PropostasValidadas
		ranking.VendasConcretizadas = row.VendasConcretizadas
		ranking.ValorTotalVendas = row.ValorTotalVendas
		if err := database.DB.Save(&ranking).Error; err != nil {
			log.Printf("Failed to persist ranking for equipe %s: %v", row.EquipeID, err)
		}
	}

	realtime.BroadcastRanking(realtime.RankingUpdate{
		EstadoSistema: string(phase),
		Standings:     ToRealtimeRows(standings),
	})
}

// ToRealtimeRows projects the standings into the compact websocket shape
func ToRealtimeRows(standings []TeamStanding) []realtime.StandingRow {
	rows := make([]realtime.StandingRow, len(standings))
	for i, s := range standings {
		rows[i] = realtime.StandingRow{
			EquipeID:   s.EquipeID,
			EquipeNome: s.EquipeNome,
			Posicao:    s.Posicao,
			Pontos:     s.Pontos,
		}
	}
	return rows
}
