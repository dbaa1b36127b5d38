package services_test

import (
	"testing"

	"acelerador/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRankingXLSX(t *testing.T) {
	standings := []services.TeamStanding{
		{EquipeID: "e1", EquipeNome: "Vendas Sul", Posicao: 1, Pontos: 42, PropostasEnviadas: 5, PropostasValidadas: 4, VendasConcretizadas: 2, ValorTotalVendas: 15300.50},
		{EquipeID: "e2", EquipeNome: "Vendas Norte", Posicao: 2, Pontos: 30, PropostasEnviadas: 3, PropostasValidadas: 3, VendasConcretizadas: 1, ValorTotalVendas: 8000},
	}

	buf, err := services.ExportRankingXLSX(standings)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Ranking", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Posição", header)

	nome, err := f.GetCellValue("Ranking", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Vendas Sul", nome)

	pontos, err := f.GetCellValue("Ranking", "C3")
	require.NoError(t, err)
	assert.Equal(t, "30", pontos)
}

func TestExportRankingXLSXEmpty(t *testing.T) {
	buf, err := services.ExportRankingXLSX(nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
