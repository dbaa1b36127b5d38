package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportRankingXLSX renders the current standings as a spreadsheet for the
// banca to download
func ExportRankingXLSX(standings []TeamStanding) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ranking"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Posição", "Equipe", "Pontos", "Propostas Enviadas", "Propostas Validadas", "Vendas Concretizadas", "Valor Total Vendas"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, s := range standings {
		values := []interface{}{s.Posicao, s.EquipeNome, s.Pontos, s.PropostasEnviadas, s.PropostasValidadas, s.VendasConcretizadas, s.ValorTotalVendas}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render ranking spreadsheet: %w", err)
	}
	return buf, nil
}
