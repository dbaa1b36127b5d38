package models

import "time"

// Ranking is a team's standing recomputed from validated proposals and sales
type Ranking struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	EquipeID string  `gorm:"type:uuid;not null;column:equipe_id" json:"equipe_id"`
	Equipe   *Equipe `gorm:"foreignKey:EquipeID" json:"equipe"`

	EstadoSistema       string    `gorm:"type:varchar(20);not null;column:estado_sistema" json:"estado_sistema"`
	Posicao             int       `gorm:"not null" json:"posicao"`
	Pontos              int       `gorm:"not null;default:0" json:"pontos"`
	PropostasEnviadas   int       `gorm:"not null;default:0;column:propostas_enviadas" json:"propostas_enviadas"`
	PropostasValidadas  int       `gorm:"not null;default:0;column:propostas_validadas" json:"propostas_validadas"`
	VendasConcretizadas int       `gorm:"not null;default:0;column:vendas_concretizadas" json:"vendas_concretizadas"`
	ValorTotalVendas    float64   `gorm:"type:numeric(15,2);not null;default:0;column:valor_total_vendas" json:"valor_total_vendas"`
	DataAtualizacao     time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`
}
