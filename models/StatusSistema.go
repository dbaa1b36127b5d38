package models

import "time"

// StatusSistema is the process-wide workflow phase. A single row exists;
// it is created at bootstrap and mutated only by administrators.
type StatusSistema struct {
	ID            string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	StatusAtual   string    `gorm:"type:varchar(20);not null;default:'pre_workshop';column:status_atual" json:"status_atual"`
	DataAlteracao time.Time `gorm:"column:data_alteracao;autoUpdateTime" json:"data_alteracao"`
	AlteradoPorID *string   `gorm:"type:uuid;column:alterado_por_id" json:"alterado_por_id"`
}
