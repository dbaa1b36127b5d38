package models

import "time"

// Equipe represents a sales team competing in the workshop
type Equipe struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Nome        string    `gorm:"type:varchar(100);not null" json:"nome"`
	Codigo      string    `gorm:"type:varchar(20);unique;not null" json:"codigo"`
	Responsavel string    `gorm:"type:varchar(100);not null;default:''" json:"responsavel"`
	Ativo       bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt   time.Time `gorm:"column:data_criacao" json:"data_criacao"`
}
