package models

import "time"

// Usuario represents a login identity with an access level (administrador, gestor, banca or equipe)
type Usuario struct {
	ID            string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Username      string     `gorm:"type:varchar(100);unique;not null" json:"username"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	Nivel         string     `gorm:"type:varchar(20);not null" json:"nivel"`
	EquipeID      *string    `gorm:"type:uuid;column:equipe_id" json:"equipe_id"`
	Equipe        *Equipe    `gorm:"foreignKey:EquipeID" json:"equipe"`
	Ativo         bool       `gorm:"not null;default:true" json:"ativo"`
	LastConnected *time.Time `json:"last_connected"`
	CreatedAt     time.Time  `gorm:"column:data_criacao" json:"data_criacao"`
}
