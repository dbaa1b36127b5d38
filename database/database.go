package database

import (
	"fmt"
	"log"

	"acelerador/config"
	"acelerador/models"
	"acelerador/utils"
	"acelerador/workflow"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var AdminUsername = "admin"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and seeds
// the singleton rows the workflow depends on
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=America/Sao_Paulo",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Usuario{},
		&models.Equipe{},
		&models.Proposta{},
		&models.Venda{},
		&models.StatusSistema{},
		&models.ConfiguracaoPontuacao{},
		&models.Ranking{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate seeds the default administrator, the system-status singleton and
// the scoring configuration if the database is empty
func Populate() {
	var countUser int64
	DB.Model(&models.Usuario{}).Count(&countUser)
	if countUser == 0 {
		password := DefaultPassword
		if config.DefaultPassword != "" {
			password = config.DefaultPassword
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		admin := models.Usuario{
			Username: AdminUsername,
			Password: hashed,
			Nivel:    string(workflow.RoleAdministrador),
			Ativo:    true,
		}
		DB.Create(&admin)
		log.Println("Default user admin created")
	}

	var countStatus int64
	DB.Model(&models.StatusSistema{}).Count(&countStatus)
	if countStatus == 0 {
		status := models.StatusSistema{StatusAtual: string(workflow.PhasePreWorkshop)}
		DB.Create(&status)
		log.Println("System status initialized at pre_workshop")
	}

	var countConfig int64
	DB.Model(&models.ConfiguracaoPontuacao{}).Count(&countConfig)
	if countConfig == 0 {
		cfg := models.ConfiguracaoPontuacao{PontosPropostaValidada: 1, PontosPorProduto: 1}
		DB.Create(&cfg)
		log.Println("Default scoring configuration created")
	}
}

// CurrentPhase reads the global phase from the database. It is read per
// request and never cached: a failed read yields PhaseUnknown, on which every
// gate predicate fails closed.
func CurrentPhase() (workflow.Phase, error) {
	var status models.StatusSistema
	if err := DB.First(&status).Error; err != nil {
		return workflow.PhaseUnknown, err
	}
	phase := workflow.ParsePhase(status.StatusAtual)
	if !phase.Valid() {
		return workflow.PhaseUnknown, fmt.Errorf("unrecognized system status %q", status.StatusAtual)
	}
	return phase, nil
}

// GetScoringConfig returns the singleton scoring configuration
func GetScoringConfig() (*models.ConfiguracaoPontuacao, error) {
	var cfg models.ConfiguracaoPontuacao
	if err := DB.First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
