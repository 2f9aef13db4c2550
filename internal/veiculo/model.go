package veiculo

import (
	"gorm.io/gorm"
)

// Veiculo é uma viatura da frota de um parceiro.
type Veiculo struct {
	gorm.Model

	ParceiroID  uint  `gorm:"not null;index" json:"parceiroId"`
	MotoristaID *uint `gorm:"index" json:"motoristaId"` // nil = sem motorista atribuído

	Matricula   string `gorm:"size:20;not null;uniqueIndex" json:"matricula"`
	Marca       string `gorm:"size:100" json:"marca"`
	Modelo      string `gorm:"size:100" json:"modelo"`
	Ano         int    `json:"ano"`
	Combustivel string `gorm:"size:50" json:"combustivel"` // "gasolina", "gasoleo", "eletrico", "hibrido"
	Estado      string `gorm:"size:50;default:'ativo'" json:"estado"`

	// Custos fixos usados nos acertos semanais
	AluguerSemanal float64 `gorm:"not null;default:0" json:"aluguerSemanal"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Veiculo{})
}
