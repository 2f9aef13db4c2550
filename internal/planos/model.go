package planos

import (
	"time"

	"gorm.io/gorm"
)

// PlanoGestao é um plano de subscrição da plataforma: mensalidade base mais
// um preço por veículo gerido, com limite opcional de frota.
type PlanoGestao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Nome            string    `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	MensalidadeBase float64   `gorm:"not null;default:0" json:"mensalidadeBase"`
	PrecoPorVeiculo float64   `gorm:"not null;default:0" json:"precoPorVeiculo"`
	MaxVeiculos     *int      `json:"maxVeiculos"` // nil = sem limite
	Ativo           bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MensalidadeFrota calcula o custo mensal de um parceiro com n veículos.
func (p *PlanoGestao) MensalidadeFrota(veiculos int) float64 {
	if veiculos < 0 {
		veiculos = 0
	}
	return p.MensalidadeBase + p.PrecoPorVeiculo*float64(veiculos)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PlanoGestao{})
}
