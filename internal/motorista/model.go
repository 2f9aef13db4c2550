package motorista

import (
	"time"

	"gorm.io/gorm"
)

// Motorista é um condutor TVDE ao serviço de um parceiro.
type Motorista struct {
	gorm.Model

	ParceiroID uint  `gorm:"not null;index" json:"parceiroId"`
	VeiculoID  *uint `gorm:"index" json:"veiculoId"`

	Nome     string `gorm:"size:255;not null" json:"nome"`
	Email    string `gorm:"size:255;uniqueIndex" json:"email"`
	Telefone string `gorm:"size:20" json:"telefone"`
	NIF      string `gorm:"size:20" json:"nif"`
	Foto     string `gorm:"size:255" json:"foto"`

	// Entradas da classificação: antiguidade e cuidado com o veículo (0–100).
	DataInicio       time.Time `json:"dataInicio"`
	PontuacaoCuidado float64   `gorm:"not null;default:0" json:"pontuacaoCuidado"`

	Ativo bool `gorm:"not null;default:true" json:"ativo"`
}

// MesesAntiguidade devolve a antiguidade completa em meses numa data.
func (m *Motorista) MesesAntiguidade(agora time.Time) int {
	if m.DataInicio.IsZero() || agora.Before(m.DataInicio) {
		return 0
	}
	meses := (agora.Year()-m.DataInicio.Year())*12 + int(agora.Month()) - int(m.DataInicio.Month())
	if agora.Day() < m.DataInicio.Day() {
		meses--
	}
	if meses < 0 {
		return 0
	}
	return meses
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motorista{})
}
