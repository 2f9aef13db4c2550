// internal/comissao/model.go
package comissao

import (
	"time"

	"gorm.io/gorm"
)

// EscalaComissao é uma escala nomeada de escalões de comissão por montante
// faturado. Cada parceiro usa uma escala; os escalões são ordenados e
// contíguos (invariante garantido na escrita, ver ValidarNiveis).
type EscalaComissao struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nome      string         `gorm:"size:100;not null" json:"nome"`
	Ativa     bool           `gorm:"not null;default:true" json:"ativa"`
	Niveis    []EscalaNivel  `gorm:"foreignKey:EscalaID;constraint:OnDelete:CASCADE" json:"niveis"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// EscalaNivel é um escalão [valor_minimo, valor_maximo) com a percentagem
// base aplicada a montantes dentro do intervalo. ValorMaximo nil marca o
// escalão ilimitado, obrigatoriamente o último.
type EscalaNivel struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	EscalaID    uint     `gorm:"not null;index" json:"escalaId"`
	Nome        string   `gorm:"size:100" json:"nome"`
	Ordem       int      `gorm:"not null" json:"ordem"`
	ValorMinimo float64  `gorm:"not null;default:0" json:"valorMinimo"`
	ValorMaximo *float64 `json:"valorMaximo"`
	Percentagem float64  `gorm:"not null;default:0" json:"percentagem"`
}

// NivelClassificacao é um nível de antiguidade/comportamento do motorista.
// O bónus soma-se à percentagem base do escalão (aditivo, não composto).
type NivelClassificacao struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nivel            int       `gorm:"not null;uniqueIndex" json:"nivel"`
	Nome             string    `gorm:"size:100;not null" json:"nome"`
	MesesMinimos     int       `gorm:"not null;default:0" json:"mesesMinimos"`
	PontuacaoMinima  float64   `gorm:"not null;default:0" json:"pontuacaoMinima"` // 0–100
	BonusPercentagem float64   `gorm:"not null;default:0" json:"bonusPercentagem"`
	Icone            string    `gorm:"size:50" json:"icone"`
	Cor              string    `gorm:"size:20" json:"cor"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EscalaComissao{}, &EscalaNivel{}, &NivelClassificacao{})
}
