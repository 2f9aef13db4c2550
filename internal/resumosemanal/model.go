// internal/resumosemanal/model.go
package resumosemanal

import (
	"time"

	"gorm.io/gorm"
)

// ResumoSemanal representa a atividade financeira de um motorista numa
// semana ISO. O valor líquido é derivado dos restantes campos e recalculado
// em todas as escritas; nunca é aceite do exterior.
type ResumoSemanal struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ParceiroID    uint   `gorm:"not null;index:idx_resumo_periodo" json:"parceiroId"`
	MotoristaID   uint   `gorm:"not null;index" json:"motoristaId"`
	MotoristaNome string `gorm:"size:255" json:"motoristaNome"`

	Semana int `gorm:"not null;index:idx_resumo_periodo" json:"semana"`
	Ano    int `gorm:"not null;index:idx_resumo_periodo" json:"ano"`

	// Ganhos
	GanhosUber    float64 `gorm:"not null;default:0" json:"ganhosUber"`
	UberPortagens float64 `gorm:"not null;default:0" json:"uberPortagens"`
	GanhosBolt    float64 `gorm:"not null;default:0" json:"ganhosBolt"`

	// Custos
	ViaVerde             float64 `gorm:"not null;default:0" json:"viaVerde"`
	Combustivel          float64 `gorm:"not null;default:0" json:"combustivel"`
	CarregamentoEletrico float64 `gorm:"not null;default:0" json:"carregamentoEletrico"`
	AluguerVeiculo       float64 `gorm:"not null;default:0" json:"aluguerVeiculo"`
	Extras               float64 `gorm:"not null;default:0" json:"extras"`

	// Derivado; negativo significa dívida do motorista à frota.
	ValorLiquido float64 `gorm:"not null;default:0" json:"valorLiquido"`

	Status Status `gorm:"size:50;not null;default:'pendente';index" json:"status"`

	// Documentos guardados em disco (caminhos relativos a UPLOAD_DIR).
	Recibo       string `gorm:"size:255" json:"recibo"`
	Comprovativo string `gorm:"size:255" json:"comprovativo"`

	DataLiquidacao *time.Time `json:"dataLiquidacao"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ResumoSemanal{})
}
