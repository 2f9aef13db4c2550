// internal/contrato/model.go
package contrato

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TipoContrato é a enumeração fixa de tipos de contrato motorista↔parceiro.
type TipoContrato string

const (
	TipoComissao      TipoContrato = "comissao"       // repartição percentual dos ganhos
	TipoAluguerFixo   TipoContrato = "aluguer_fixo"   // renda semanal fixa do veículo
	TipoEpocaSazonal  TipoContrato = "epoca_sazonal"  // renda com preço de época alta/baixa
	TipoCompraVeiculo TipoContrato = "compra_veiculo" // aquisição do veículo em prestações
)

var tiposValidos = map[TipoContrato]bool{
	TipoComissao:      true,
	TipoAluguerFixo:   true,
	TipoEpocaSazonal:  true,
	TipoCompraVeiculo: true,
}

var (
	// ErrTipoDesconhecido indica um tipo_contrato fora da enumeração.
	ErrTipoDesconhecido = errors.New("tipo de contrato desconhecido")
	// ErrReparticaoInvalida indica percentagens que não somam exatamente 100.
	ErrReparticaoInvalida = errors.New("percentagem do motorista e do parceiro devem somar exatamente 100")
)

// ContratoTemplate é a configuração nomeada dos campos específicos de cada
// tipo de contrato. Uma template por tipo; os contratos novos partem dela.
type ContratoTemplate struct {
	ID   uint         `gorm:"primaryKey" json:"id"`
	Tipo TipoContrato `gorm:"size:50;not null;uniqueIndex" json:"tipoContrato"`
	Nome string       `gorm:"size:100;not null" json:"nome"`

	Caucao float64 `gorm:"not null;default:0" json:"caucao"`

	// Preços sazonais (epoca_sazonal)
	PrecoEpocaAlta  float64 `gorm:"not null;default:0" json:"precoEpocaAlta"`
	PrecoEpocaBaixa float64 `gorm:"not null;default:0" json:"precoEpocaBaixa"`

	// Repartição (comissao) — invariante: soma exatamente 100
	PercentagemMotorista float64 `gorm:"not null;default:0" json:"percentagemMotorista"`
	PercentagemParceiro  float64 `gorm:"not null;default:0" json:"percentagemParceiro"`

	// Plano de compra (compra_veiculo) e aluguer fixo
	PrazoCompraMeses   int     `gorm:"not null;default:0" json:"prazoCompraMeses"`
	PrestacaoSemanal   float64 `gorm:"not null;default:0" json:"prestacaoSemanal"`
	AluguerSemanalFixo float64 `gorm:"not null;default:0" json:"aluguerSemanalFixo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validar aplica as regras de construção da template. A repartição do tipo
// comissão tem de fechar exatamente em 100 — 99 ou 101 são rejeitados.
func (t *ContratoTemplate) Validar() error {
	if !tiposValidos[t.Tipo] {
		return fmt.Errorf("%w: %q", ErrTipoDesconhecido, t.Tipo)
	}
	if t.Tipo == TipoComissao {
		if t.PercentagemMotorista+t.PercentagemParceiro != 100 {
			return ErrReparticaoInvalida
		}
	}
	return nil
}

// Contrato é um contrato celebrado entre o parceiro e um motorista,
// instanciado a partir da template do tipo respetivo.
type Contrato struct {
	gorm.Model

	ParceiroID  uint `gorm:"not null;index" json:"parceiroId"`
	MotoristaID uint `gorm:"not null;index" json:"motoristaId"`
	VeiculoID   uint `gorm:"index" json:"veiculoId"`

	Tipo       TipoContrato `gorm:"size:50;not null" json:"tipoContrato"`
	DataInicio time.Time    `json:"dataInicio"`
	DataFim    *time.Time   `json:"dataFim"`
	Ativo      bool         `gorm:"not null;default:true" json:"ativo"`

	// Valores acordados — cópia da template no momento da assinatura,
	// para o histórico não mudar quando a template muda.
	Caucao               float64 `gorm:"not null;default:0" json:"caucao"`
	PercentagemMotorista float64 `gorm:"not null;default:0" json:"percentagemMotorista"`
	PercentagemParceiro  float64 `gorm:"not null;default:0" json:"percentagemParceiro"`
	AluguerSemanal       float64 `gorm:"not null;default:0" json:"aluguerSemanal"`
	PrestacaoSemanal     float64 `gorm:"not null;default:0" json:"prestacaoSemanal"`

	Documento string `gorm:"size:255" json:"documento"` // contrato assinado, guardado no armazenamento
}

// Validar aplica as mesmas regras da template ao contrato instanciado.
func (c *Contrato) Validar() error {
	if !tiposValidos[c.Tipo] {
		return fmt.Errorf("%w: %q", ErrTipoDesconhecido, c.Tipo)
	}
	if c.Tipo == TipoComissao {
		if c.PercentagemMotorista+c.PercentagemParceiro != 100 {
			return ErrReparticaoInvalida
		}
	}
	return nil
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContratoTemplate{}, &Contrato{})
}
