package integracao

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Provider identifica a integração externa configurável.
type Provider string

const (
	ProviderIfthenpay Provider = "ifthenpay" // gateway de pagamentos
	ProviderMoloni    Provider = "moloni"    // faturação
)

var providersValidos = map[Provider]bool{
	ProviderIfthenpay: true,
	ProviderMoloni:    true,
}

// ErrProviderDesconhecido indica um provider fora da enumeração.
var ErrProviderDesconhecido = errors.New("provider de integração desconhecido")

// ValidarProvider verifica o segmento {provider} das rotas de integração.
func ValidarProvider(p Provider) error {
	if !providersValidos[p] {
		return fmt.Errorf("%w: %q", ErrProviderDesconhecido, p)
	}
	return nil
}

// Config guarda as credenciais e o estado de uma integração. Uma linha por
// provider; as chaves nunca saem no JSON de listagem mascaradas a zero —
// o handler decide o que expor.
type Config struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Provider Provider `gorm:"size:50;not null;uniqueIndex" json:"provider"`
	Ativa    bool     `gorm:"not null;default:false" json:"ativa"`

	// ifthenpay
	MbWayKey        string `gorm:"size:100" json:"mbWayKey,omitempty"`
	AntiPhishingKey string `gorm:"size:100" json:"antiPhishingKey,omitempty"`

	// moloni
	ClientID     string `gorm:"size:100" json:"clientId,omitempty"`
	ClientSecret string `gorm:"size:255" json:"clientSecret,omitempty"`
	EmpresaID    string `gorm:"size:100" json:"empresaId,omitempty"`

	// Resultado do último teste de conectividade
	UltimoTeste   *time.Time `json:"ultimoTeste"`
	UltimoTesteOK bool       `gorm:"not null;default:false" json:"ultimoTesteOk"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Config{})
}
