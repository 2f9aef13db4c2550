package parceiro

import (
	"gorm.io/gorm"
)

// Parceiro é o tenant da plataforma: a empresa parceira de TVDE que detém
// veículos e motoristas e é cobrada pelo plano de gestão.
type Parceiro struct {
	gorm.Model
	Nome                  string `json:"nome"`
	NIF                   string `json:"nif" gorm:"unique"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Logo                  string `json:"logo"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`

	PlanoID *uint `json:"planoId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parceiro{})
}
