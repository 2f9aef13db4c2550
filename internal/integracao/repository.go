package integracao

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para configurações de integração.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByProvider devolve a configuração do provider. Se nunca foi gravada,
// devolve uma Config vazia com o provider preenchido, sem erro — o frontend
// trata o formulário em branco como "por configurar".
func (r *Repository) FindByProvider(p Provider) (*Config, error) {
	if err := ValidarProvider(p); err != nil {
		return nil, err
	}
	var cfg Config
	err := r.DB.Where("provider = ?", p).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Config{Provider: p}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save grava a configuração do provider (upsert por provider).
func (r *Repository) Save(cfg *Config) error {
	if err := ValidarProvider(cfg.Provider); err != nil {
		return err
	}
	var existente Config
	err := r.DB.Where("provider = ?", cfg.Provider).First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(cfg).Error
	}
	if err != nil {
		return err
	}
	cfg.ID = existente.ID
	cfg.CreatedAt = existente.CreatedAt
	return r.DB.Save(cfg).Error
}

// RegistarTeste persiste o resultado do último teste de conectividade.
func (r *Repository) RegistarTeste(p Provider, ok bool, quando time.Time) error {
	return r.DB.Model(&Config{}).
		Where("provider = ?", p).
		Updates(map[string]interface{}{
			"ultimo_teste":    quando,
			"ultimo_teste_ok": ok,
		}).Error
}
