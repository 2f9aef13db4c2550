// internal/comissao/repository.go
package comissao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para escalas e classificação.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= Escalas ========================= */

// ListEscalas devolve todas as escalas com os escalões pré-carregados.
func (r *Repository) ListEscalas() ([]EscalaComissao, error) {
	var escalas []EscalaComissao
	err := r.DB.
		Preload("Niveis", func(db *gorm.DB) *gorm.DB {
			return db.Order("valor_minimo ASC")
		}).
		Find(&escalas).Error
	return escalas, err
}

// FindEscala busca uma escala pelo ID com os escalões ordenados.
func (r *Repository) FindEscala(id uint) (*EscalaComissao, error) {
	var escala EscalaComissao
	err := r.DB.
		Preload("Niveis", func(db *gorm.DB) *gorm.DB {
			return db.Order("valor_minimo ASC")
		}).
		First(&escala, id).Error
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

// CreateEscala insere uma escala nova, validando os escalões.
func (r *Repository) CreateEscala(escala *EscalaComissao) error {
	if err := ValidarNiveis(escala.Niveis); err != nil {
		return err
	}
	return r.DB.Create(escala).Error
}

// ReplaceNiveis substitui os escalões de uma escala de forma atómica,
// rejeitando listas que violem o invariante (contíguos, sem sobreposição,
// ilimitado só no fim).
func (r *Repository) ReplaceNiveis(escalaID uint, niveis []EscalaNivel) error {
	if err := ValidarNiveis(niveis); err != nil {
		return err
	}
	if _, err := r.FindEscala(escalaID); err != nil {
		return err
	}

	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("escala_id = ?", escalaID).Delete(&EscalaNivel{}).Error; err != nil {
		_ = tx.Rollback()
		return err
	}
	for i := range niveis {
		niveis[i].ID = 0
		niveis[i].EscalaID = escalaID
		niveis[i].Ordem = i
	}
	if err := tx.Create(&niveis).Error; err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// EscalaAtiva devolve a primeira escala ativa (a usada pelo simulador
// quando não é indicada escala).
func (r *Repository) EscalaAtiva() (*EscalaComissao, error) {
	var escala EscalaComissao
	err := r.DB.
		Preload("Niveis", func(db *gorm.DB) *gorm.DB {
			return db.Order("valor_minimo ASC")
		}).
		Where("ativa = ?", true).
		Order("id ASC").
		First(&escala).Error
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

/* ========================= Classificação ========================= */

// ListClassificacao devolve a configuração de níveis por ordem de nível.
func (r *Repository) ListClassificacao() ([]NivelClassificacao, error) {
	var niveis []NivelClassificacao
	err := r.DB.Order("nivel ASC").Find(&niveis).Error
	return niveis, err
}

// FindClassificacao busca um nível de classificação pelo número.
func (r *Repository) FindClassificacao(nivel int) (*NivelClassificacao, error) {
	var n NivelClassificacao
	if err := r.DB.Where("nivel = ?", nivel).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ReplaceClassificacao substitui a configuração completa de classificação.
func (r *Repository) ReplaceClassificacao(niveis []NivelClassificacao) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("1 = 1").Delete(&NivelClassificacao{}).Error; err != nil {
		_ = tx.Rollback()
		return err
	}
	if len(niveis) > 0 {
		for i := range niveis {
			niveis[i].ID = 0
		}
		if err := tx.Create(&niveis).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}
