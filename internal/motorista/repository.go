package motorista

import "gorm.io/gorm"

// Repository encapsula operações de banco para Motorista.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Motorista) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Motorista, error) {
	var m Motorista
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListByParceiro(parceiroID uint) ([]Motorista, error) {
	var motoristas []Motorista
	err := r.DB.Where("parceiro_id = ?", parceiroID).Order("nome ASC").Find(&motoristas).Error
	return motoristas, err
}

func (r *Repository) Update(m *Motorista) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) error {
	res := r.DB.Delete(&Motorista{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
