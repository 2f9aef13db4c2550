package veiculo

import "gorm.io/gorm"

// Repository encapsula operações de banco para Veiculo.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(v *Veiculo) error {
	return r.DB.Create(v).Error
}

func (r *Repository) FindByID(id uint) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListByParceiro(parceiroID uint) ([]Veiculo, error) {
	var veiculos []Veiculo
	err := r.DB.Where("parceiro_id = ?", parceiroID).Order("matricula ASC").Find(&veiculos).Error
	return veiculos, err
}

func (r *Repository) Update(v *Veiculo) error {
	return r.DB.Save(v).Error
}

func (r *Repository) Delete(id uint) error {
	res := r.DB.Delete(&Veiculo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AtribuirMotorista liga (ou desliga, com nil) um motorista ao veículo.
func (r *Repository) AtribuirMotorista(id uint, motoristaID *uint) error {
	return r.DB.Model(&Veiculo{}).Where("id = ?", id).Update("motorista_id", motoristaID).Error
}
