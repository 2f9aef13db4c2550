package planos

import "gorm.io/gorm"

// Repository encapsula operações de banco para PlanoGestao.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *PlanoGestao) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*PlanoGestao, error) {
	var p PlanoGestao
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListAll(apenasAtivos bool) ([]PlanoGestao, error) {
	q := r.DB.Order("mensalidade_base ASC")
	if apenasAtivos {
		q = q.Where("ativo = ?", true)
	}
	var lista []PlanoGestao
	err := q.Find(&lista).Error
	return lista, err
}

func (r *Repository) Update(p *PlanoGestao) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(id uint) error {
	res := r.DB.Delete(&PlanoGestao{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
