package parceiro

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuNIF(db *gorm.DB, valor string) (*Parceiro, error)
	Salvar(db *gorm.DB, p *Parceiro) error
	BuscarPorID(db *gorm.DB, id uint) (*Parceiro, error)
	ListarTodos(db *gorm.DB) ([]Parceiro, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Parceiro) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por NIF, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuNIF(db *gorm.DB, valor string) (*Parceiro, error) {
	var p Parceiro

	if err := db.Where("email = ?", valor).First(&p).Error; err == nil {
		return &p, nil
	}
	if err := db.Where("nif = ?", valor).First(&p).Error; err == nil {
		return &p, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Parceiro) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Parceiro, error) {
	var p Parceiro
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Parceiro, error) {
	var parceiros []Parceiro
	err := db.Find(&parceiros).Error
	return parceiros, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Parceiro) error {
	var existente Parceiro
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.NIF = novosDados.NIF
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Logo = novosDados.Logo

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Parceiro{}, id).Error
}
