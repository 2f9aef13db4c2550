package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarPorParceiro(db *gorm.DB, parceiroID uint) ([]Contrato, error)
	ListarPorMotorista(db *gorm.DB, motoristaID uint) ([]Contrato, error)
	Atualizar(db *gorm.DB, c *Contrato) error
	Deletar(db *gorm.DB, id uint) error

	BuscarTemplate(db *gorm.DB, tipo TipoContrato) (*ContratoTemplate, error)
	GravarTemplate(db *gorm.DB, t *ContratoTemplate) error
	ListarTemplates(db *gorm.DB) ([]ContratoTemplate, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var contrato Contrato
	err := db.First(&contrato, id).Error
	return &contrato, err
}

func (r *repositoryImpl) ListarPorParceiro(db *gorm.DB, parceiroID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("parceiro_id = ?", parceiroID).Order("data_inicio DESC").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorMotorista(db *gorm.DB, motoristaID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("motorista_id = ?", motoristaID).Order("data_inicio DESC").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}

func (r *repositoryImpl) BuscarTemplate(db *gorm.DB, tipo TipoContrato) (*ContratoTemplate, error) {
	var t ContratoTemplate
	err := db.Where("tipo = ?", tipo).First(&t).Error
	return &t, err
}

// GravarTemplate cria ou substitui a template do tipo (uma por tipo).
func (r *repositoryImpl) GravarTemplate(db *gorm.DB, t *ContratoTemplate) error {
	var existente ContratoTemplate
	err := db.Where("tipo = ?", t.Tipo).First(&existente).Error
	if err == nil {
		t.ID = existente.ID
		t.CreatedAt = existente.CreatedAt
		return db.Save(t).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(t).Error
}

func (r *repositoryImpl) ListarTemplates(db *gorm.DB) ([]ContratoTemplate, error) {
	var templates []ContratoTemplate
	err := db.Order("tipo ASC").Find(&templates).Error
	return templates, err
}
