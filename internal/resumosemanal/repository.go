// internal/resumosemanal/repository.go
package resumosemanal

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados dos resumos semanais.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= CRUD básico ========================= */

// Create insere um resumo, recalculando o líquido antes de gravar.
func (r *Repository) Create(resumo *ResumoSemanal) error {
	resumo.ValorLiquido = CalcularLiquido(resumo)
	if resumo.Status == "" {
		resumo.Status = StatusPendente
	}
	return r.DB.Create(resumo).Error
}

// FindByID busca um resumo pelo ID.
func (r *Repository) FindByID(id uint) (*ResumoSemanal, error) {
	var resumo ResumoSemanal
	if err := r.DB.First(&resumo, id).Error; err != nil {
		return nil, err
	}
	return &resumo, nil
}

// Update grava todos os campos de um resumo, recalculando o líquido.
func (r *Repository) Update(resumo *ResumoSemanal) error {
	resumo.ValorLiquido = CalcularLiquido(resumo)
	return r.DB.Save(resumo).Error
}

/* ========================= Listagens filtradas ========================= */

// ListByPeriodo devolve os resumos de um parceiro para (semana, ano),
// opcionalmente filtrados por status. O filtro "todos" (ou vazio) devolve
// o conjunto completo.
func (r *Repository) ListByPeriodo(parceiroID uint, semana, ano int, status string) ([]ResumoSemanal, error) {
	q := r.DB.
		Where("parceiro_id = ? AND semana = ? AND ano = ?", parceiroID, semana, ano).
		Order("motorista_nome ASC")
	if status != "" && status != StatusTodos {
		q = q.Where("status = ?", status)
	}
	// slice não-nil: uma semana vazia serializa como [] e não como null
	resumos := make([]ResumoSemanal, 0)
	err := q.Find(&resumos).Error
	return resumos, err
}

// ListByMotorista devolve o histórico de um motorista, do mais recente
// para o mais antigo.
func (r *Repository) ListByMotorista(motoristaID uint) ([]ResumoSemanal, error) {
	var resumos []ResumoSemanal
	err := r.DB.
		Where("motorista_id = ?", motoristaID).
		Order("ano DESC, semana DESC").
		Find(&resumos).Error
	return resumos, err
}

// ContagemPorStatus devolve, para um período, o número de registos e a soma
// dos líquidos agrupados por status.
type ContagemStatus struct {
	Status       Status  `json:"status"`
	Registos     int64   `json:"registos"`
	TotalLiquido float64 `json:"totalLiquido"`
}

func (r *Repository) ContagemPorStatus(parceiroID uint, semana, ano int) ([]ContagemStatus, error) {
	var contagens []ContagemStatus
	err := r.DB.Model(&ResumoSemanal{}).
		Select("status, COUNT(*) AS registos, COALESCE(SUM(valor_liquido), 0) AS total_liquido").
		Where("parceiro_id = ? AND semana = ? AND ano = ?", parceiroID, semana, ano).
		Group("status").
		Scan(&contagens).Error
	return contagens, err
}

// PendentesDoParceiro conta os resumos ainda não liquidados de um parceiro.
func (r *Repository) PendentesDoParceiro(parceiroID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&ResumoSemanal{}).
		Where("parceiro_id = ? AND status <> ?", parceiroID, StatusLiquidado).
		Count(&n).Error
	return n, err
}

// NegativosDoParceiro devolve os resumos com líquido negativo ainda abertos
// (dívidas de motoristas à frota).
func (r *Repository) NegativosDoParceiro(parceiroID uint) ([]ResumoSemanal, error) {
	var resumos []ResumoSemanal
	err := r.DB.
		Where("parceiro_id = ? AND valor_liquido < 0 AND status <> ?", parceiroID, StatusLiquidado).
		Order("valor_liquido ASC").
		Find(&resumos).Error
	return resumos, err
}

/* ========================= Ciclo de vida ========================= */

// UpdateStatus valida e aplica uma transição, fixando a data de liquidação
// quando o destino é "liquidado".
func (r *Repository) UpdateStatus(id uint, destino Status, quando time.Time) (*ResumoSemanal, error) {
	resumo, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := ValidarTransicao(resumo, destino); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": destino}
	if destino == StatusLiquidado {
		updates["data_liquidacao"] = &quando
	}
	if err := r.DB.Model(&ResumoSemanal{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// AnexarRecibo grava o caminho do recibo e aplica o avanço automático
// aprovado → aguardar_recibo na mesma transação.
func (r *Repository) AnexarRecibo(id uint, nomeFicheiro string) (*ResumoSemanal, error) {
	resumo, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	tx := r.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	updates := map[string]interface{}{
		"recibo": nomeFicheiro,
		"status": AposUploadRecibo(resumo.Status),
	}
	if err := tx.Model(&ResumoSemanal{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	return r.FindByID(id)
}

// AnexarComprovativo grava o caminho do comprovativo de pagamento.
func (r *Repository) AnexarComprovativo(id uint, nomeFicheiro string) (*ResumoSemanal, error) {
	if err := r.DB.Model(&ResumoSemanal{}).
		Where("id = ?", id).
		Update("comprovativo", nomeFicheiro).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
