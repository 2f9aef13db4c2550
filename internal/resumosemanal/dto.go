// internal/resumosemanal/dto.go
package resumosemanal

// CreateResumoDTO é o payload de ingestão de um resumo semanal.
// Todos os montantes são opcionais; campo ausente vale 0.
type CreateResumoDTO struct {
	MotoristaID   uint   `json:"motoristaId"`
	MotoristaNome string `json:"motoristaNome"`
	Semana        int    `json:"semana"`
	Ano           int    `json:"ano"`

	GanhosUber    float64 `json:"ganhosUber"`
	UberPortagens float64 `json:"uberPortagens"`
	GanhosBolt    float64 `json:"ganhosBolt"`

	ViaVerde             float64 `json:"viaVerde"`
	Combustivel          float64 `json:"combustivel"`
	CarregamentoEletrico float64 `json:"carregamentoEletrico"`
	AluguerVeiculo       float64 `json:"aluguerVeiculo"`
	Extras               float64 `json:"extras"`
}

// ListaResumosDTO é a resposta de listagem: registos do período já
// filtrados, o agregado calculado só sobre esse subconjunto e o intervalo
// de datas da semana pedida.
type ListaResumosDTO struct {
	Semana   int             `json:"semana"`
	Ano      int             `json:"ano"`
	Inicio   string          `json:"inicio"`
	Fim      string          `json:"fim"`
	Registos []ResumoSemanal `json:"registos"`
	Agregado Agregado        `json:"agregado"`
}
