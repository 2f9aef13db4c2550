package parceiro

// Alerta é um aviso operacional mostrado no painel do parceiro.
type Alerta struct {
	Tipo     string `json:"tipo"` // "resumos_pendentes", "liquido_negativo", "contrato_a_terminar"
	Mensagem string `json:"mensagem"`
	Nivel    string `json:"nivel"` // "info", "aviso", "critico"
}

// ResumoParceiroDTO agrega os principais números do tenant para o painel.
type ResumoParceiroDTO struct {
	ID               uint   `json:"id"`
	Nome             string `json:"nome"`
	Email            string `json:"email"`
	NIF              string `json:"nif"`
	Telefone         string `json:"telefone"`
	Logo             string `json:"logo"`
	TotalVeiculos    int64  `json:"totalVeiculos"`
	TotalMotoristas  int64  `json:"totalMotoristas"`
	ResumosPendentes int64  `json:"resumosPendentes"`
}
