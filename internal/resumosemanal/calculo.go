// internal/resumosemanal/calculo.go
package resumosemanal

import "math"

// CalcularLiquido aplica a fórmula canónica do acerto semanal:
//
//	liquido = ganhos_uber + uber_portagens + ganhos_bolt
//	        − via_verde − combustivel − carregamento_eletrico
//	        − aluguer_veiculo − extras
//
// Campos ausentes no JSON chegam aqui como zero, por isso a fórmula nunca
// falha com registos incompletos. O arredondamento fica para a camada de
// apresentação (Arredondar2); aqui preserva-se a precisão total.
func CalcularLiquido(r *ResumoSemanal) float64 {
	ganhos := r.GanhosUber + r.UberPortagens + r.GanhosBolt
	custos := r.ViaVerde + r.Combustivel + r.CarregamentoEletrico + r.AluguerVeiculo + r.Extras
	return ganhos - custos
}

// Arredondar2 arredonda um montante a duas casas decimais (cêntimos).
// Usar apenas em saídas para o utilizador (export, agregados de resposta).
func Arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Agregado resume um conjunto de registos: contagem e somas de ganhos,
// custos e líquido. Calculado sempre sobre o subconjunto já filtrado.
type Agregado struct {
	Registos     int     `json:"registos"`
	TotalGanhos  float64 `json:"totalGanhos"`
	TotalCustos  float64 `json:"totalCustos"`
	TotalLiquido float64 `json:"totalLiquido"`
}

// Agregar soma os registos recebidos. Devolve valores arredondados a
// cêntimos porque o agregado só existe para apresentação.
func Agregar(registos []ResumoSemanal) Agregado {
	var a Agregado
	for i := range registos {
		r := &registos[i]
		a.Registos++
		a.TotalGanhos += r.GanhosUber + r.UberPortagens + r.GanhosBolt
		a.TotalCustos += r.ViaVerde + r.Combustivel + r.CarregamentoEletrico + r.AluguerVeiculo + r.Extras
		a.TotalLiquido += CalcularLiquido(r)
	}
	a.TotalGanhos = Arredondar2(a.TotalGanhos)
	a.TotalCustos = Arredondar2(a.TotalCustos)
	a.TotalLiquido = Arredondar2(a.TotalLiquido)
	return a
}
