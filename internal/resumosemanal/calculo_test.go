package resumosemanal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularLiquido(t *testing.T) {
	tests := []struct {
		name   string
		resumo ResumoSemanal
		quer   float64
	}{
		{
			name: "semana completa",
			resumo: ResumoSemanal{
				GanhosUber:           450.50,
				UberPortagens:        23.40,
				GanhosBolt:           310.10,
				ViaVerde:             23.40,
				Combustivel:          120,
				CarregamentoEletrico: 15.60,
				AluguerVeiculo:       250,
				Extras:               10,
			},
			quer: 365.00,
		},
		{
			name:   "campos ausentes valem zero",
			resumo: ResumoSemanal{GanhosUber: 100},
			quer:   100,
		},
		{
			name:   "registo vazio",
			resumo: ResumoSemanal{},
			quer:   0,
		},
		{
			name: "líquido negativo é dívida do motorista",
			resumo: ResumoSemanal{
				GanhosUber:     100,
				AluguerVeiculo: 250,
			},
			quer: -150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.quer, CalcularLiquido(&tt.resumo), 1e-9)
		})
	}
}

func TestCalcularLiquidoEGanhosMenosCustos(t *testing.T) {
	// propriedade: para entradas não negativas, liquido = soma(ganhos) - soma(custos)
	r := ResumoSemanal{
		GanhosUber: 1, UberPortagens: 2, GanhosBolt: 3,
		ViaVerde: 4, Combustivel: 5, CarregamentoEletrico: 6, AluguerVeiculo: 7, Extras: 8,
	}
	ganhos := r.GanhosUber + r.UberPortagens + r.GanhosBolt
	custos := r.ViaVerde + r.Combustivel + r.CarregamentoEletrico + r.AluguerVeiculo + r.Extras
	assert.InDelta(t, ganhos-custos, CalcularLiquido(&r), 1e-9)
}

func TestArredondar2(t *testing.T) {
	assert.Equal(t, 10.56, Arredondar2(10.555))
	assert.Equal(t, -3.33, Arredondar2(-3.333))
	assert.Equal(t, 0.0, Arredondar2(0))
}

func TestAgregarSobreSubconjuntoFiltrado(t *testing.T) {
	registos := []ResumoSemanal{
		{GanhosUber: 100, Combustivel: 30, Status: StatusPendente},
		{GanhosBolt: 200, AluguerVeiculo: 50, Status: StatusAprovado},
		{GanhosUber: 50, Extras: 80, Status: StatusPendente},
	}

	todos := Agregar(registos)
	assert.Equal(t, 3, todos.Registos)
	assert.InDelta(t, 350, todos.TotalGanhos, 1e-9)
	assert.InDelta(t, 160, todos.TotalCustos, 1e-9)
	assert.InDelta(t, 190, todos.TotalLiquido, 1e-9)

	pendentes := Agregar(FiltrarPorStatus(registos, string(StatusPendente)))
	assert.Equal(t, 2, pendentes.Registos)
	assert.InDelta(t, 40, pendentes.TotalLiquido, 1e-9) // 70 + (-30)
}
