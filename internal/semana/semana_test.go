package semana

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeroSegueRegraISO(t *testing.T) {
	tests := []struct {
		name   string
		data   time.Time
		semana int
		ano    int
	}{
		{
			name:   "primeiro de janeiro pode pertencer ao ano ISO anterior",
			data:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
			semana: 53,
			ano:    2020,
		},
		{
			name:   "fim de dezembro pode pertencer ao ano ISO seguinte",
			data:   time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			semana: 1,
			ano:    2025,
		},
		{
			name:   "meio do ano coincide com o ano civil",
			data:   time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC),
			semana: 25,
			ano:    2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, a := Numero(tt.data)
			assert.Equal(t, tt.semana, s)
			assert.Equal(t, tt.ano, a)
		})
	}
}

func TestSemanasPorAno(t *testing.T) {
	// 2020 e 2026 têm 53 semanas ISO; 2023, 2024 e 2025 têm 52.
	assert.Equal(t, 53, Semanas(2020))
	assert.Equal(t, 53, Semanas(2026))
	assert.Equal(t, 52, Semanas(2023))
	assert.Equal(t, 52, Semanas(2024))
	assert.Equal(t, 52, Semanas(2025))
}

func TestIntervaloTemSeteDiasEComecaNumaSegunda(t *testing.T) {
	for _, ano := range []int{2020, 2024, 2025} {
		for _, sem := range []int{1, 26, Semanas(ano)} {
			inicio, fim := Intervalo(sem, ano)
			require.Equal(t, time.Monday, inicio.Weekday())
			require.Equal(t, time.Sunday, fim.Weekday())
			require.Equal(t, 6*24*time.Hour, fim.Sub(inicio))
		}
	}
}

func TestIntervaloEInversoDeNumero(t *testing.T) {
	for _, ano := range []int{2020, 2021, 2024, 2025} {
		for sem := 1; sem <= Semanas(ano); sem++ {
			inicio, fim := Intervalo(sem, ano)
			for _, d := range []time.Time{inicio, fim} {
				s, a := Numero(d)
				require.Equal(t, sem, s, "data %s", d)
				require.Equal(t, ano, a, "data %s", d)
			}
		}
	}
}

func TestNavegacaoComViragemDeAno(t *testing.T) {
	// semana 1 para trás cai na última semana do ano anterior (52 ou 53)
	s, a := Anterior(1, 2021)
	assert.Equal(t, 53, s)
	assert.Equal(t, 2020, a)

	s, a = Anterior(1, 2025)
	assert.Equal(t, 52, s)
	assert.Equal(t, 2024, a)

	// última semana para a frente cai na semana 1 do ano seguinte
	s, a = Proxima(53, 2020)
	assert.Equal(t, 1, s)
	assert.Equal(t, 2021, a)

	s, a = Proxima(52, 2024)
	assert.Equal(t, 1, s)
	assert.Equal(t, 2025, a)

	// navegação normal não mexe no ano
	s, a = Proxima(10, 2025)
	assert.Equal(t, 11, s)
	assert.Equal(t, 2025, a)
}

func TestAnteriorEProximaSaoInversas(t *testing.T) {
	for _, caso := range [][2]int{{1, 2021}, {30, 2025}, {52, 2024}, {53, 2020}} {
		s, a := Proxima(Anterior(caso[0], caso[1]))
		require.Equal(t, caso[0], s)
		require.Equal(t, caso[1], a)
	}
}

func TestValida(t *testing.T) {
	assert.True(t, Valida(1, 2025))
	assert.True(t, Valida(52, 2025))
	assert.True(t, Valida(53, 2020))
	assert.False(t, Valida(53, 2025))
	assert.False(t, Valida(0, 2025))
	assert.False(t, Valida(-3, 2025))

	// um ano em falta (zero) ou negativo nunca valida — um registo chaveado
	// em (semana, 0) não apareceria em nenhuma listagem
	assert.False(t, Valida(5, 0))
	assert.False(t, Valida(1, 0))
	assert.False(t, Valida(5, -1))
}
