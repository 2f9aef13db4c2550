package comissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func escalaExemplo() []EscalaNivel {
	return []EscalaNivel{
		{Nome: "Base", ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
		{Nome: "Avançado", ValorMinimo: 500, ValorMaximo: nil, Percentagem: 15},
	}
}

func TestEncontrarEscalaoEhTotalEDeterministico(t *testing.T) {
	niveis := escalaExemplo()

	tests := []struct {
		montante float64
		quer     float64
	}{
		{0, 10},
		{499.99, 10},
		{500, 15},
		{10000, 15},
	}
	for _, tt := range tests {
		esc, err := EncontrarEscalao(niveis, tt.montante)
		require.NoError(t, err, "montante %v", tt.montante)
		assert.Equal(t, tt.quer, esc.Percentagem, "montante %v", tt.montante)
	}
}

func TestEncontrarEscalaoFalhaExplicitamente(t *testing.T) {
	_, err := EncontrarEscalao(escalaExemplo(), -1)
	assert.ErrorIs(t, err, ErrSemEscalao)

	_, err = EncontrarEscalao(nil, 100)
	assert.ErrorIs(t, err, ErrSemEscalao)

	// escala sem escalão ilimitado deixa montantes altos descobertos
	limitada := []EscalaNivel{{ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10}}
	_, err = EncontrarEscalao(limitada, 500)
	assert.ErrorIs(t, err, ErrSemEscalao)
}

func TestAvaliarEhAditivoNaoComposto(t *testing.T) {
	niveis := []EscalaNivel{{Nome: "Único", ValorMinimo: 0, Percentagem: 10}}
	classificacao := &NivelClassificacao{Nivel: 2, BonusPercentagem: 5}

	res, err := Avaliar(niveis, classificacao, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 100, res.ValorComissaoBase, 1e-9)
	assert.InDelta(t, 50, res.ValorBonus, 1e-9) // bónus sobre o montante todo
	assert.InDelta(t, 150, res.ValorComissaoTotal, 1e-9)
	assert.InDelta(t, 15, res.PercentagemTotal, 1e-9)
}

func TestAvaliarSemClassificacao(t *testing.T) {
	res, err := Avaliar(escalaExemplo(), nil, 400)
	require.NoError(t, err)
	assert.InDelta(t, 40, res.ValorComissaoTotal, 1e-9)
	assert.Zero(t, res.BonusPercentagem)
}

func TestValidarNiveis(t *testing.T) {
	tests := []struct {
		name   string
		niveis []EscalaNivel
		valido bool
	}{
		{
			name:   "escala bem formada",
			niveis: escalaExemplo(),
			valido: true,
		},
		{
			name:   "lista vazia",
			niveis: nil,
			valido: false,
		},
		{
			name: "buraco entre escalões",
			niveis: []EscalaNivel{
				{ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
				{ValorMinimo: 600, Percentagem: 15},
			},
			valido: false,
		},
		{
			name: "sobreposição",
			niveis: []EscalaNivel{
				{ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
				{ValorMinimo: 400, Percentagem: 15},
			},
			valido: false,
		},
		{
			name: "ilimitado fora do fim",
			niveis: []EscalaNivel{
				{ValorMinimo: 0, Percentagem: 10},
				{ValorMinimo: 500, ValorMaximo: f(1000), Percentagem: 15},
			},
			valido: false,
		},
		{
			name: "intervalo vazio",
			niveis: []EscalaNivel{
				{ValorMinimo: 500, ValorMaximo: f(500), Percentagem: 10},
			},
			valido: false,
		},
		{
			name: "percentagem fora de 0-100",
			niveis: []EscalaNivel{
				{ValorMinimo: 0, Percentagem: 120},
			},
			valido: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarNiveis(tt.niveis)
			if tt.valido {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrNiveisInvalidos)
			}
		})
	}
}

func TestClassificarMotorista(t *testing.T) {
	niveis := []NivelClassificacao{
		{Nivel: 1, Nome: "Bronze", MesesMinimos: 0, PontuacaoMinima: 0, BonusPercentagem: 0},
		{Nivel: 2, Nome: "Prata", MesesMinimos: 6, PontuacaoMinima: 70, BonusPercentagem: 2},
		{Nivel: 3, Nome: "Ouro", MesesMinimos: 12, PontuacaoMinima: 85, BonusPercentagem: 5},
	}

	assert.Equal(t, "Ouro", ClassificarMotorista(niveis, 24, 90).Nome)
	assert.Equal(t, "Prata", ClassificarMotorista(niveis, 24, 80).Nome)  // pontuação trava o ouro
	assert.Equal(t, "Prata", ClassificarMotorista(niveis, 8, 95).Nome)   // antiguidade trava o ouro
	assert.Equal(t, "Bronze", ClassificarMotorista(niveis, 1, 10).Nome)
	assert.Nil(t, ClassificarMotorista(nil, 24, 90))
}
