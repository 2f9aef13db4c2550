package resumosemanal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarTransicaoSoParaAFrente(t *testing.T) {
	tests := []struct {
		name    string
		resumo  ResumoSemanal
		destino Status
		querErr error
	}{
		{
			name:    "avanço simples",
			resumo:  ResumoSemanal{Status: StatusPendente},
			destino: StatusAprovado,
		},
		{
			name:    "saltar estados intermédios é permitido",
			resumo:  ResumoSemanal{Status: StatusAprovado},
			destino: StatusAPagamento,
		},
		{
			name:    "recuar é proibido",
			resumo:  ResumoSemanal{Status: StatusAPagamento},
			destino: StatusAprovado,
			querErr: ErrTransicaoInvalida,
		},
		{
			name:    "transição para o mesmo estado é proibida",
			resumo:  ResumoSemanal{Status: StatusAprovado},
			destino: StatusAprovado,
			querErr: ErrTransicaoInvalida,
		},
		{
			name:    "liquidar sem comprovativo é bloqueado",
			resumo:  ResumoSemanal{Status: StatusAPagamento},
			destino: StatusLiquidado,
			querErr: ErrComprovativoEmFalta,
		},
		{
			name:    "liquidar com comprovativo passa",
			resumo:  ResumoSemanal{Status: StatusAPagamento, Comprovativo: "comprovativo-abc.pdf"},
			destino: StatusLiquidado,
		},
		{
			name:    "destino fora da enumeração",
			resumo:  ResumoSemanal{Status: StatusPendente},
			destino: Status("arquivado"),
			querErr: ErrStatusDesconhecido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarTransicao(&tt.resumo, tt.destino)
			if tt.querErr != nil {
				require.ErrorIs(t, err, tt.querErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAposUploadRecibo(t *testing.T) {
	// só o estado aprovado avança automaticamente
	assert.Equal(t, StatusAguardarRecibo, AposUploadRecibo(StatusAprovado))
	assert.Equal(t, StatusPendente, AposUploadRecibo(StatusPendente))
	assert.Equal(t, StatusAPagamento, AposUploadRecibo(StatusAPagamento))
}

func TestFiltrarPorStatus(t *testing.T) {
	registos := []ResumoSemanal{
		{ID: 1, Status: StatusPendente},
		{ID: 2, Status: StatusAprovado},
		{ID: 3, Status: StatusPendente},
		{ID: 4, Status: StatusLiquidado},
	}

	assert.Len(t, FiltrarPorStatus(registos, StatusTodos), 4)
	assert.Len(t, FiltrarPorStatus(registos, ""), 4)

	pendentes := FiltrarPorStatus(registos, string(StatusPendente))
	require.Len(t, pendentes, 2)
	for _, r := range pendentes {
		assert.Equal(t, StatusPendente, r.Status)
	}

	// partição: filtrado + complemento = total
	for _, s := range StatusValidos() {
		sub := FiltrarPorStatus(registos, string(s))
		resto := 0
		for _, r := range registos {
			if r.Status != s {
				resto++
			}
		}
		assert.Equal(t, len(registos), len(sub)+resto)
	}
}

func TestOrdemDosStatus(t *testing.T) {
	validos := StatusValidos()
	require.Equal(t, 9, len(validos))
	assert.Equal(t, StatusPendente, validos[0])
	assert.Equal(t, StatusLiquidado, validos[len(validos)-1])

	for _, s := range validos {
		assert.True(t, s.Valido())
	}
	assert.False(t, Status("todos").Valido())
}
