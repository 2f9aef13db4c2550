package planos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMensalidadeFrota(t *testing.T) {
	p := PlanoGestao{MensalidadeBase: 49.90, PrecoPorVeiculo: 5}

	assert.InDelta(t, 49.90, p.MensalidadeFrota(0), 0.001)
	assert.InDelta(t, 99.90, p.MensalidadeFrota(10), 0.001)
	// frota negativa trata-se como vazia
	assert.InDelta(t, 49.90, p.MensalidadeFrota(-3), 0.001)
}
