package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, VerificarSenha(hash, "segredo123"))
	assert.False(t, VerificarSenha(hash, "outra"))
	assert.False(t, VerificarSenha("", "segredo123"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	senha, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, senha, 12)
	for _, c := range senha {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'),
			"caracter inesperado: %q", c)
	}

	// duas gerações não colidem
	outra, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.NotEqual(t, senha, outra)

	// a temporária autentica pelo fluxo normal de hash
	hash, err := HashSenha(senha)
	require.NoError(t, err)
	assert.True(t, VerificarSenha(hash, senha))
}
