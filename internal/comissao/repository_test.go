package comissao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestReplaceNiveisRoundTrip(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	escala := EscalaComissao{
		Nome: "Escala base",
		Niveis: []EscalaNivel{
			{Nome: "Arranque", ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
			{Nome: "Topo", ValorMinimo: 500, Percentagem: 15},
		},
	}
	require.NoError(t, repo.CreateEscala(&escala))

	novos := []EscalaNivel{
		{Nome: "Base", ValorMinimo: 0, ValorMaximo: f(1000), Percentagem: 12},
		{Nome: "Intermédio", ValorMinimo: 1000, ValorMaximo: f(3000), Percentagem: 16},
		{Nome: "Topo", ValorMinimo: 3000, Percentagem: 20},
	}
	require.NoError(t, repo.ReplaceNiveis(escala.ID, novos))

	// o que se grava é o que se lê: mesmos intervalos e percentagens
	lida, err := repo.FindEscala(escala.ID)
	require.NoError(t, err)
	require.Len(t, lida.Niveis, 3)
	for i, n := range lida.Niveis {
		assert.Equal(t, novos[i].ValorMinimo, n.ValorMinimo)
		assert.Equal(t, novos[i].Percentagem, n.Percentagem)
		assert.Equal(t, i, n.Ordem)
		if novos[i].ValorMaximo == nil {
			assert.Nil(t, n.ValorMaximo)
		} else {
			require.NotNil(t, n.ValorMaximo)
			assert.Equal(t, *novos[i].ValorMaximo, *n.ValorMaximo)
		}
	}

	// regravar a mesma lista é idempotente: nada duplica
	require.NoError(t, repo.ReplaceNiveis(escala.ID, lida.Niveis))
	relida, err := repo.FindEscala(escala.ID)
	require.NoError(t, err)
	require.Len(t, relida.Niveis, 3)
	for i, n := range relida.Niveis {
		assert.Equal(t, lida.Niveis[i].ValorMinimo, n.ValorMinimo)
		assert.Equal(t, lida.Niveis[i].Percentagem, n.Percentagem)
	}

	var total int64
	require.NoError(t, repo.DB.Model(&EscalaNivel{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)
}

func TestReplaceNiveisRejeitaListaInvalida(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	escala := EscalaComissao{
		Nome: "Escala base",
		Niveis: []EscalaNivel{
			{ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
			{ValorMinimo: 500, Percentagem: 15},
		},
	}
	require.NoError(t, repo.CreateEscala(&escala))

	// lista com buraco entre escalões não pode substituir a existente
	err := repo.ReplaceNiveis(escala.ID, []EscalaNivel{
		{ValorMinimo: 0, ValorMaximo: f(500), Percentagem: 10},
		{ValorMinimo: 600, Percentagem: 15},
	})
	require.ErrorIs(t, err, ErrNiveisInvalidos)

	// a escala original fica intacta
	lida, err := repo.FindEscala(escala.ID)
	require.NoError(t, err)
	require.Len(t, lida.Niveis, 2)
	assert.Equal(t, 10.0, lida.Niveis[0].Percentagem)
	assert.Equal(t, 15.0, lida.Niveis[1].Percentagem)
}

func TestReplaceNiveisEscalaInexistente(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))
	err := repo.ReplaceNiveis(999, []EscalaNivel{{ValorMinimo: 0, Percentagem: 10}})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
