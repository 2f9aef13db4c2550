package integracao

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
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

func TestValidarProvider(t *testing.T) {
	assert.NoError(t, ValidarProvider(ProviderIfthenpay))
	assert.NoError(t, ValidarProvider(ProviderMoloni))
	assert.ErrorIs(t, ValidarProvider("stripe"), ErrProviderDesconhecido)
	assert.ErrorIs(t, ValidarProvider(""), ErrProviderDesconhecido)
}

func TestMascarar(t *testing.T) {
	assert.Equal(t, "************cdef", mascarar("0123456789abcdef"))
	// segredos curtos não ganham máscara
	assert.Equal(t, "abc", mascarar("abc"))
}

func TestGetMascaraTodasAsCredenciais(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))
	handler := NewHandler(repo)

	require.NoError(t, repo.Save(&Config{
		Provider:        ProviderIfthenpay,
		Ativa:           true,
		MbWayKey:        "MBW-1234567890",
		AntiPhishingKey: "APK-0987654321",
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/integracoes/ifthenpay", nil)
	req = mux.SetURLVars(req, map[string]string{"provider": "ifthenpay"})
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// nenhuma credencial sai em claro na leitura
	assert.Equal(t, "**********7890", resp.MbWayKey)
	assert.Equal(t, "**********4321", resp.AntiPhishingKey)

	// a máscara é só de leitura; o registo guarda o valor completo
	guardada, err := repo.FindByProvider(ProviderIfthenpay)
	require.NoError(t, err)
	assert.Equal(t, "MBW-1234567890", guardada.MbWayKey)
}
