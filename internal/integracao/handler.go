package integracao

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// Endereços usados pelo teste de conectividade. Sobrepostos nos testes.
var enderecosTeste = map[Provider]string{
	ProviderIfthenpay: "https://api.ifthenpay.com/spg/payment/mbway/status",
	ProviderMoloni:    "https://api.moloni.pt/v1/",
}

// Handler gerencia rotas de integrações externas. Todas as rotas são
// admin-only (garantido no router).
type Handler struct {
	Repo    *Repository
	Cliente *http.Client
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{
		Repo:    repo,
		Cliente: &http.Client{Timeout: 10 * time.Second},
	}
}

// GET /admin/integracoes/{provider}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Repo.FindByProvider(Provider(mux.Vars(r)["provider"]))
	if errors.Is(err, ErrProviderDesconhecido) {
		http.Error(w, "Integração desconhecida", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao buscar integração", http.StatusInternalServerError)
		return
	}
	cfg.MbWayKey = mascarar(cfg.MbWayKey)
	cfg.ClientSecret = mascarar(cfg.ClientSecret)
	cfg.AntiPhishingKey = mascarar(cfg.AntiPhishingKey)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

// PUT /admin/integracoes/{provider}
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	provider := Provider(mux.Vars(r)["provider"])
	if err := ValidarProvider(provider); err != nil {
		http.Error(w, "Integração desconhecida", http.StatusNotFound)
		return
	}

	var payload Config
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	payload.Provider = provider

	switch provider {
	case ProviderIfthenpay:
		if payload.Ativa && payload.MbWayKey == "" {
			http.Error(w, "MB WAY Key é obrigatória para ativar o ifthenpay", http.StatusBadRequest)
			return
		}
	case ProviderMoloni:
		if payload.Ativa && (payload.ClientID == "" || payload.ClientSecret == "") {
			http.Error(w, "Client ID e Client Secret são obrigatórios para ativar o Moloni", http.StatusBadRequest)
			return
		}
	}

	if err := h.Repo.Save(&payload); err != nil {
		http.Error(w, "Erro ao gravar integração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// POST /admin/integracoes/{provider}/testar
//
// Faz um pedido real ao endpoint público do provider. Qualquer resposta HTTP
// conta como sucesso de conectividade; só falha de rede reprova o teste.
func (h *Handler) Testar(w http.ResponseWriter, r *http.Request) {
	provider := Provider(mux.Vars(r)["provider"])
	endereco, ok := enderecosTeste[provider]
	if !ok {
		http.Error(w, "Integração desconhecida", http.StatusNotFound)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endereco, nil)
	if err != nil {
		http.Error(w, "Erro ao preparar teste", http.StatusInternalServerError)
		return
	}

	agora := time.Now()
	resultado := map[string]interface{}{"provider": provider, "testadoEm": agora}

	resp, err := h.Cliente.Do(req)
	if err != nil {
		resultado["ok"] = false
		resultado["erro"] = fmt.Sprintf("sem conectividade: %v", err)
	} else {
		resp.Body.Close()
		resultado["ok"] = true
		resultado["statusRemoto"] = resp.StatusCode
	}

	_ = h.Repo.RegistarTeste(provider, resultado["ok"].(bool), agora)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// mascarar esconde o corpo de um segredo, mantendo os últimos 4 caracteres.
func mascarar(s string) string {
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
