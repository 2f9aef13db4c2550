package motorista

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tvdefleet/api-frota/internal/auth"
	"github.com/tvdefleet/api-frota/internal/comissao"
)

// Handler gerencia rotas de motoristas.
type Handler struct {
	Repo      *Repository
	Comissoes *comissao.Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository, comissoes *comissao.Repository) *Handler {
	return &Handler{Repo: repo, Comissoes: comissoes}
}

// POST /motoristas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var m Motorista
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if m.PontuacaoCuidado < 0 || m.PontuacaoCuidado > 100 {
		http.Error(w, "Pontuação de cuidado fora de 0–100", http.StatusBadRequest)
		return
	}
	m.ParceiroID = parceiroID
	m.Ativo = true

	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "Erro ao criar motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// GET /motoristas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	motoristas, err := h.Repo.ListByParceiro(parceiroID)
	if err != nil {
		http.Error(w, "Erro ao listar motoristas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(motoristas)
}

// GET /motoristas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// PUT /motoristas/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}

	var payload Motorista
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.PontuacaoCuidado < 0 || payload.PontuacaoCuidado > 100 {
		http.Error(w, "Pontuação de cuidado fora de 0–100", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.Email = payload.Email
	existente.Telefone = payload.Telefone
	existente.NIF = payload.NIF
	existente.Foto = payload.Foto
	existente.DataInicio = payload.DataInicio
	existente.PontuacaoCuidado = payload.PontuacaoCuidado
	existente.VeiculoID = payload.VeiculoID
	existente.Ativo = payload.Ativo

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /motoristas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir motorista", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Classificacao trata GET /motoristas/{id}/classificacao
// Resolve o nível do motorista pela antiguidade e pontuação de cuidado.
func (h *Handler) Classificacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}

	niveis, err := h.Comissoes.ListClassificacao()
	if err != nil {
		http.Error(w, "Erro ao buscar classificação", http.StatusInternalServerError)
		return
	}

	meses := m.MesesAntiguidade(time.Now())
	nivel := comissao.ClassificarMotorista(niveis, meses, m.PontuacaoCuidado)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"motoristaId":      m.ID,
		"mesesAntiguidade": meses,
		"pontuacao":        m.PontuacaoCuidado,
		"nivel":            nivel, // nil quando nenhum nível se aplica
	})
}
