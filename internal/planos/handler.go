package planos

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de planos de gestão. Escritas são admin-only
// (garantido no router); leitura é livre para parceiros autenticados.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /gestao-planos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	apenasAtivos := r.URL.Query().Get("todos") != "true"
	lista, err := h.Repo.ListAll(apenasAtivos)
	if err != nil {
		http.Error(w, "Erro ao listar planos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// GET /gestao-planos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// POST /gestao-planos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var p PlanoGestao
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if p.MensalidadeBase < 0 || p.PrecoPorVeiculo < 0 {
		http.Error(w, "Preços não podem ser negativos", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /gestao-planos/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	var payload PlanoGestao
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.MensalidadeBase < 0 || payload.PrecoPorVeiculo < 0 {
		http.Error(w, "Preços não podem ser negativos", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.MensalidadeBase = payload.MensalidadeBase
	existente.PrecoPorVeiculo = payload.PrecoPorVeiculo
	existente.MaxVeiculos = payload.MaxVeiculos
	existente.Ativo = payload.Ativo

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /gestao-planos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir plano", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
