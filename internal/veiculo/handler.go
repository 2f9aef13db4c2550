package veiculo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tvdefleet/api-frota/internal/auth"
)

// Handler gerencia rotas de veículos.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /vehicles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var v Veiculo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if v.Matricula == "" {
		http.Error(w, "Matrícula é obrigatória", http.StatusBadRequest)
		return
	}
	v.ParceiroID = parceiroID

	if err := h.Repo.Create(&v); err != nil {
		http.Error(w, "Erro ao criar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /vehicles
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	veiculos, err := h.Repo.ListByParceiro(parceiroID)
	if err != nil {
		http.Error(w, "Erro ao listar veículos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(veiculos)
}

// GET /vehicles/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// PUT /vehicles/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}

	var payload Veiculo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Matricula = payload.Matricula
	existente.Marca = payload.Marca
	existente.Modelo = payload.Modelo
	existente.Ano = payload.Ano
	existente.Combustivel = payload.Combustivel
	existente.Estado = payload.Estado
	existente.AluguerSemanal = payload.AluguerSemanal
	existente.MotoristaID = payload.MotoristaID

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /vehicles/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir veículo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
