package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tvdefleet/api-frota/internal/auth"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func escreverErroValidacao(w http.ResponseWriter, err error) bool {
	if errors.Is(err, ErrTipoDesconhecido) || errors.Is(err, ErrReparticaoInvalida) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return true
	}
	return false
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ParceiroID = parceiroID
	if err := c.Validar(); err != nil {
		if !escreverErroValidacao(w, err) {
			http.Error(w, "Contrato inválido", http.StatusBadRequest)
		}
		return
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	list, err := h.Repository.ListarPorParceiro(h.DB, parceiroID)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /motoristas/{id}/contratos
func (h *Handler) ListarPorMotorista(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorMotorista(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID = existente.ID
	c.ParceiroID = existente.ParceiroID
	if err := c.Validar(); err != nil {
		if !escreverErroValidacao(w, err) {
			http.Error(w, "Contrato inválido", http.StatusBadRequest)
		}
		return
	}
	if err := h.Repository.Atualizar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ========================= Templates ========================= */

// GET /contratos/templates
func (h *Handler) ListarTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTemplates(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar templates", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /contratos/templates/{tipo}
func (h *Handler) BuscarTemplate(w http.ResponseWriter, r *http.Request) {
	tipo := TipoContrato(mux.Vars(r)["tipo"])
	t, err := h.Repository.BuscarTemplate(h.DB, tipo)
	if err != nil {
		http.Error(w, "Template não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// PUT /contratos/templates/{tipo}
func (h *Handler) GravarTemplate(w http.ResponseWriter, r *http.Request) {
	tipo := TipoContrato(mux.Vars(r)["tipo"])
	var t ContratoTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	t.Tipo = tipo
	if err := t.Validar(); err != nil {
		if !escreverErroValidacao(w, err) {
			http.Error(w, "Template inválida", http.StatusBadRequest)
		}
		return
	}
	if err := h.Repository.GravarTemplate(h.DB, &t); err != nil {
		http.Error(w, "Erro ao gravar template", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}
