// internal/comissao/handler.go
package comissao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de escalas de comissão e classificação.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// ListEscalas trata GET /comissoes/escalas
func (h *Handler) ListEscalas(w http.ResponseWriter, r *http.Request) {
	escalas, err := h.Repo.ListEscalas()
	if err != nil {
		http.Error(w, "Erro ao buscar escalas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(escalas)
}

// CreateEscala trata POST /comissoes/escalas
func (h *Handler) CreateEscala(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var escala EscalaComissao
	if err := json.NewDecoder(r.Body).Decode(&escala); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Repo.CreateEscala(&escala); err != nil {
		if errors.Is(err, ErrNiveisInvalidos) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao criar escala", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(escala)
}

// GetNiveis trata GET /comissoes/escalas/{id}/niveis
func (h *Handler) GetNiveis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da escala inválido", http.StatusBadRequest)
		return
	}
	escala, err := h.Repo.FindEscala(uint(id))
	if err != nil {
		http.Error(w, "Escala não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(escala.Niveis)
}

// PutNiveis trata PUT /comissoes/escalas/{id}/niveis
// Substitui a lista completa; listas que violem o invariante da escala
// (contiguidade, sem sobreposição, ilimitado só no fim) são rejeitadas.
func (h *Handler) PutNiveis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da escala inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var niveis []EscalaNivel
	if err := json.NewDecoder(r.Body).Decode(&niveis); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.ReplaceNiveis(uint(id), niveis); err != nil {
		switch {
		case errors.Is(err, ErrNiveisInvalidos):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Escala não encontrada", http.StatusNotFound)
		default:
			http.Error(w, "Erro ao gravar escalões", http.StatusInternalServerError)
		}
		return
	}

	escala, err := h.Repo.FindEscala(uint(id))
	if err != nil {
		http.Error(w, "Erro ao recarregar escala", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(escala.Niveis)
}

// GetClassificacao trata GET /comissoes/classificacao/config
func (h *Handler) GetClassificacao(w http.ResponseWriter, r *http.Request) {
	niveis, err := h.Repo.ListClassificacao()
	if err != nil {
		http.Error(w, "Erro ao buscar classificação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(niveis)
}

// PutClassificacao trata PUT /comissoes/classificacao/config
func (h *Handler) PutClassificacao(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var niveis []NivelClassificacao
	if err := json.NewDecoder(r.Body).Decode(&niveis); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	for _, n := range niveis {
		if n.PontuacaoMinima < 0 || n.PontuacaoMinima > 100 {
			http.Error(w, "Pontuação mínima fora de 0–100", http.StatusBadRequest)
			return
		}
		if n.BonusPercentagem < 0 {
			http.Error(w, "Bónus não pode ser negativo", http.StatusBadRequest)
			return
		}
	}
	if err := h.Repo.ReplaceClassificacao(niveis); err != nil {
		http.Error(w, "Erro ao gravar classificação", http.StatusInternalServerError)
		return
	}
	recarregados, err := h.Repo.ListClassificacao()
	if err != nil {
		http.Error(w, "Erro ao recarregar classificação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(recarregados)
}

// Simular trata GET /comissoes/simular?valor=&nivel=
// Replica no servidor a aritmética que o simulador mostra: escalão por
// montante mais bónus de classificação, aditivos.
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	valorStr := r.URL.Query().Get("valor")
	valor, err := strconv.ParseFloat(valorStr, 64)
	if err != nil {
		http.Error(w, "Parâmetro 'valor' inválido", http.StatusBadRequest)
		return
	}

	var classificacao *NivelClassificacao
	if nivelStr := r.URL.Query().Get("nivel"); nivelStr != "" {
		nivel, err := strconv.Atoi(nivelStr)
		if err != nil {
			http.Error(w, "Parâmetro 'nivel' inválido", http.StatusBadRequest)
			return
		}
		classificacao, err = h.Repo.FindClassificacao(nivel)
		if err != nil {
			http.Error(w, "Nível de classificação desconhecido", http.StatusBadRequest)
			return
		}
	}

	escala, err := h.Repo.EscalaAtiva()
	if err != nil {
		http.Error(w, "Nenhuma escala ativa configurada", http.StatusConflict)
		return
	}

	resultado, err := Avaliar(escala.Niveis, classificacao, valor)
	if err != nil {
		if errors.Is(err, ErrSemEscalao) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao simular comissão", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}
