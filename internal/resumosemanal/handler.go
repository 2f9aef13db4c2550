// internal/resumosemanal/handler.go
package resumosemanal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tvdefleet/api-frota/internal/armazenamento"
	"github.com/tvdefleet/api-frota/internal/auth"
	"github.com/tvdefleet/api-frota/internal/notificacao"
	"github.com/tvdefleet/api-frota/internal/semana"
)

// Limite de upload de documentos (recibos e comprovativos).
const maxUpload = 10 << 20 // 10 MiB

// Handler gerencia as rotas do resumo semanal do parceiro.
type Handler struct {
	Repo    *Repository
	Arquivo *armazenamento.Armazenamento
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository, arquivo *armazenamento.Armazenamento) *Handler {
	return &Handler{Repo: repo, Arquivo: arquivo}
}

// periodoDoPedido lê semana/ano da query string; ausentes valem a semana atual.
func periodoDoPedido(r *http.Request) (int, int, error) {
	sem, anoISO := semana.Atual()
	q := r.URL.Query()
	if v := q.Get("semana"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("semana inválida")
		}
		sem = n
	}
	if v := q.Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("ano inválido")
		}
		anoISO = n
	}
	if !semana.Valida(sem, anoISO) {
		return 0, 0, fmt.Errorf("semana %d não existe no ano %d", sem, anoISO)
	}
	return sem, anoISO, nil
}

// List trata GET /api/relatorios/parceiro/resumo-semanal
// Query params: semana, ano (default: semana corrente) e status
// (default "todos"). O agregado é calculado só sobre o subconjunto filtrado.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}

	sem, ano, err := periodoDoPedido(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != StatusTodos && !Status(status).Valido() {
		http.Error(w, "Status de filtro desconhecido", http.StatusBadRequest)
		return
	}

	registos, err := h.Repo.ListByPeriodo(parceiroID, sem, ano, status)
	if err != nil {
		http.Error(w, "Erro ao buscar resumos", http.StatusInternalServerError)
		return
	}

	inicio, fim := semana.Intervalo(sem, ano)
	resp := ListaResumosDTO{
		Semana:   sem,
		Ano:      ano,
		Inicio:   inicio.Format("2006-01-02"),
		Fim:      fim.Format("2006-01-02"),
		Registos: registos,
		Agregado: Agregar(registos),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ListStatus trata GET /api/relatorios/parceiro/resumo-semanal/status
// Devolve contagens e somas por status para o período pedido.
func (h *Handler) ListStatus(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}

	sem, ano, err := periodoDoPedido(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contagens, err := h.Repo.ContagemPorStatus(parceiroID, sem, ano)
	if err != nil {
		http.Error(w, "Erro ao agregar por status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"semana":    sem,
		"ano":       ano,
		"status":    StatusValidos(),
		"contagens": contagens,
	})
}

// Create trata POST /api/relatorios/parceiro/resumo-semanal
// Ingestão de um registo semanal vindo do ciclo de reporte.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto CreateResumoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.MotoristaID == 0 {
		http.Error(w, "motoristaId é obrigatório", http.StatusBadRequest)
		return
	}
	// cada campo em falta assume o período corrente, de forma independente;
	// um par meio especificado nunca pode chavear um registo em ano 0
	semAtual, anoAtual := semana.Atual()
	if dto.Semana == 0 {
		dto.Semana = semAtual
	}
	if dto.Ano == 0 {
		dto.Ano = anoAtual
	}
	if !semana.Valida(dto.Semana, dto.Ano) {
		http.Error(w, "Par (semana, ano) inválido", http.StatusBadRequest)
		return
	}

	resumo := ResumoSemanal{
		ParceiroID:           parceiroID,
		MotoristaID:          dto.MotoristaID,
		MotoristaNome:        dto.MotoristaNome,
		Semana:               dto.Semana,
		Ano:                  dto.Ano,
		GanhosUber:           dto.GanhosUber,
		UberPortagens:        dto.UberPortagens,
		GanhosBolt:           dto.GanhosBolt,
		ViaVerde:             dto.ViaVerde,
		Combustivel:          dto.Combustivel,
		CarregamentoEletrico: dto.CarregamentoEletrico,
		AluguerVeiculo:       dto.AluguerVeiculo,
		Extras:               dto.Extras,
		Status:               StatusPendente,
	}

	if err := h.Repo.Create(&resumo); err != nil {
		http.Error(w, "Erro ao criar resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resumo)
}

// UpdateStatus trata PUT /api/relatorios/parceiro/resumo-semanal/{id}/status
// Só transições para a frente; liquidar exige comprovativo anexado.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do resumo inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.UpdateStatus(uint(id), Status(payload.Status), time.Now())
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Resumo não encontrado", http.StatusNotFound)
		return
	case errors.Is(err, ErrStatusDesconhecido),
		errors.Is(err, ErrTransicaoInvalida),
		errors.Is(err, ErrComprovativoEmFalta):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	if resumo.Status == StatusLiquidado {
		go notificacao.EnviarWebhookLiquidacao(
			resumo.ParceiroID, resumo.MotoristaID, resumo.Semana, resumo.Ano, resumo.ValorLiquido)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// guardarUpload lê o ficheiro multipart "ficheiro" e guarda-o em disco.
func (h *Handler) guardarUpload(r *http.Request, prefixo string) (string, error) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return "", fmt.Errorf("upload demasiado grande ou mal formado")
	}
	file, header, err := r.FormFile("ficheiro")
	if err != nil {
		return "", fmt.Errorf("campo 'ficheiro' em falta")
	}
	defer file.Close()
	return h.Arquivo.Guardar(file, header, prefixo)
}

// UploadRecibo trata POST .../{id}/upload-recibo
// Guarda o recibo e avança automaticamente aprovado → aguardar_recibo.
func (h *Handler) UploadRecibo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do resumo inválido", http.StatusBadRequest)
		return
	}

	nome, err := h.guardarUpload(r, "recibo")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.AnexarRecibo(uint(id), nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Resumo não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao anexar recibo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// UploadComprovativo trata POST .../{id}/upload-comprovativo
// Pré-condição para a transição a_pagamento → liquidado.
func (h *Handler) UploadComprovativo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do resumo inválido", http.StatusBadRequest)
		return
	}

	nome, err := h.guardarUpload(r, "comprovativo")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.AnexarComprovativo(uint(id), nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Resumo não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao anexar comprovativo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// DownloadRecibo trata GET .../{id}/recibo — devolve o documento em binário.
func (h *Handler) DownloadRecibo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do resumo inválido", http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Resumo não encontrado", http.StatusNotFound)
		return
	}
	if resumo.Recibo == "" {
		http.Error(w, "Resumo sem recibo anexado", http.StatusNotFound)
		return
	}

	f, err := h.Arquivo.Abrir(resumo.Recibo)
	if err != nil {
		http.Error(w, "Erro ao abrir recibo", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resumo.Recibo))
	_, _ = io.Copy(w, f)
}
