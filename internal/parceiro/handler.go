package parceiro

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tvdefleet/api-frota/internal/auth"
	"github.com/tvdefleet/api-frota/internal/contrato"
	"github.com/tvdefleet/api-frota/internal/notificacao"
	"github.com/tvdefleet/api-frota/internal/resumosemanal"
	"github.com/tvdefleet/api-frota/internal/utils"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createParceiroRequest struct {
	Nome     string `json:"nome"`
	NIF      string `json:"nif"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Logo     string `json:"logo"`
	Senha    string `json:"senha"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Resumos    *resumosemanal.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Resumos:    resumosemanal.NewRepository(db),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Busca parceiro por email ou NIF
	p, err := h.Repository.BuscarPorEmailOuNIF(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	// Verifica senha
	if !utils.VerificarSenha(p.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Gera token
	token, err := auth.GerarToken(p.ID, p.ID, p.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarParceiro cadastra novo parceiro (livre de autenticação)
func (h *Handler) CriarParceiro(w http.ResponseWriter, r *http.Request) {
	var req createParceiroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// sem senha no payload, o cadastro gera uma temporária que o parceiro
	// é obrigado a redefinir no primeiro acesso
	senhaTemporaria := ""
	if req.Senha == "" {
		tmp, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		req.Senha = tmp
		senhaTemporaria = tmp
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	p := Parceiro{
		Nome:                  req.Nome,
		NIF:                   req.NIF,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Logo:                  req.Logo,
		Senha:                 hash,
		PrecisaRedefinirSenha: senhaTemporaria != "",
		IsAdmin:               req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar parceiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if senhaTemporaria != "" {
		// devolvida uma única vez, no cadastro; nunca mais sai do sistema
		_ = json.NewEncoder(w).Encode(struct {
			Parceiro
			SenhaTemporaria string `json:"senhaTemporaria"`
		}{p, senhaTemporaria})
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// ListarParceiros retorna todos (admin) ou apenas o próprio registro
func (h *Handler) ListarParceiros(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)

	if auth.AdminDoContexto(r) {
		parceiros, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar parceiros", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(parceiros)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode([]Parceiro{*obj})
}

// BuscarPorID retorna um parceiro pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)
	isAdmin := auth.AdminDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(obj)
}

// AtualizarParceiro altera dados de um parceiro existente
func (h *Handler) AtualizarParceiro(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)
	isAdmin := auth.AdminDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Parceiro
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar parceiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("parceiro atualizado com sucesso"))
}

// DeletarParceiro remove um parceiro (apenas admin)
func (h *Handler) DeletarParceiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir parceiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("parceiro excluído com sucesso"))
}

// Me retorna o parceiro logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)

	var p Parceiro
	if err := h.DB.First(&p, userID).Error; err != nil {
		http.Error(w, "parceiro não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Alertas trata GET /parceiros/{id}/alertas
// Constrói o feed de avisos do painel: resumos por tratar, líquidos
// negativos em aberto e contratos a terminar nos próximos 30 dias.
func (h *Handler) Alertas(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)
	isAdmin := auth.AdminDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	alertas := []Alerta{}

	if pendentes, err := h.Resumos.PendentesDoParceiro(uint(id)); err == nil && pendentes > 0 {
		alertas = append(alertas, Alerta{
			Tipo:     "resumos_pendentes",
			Mensagem: fmt.Sprintf("%d resumos semanais por liquidar", pendentes),
			Nivel:    "info",
		})
	}

	if negativos, err := h.Resumos.NegativosDoParceiro(uint(id)); err == nil && len(negativos) > 0 {
		msg := fmt.Sprintf("%d motoristas com valor líquido negativo esta semana", len(negativos))
		alertas = append(alertas, Alerta{
			Tipo:     "liquido_negativo",
			Mensagem: msg,
			Nivel:    "aviso",
		})
		go notificacao.EnviarWebhookAlerta(uint(id), msg)
	}

	// contratos ativos a terminar nos próximos 30 dias
	limite := time.Now().AddDate(0, 0, 30)
	var aTerminar []contrato.Contrato
	if err := h.DB.
		Where("parceiro_id = ? AND ativo = ? AND data_fim IS NOT NULL AND data_fim <= ?", uint(id), true, limite).
		Find(&aTerminar).Error; err == nil && len(aTerminar) > 0 {
		alertas = append(alertas, Alerta{
			Tipo:     "contrato_a_terminar",
			Mensagem: fmt.Sprintf("%d contratos terminam nos próximos 30 dias", len(aTerminar)),
			Nivel:    "critico",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(alertas)
}
