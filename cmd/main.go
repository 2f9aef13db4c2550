package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/tvdefleet/api-frota/internal/armazenamento"
	"github.com/tvdefleet/api-frota/internal/auth"
	"github.com/tvdefleet/api-frota/internal/comissao"
	"github.com/tvdefleet/api-frota/internal/contrato"
	"github.com/tvdefleet/api-frota/internal/integracao"
	"github.com/tvdefleet/api-frota/internal/motorista"
	"github.com/tvdefleet/api-frota/internal/parceiro"
	"github.com/tvdefleet/api-frota/internal/planos"
	"github.com/tvdefleet/api-frota/internal/resumosemanal"
	"github.com/tvdefleet/api-frota/internal/utils"
	"github.com/tvdefleet/api-frota/internal/utils/db"
	"github.com/tvdefleet/api-frota/internal/veiculo"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	logger, err := utils.NovoLogger(os.Getenv("LOG_DEV") == "true")
	if err != nil {
		log.Fatal("Erro ao iniciar logger:", err)
	}
	defer logger.Sync()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := parceiro.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := veiculo.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := motorista.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := contrato.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := comissao.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := resumosemanal.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := planos.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}
	if err := integracao.Migrate(database); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}

	arquivo, err := armazenamento.Novo(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		logger.Fatal("Erro ao preparar diretório de uploads", zap.Error(err))
	}

	// Handlers
	comissaoRepo := comissao.NewRepository(database)
	resumoRepo := resumosemanal.NewRepository(database)

	parceiroHandler := parceiro.NewHandler(database)
	veiculoHandler := veiculo.NewHandler(veiculo.NewRepository(database))
	motoristaHandler := motorista.NewHandler(motorista.NewRepository(database), comissaoRepo)
	contratoHandler := contrato.NewHandler(database)
	comissaoHandler := comissao.NewHandler(comissaoRepo)
	resumoHandler := resumosemanal.NewHandler(resumoRepo, arquivo)
	planosHandler := planos.NewHandler(planos.NewRepository(database))
	integracaoHandler := integracao.NewHandler(integracao.NewRepository(database))

	// Router
	r := mux.NewRouter()
	r.Use(utils.MiddlewareLogs(logger))

	// Rotas públicas
	r.HandleFunc("/login", parceiroHandler.Login).Methods("POST")
	r.HandleFunc("/parceiros", parceiroHandler.CriarParceiro).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de parceiros
	api.HandleFunc("/parceiros", parceiroHandler.ListarParceiros).Methods("GET")
	api.HandleFunc("/parceiros/me", parceiroHandler.Me).Methods("GET")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/parceiros/{id}", parceiroHandler.AtualizarParceiro).Methods("PUT")
	api.Handle("/parceiros/{id}", auth.RequireAdmin(http.HandlerFunc(parceiroHandler.DeletarParceiro))).Methods("DELETE")
	api.HandleFunc("/parceiros/{id}/alertas", parceiroHandler.Alertas).Methods("GET")

	// Rotas de veículos
	api.HandleFunc("/vehicles", veiculoHandler.Create).Methods("POST")
	api.HandleFunc("/vehicles", veiculoHandler.List).Methods("GET")
	api.HandleFunc("/vehicles/{id}", veiculoHandler.Get).Methods("GET")
	api.HandleFunc("/vehicles/{id}", veiculoHandler.Update).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", veiculoHandler.Delete).Methods("DELETE")

	// Rotas de motoristas
	api.HandleFunc("/motoristas", motoristaHandler.Create).Methods("POST")
	api.HandleFunc("/motoristas", motoristaHandler.List).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Get).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Update).Methods("PUT")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Delete).Methods("DELETE")
	api.HandleFunc("/motoristas/{id}/classificacao", motoristaHandler.Classificacao).Methods("GET")
	api.HandleFunc("/motoristas/{id}/contratos", contratoHandler.ListarPorMotorista).Methods("GET")

	// Rotas de contratos (templates antes de {id} para não colidir)
	api.HandleFunc("/contratos/templates", contratoHandler.ListarTemplates).Methods("GET")
	api.HandleFunc("/contratos/templates/{tipo}", contratoHandler.BuscarTemplate).Methods("GET")
	api.HandleFunc("/contratos/templates/{tipo}", contratoHandler.GravarTemplate).Methods("PUT")
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de comissões
	api.HandleFunc("/comissoes/escalas", comissaoHandler.ListEscalas).Methods("GET")
	api.HandleFunc("/comissoes/escalas", comissaoHandler.CreateEscala).Methods("POST")
	api.HandleFunc("/comissoes/escalas/{id}/niveis", comissaoHandler.GetNiveis).Methods("GET")
	api.HandleFunc("/comissoes/escalas/{id}/niveis", comissaoHandler.PutNiveis).Methods("PUT")
	api.HandleFunc("/comissoes/classificacao/config", comissaoHandler.GetClassificacao).Methods("GET")
	api.HandleFunc("/comissoes/classificacao/config", comissaoHandler.PutClassificacao).Methods("PUT")
	api.HandleFunc("/comissoes/simular", comissaoHandler.Simular).Methods("GET")

	// Rotas do resumo semanal
	resumoBase := "/api/relatorios/parceiro/resumo-semanal"
	api.HandleFunc(resumoBase, resumoHandler.List).Methods("GET")
	api.HandleFunc(resumoBase, resumoHandler.Create).Methods("POST")
	api.HandleFunc(resumoBase+"/status", resumoHandler.ListStatus).Methods("GET")
	api.HandleFunc(resumoBase+"/export", resumoHandler.Export).Methods("GET")
	api.HandleFunc(resumoBase+"/{id}/status", resumoHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc(resumoBase+"/{id}/upload-recibo", resumoHandler.UploadRecibo).Methods("POST")
	api.HandleFunc(resumoBase+"/{id}/upload-comprovativo", resumoHandler.UploadComprovativo).Methods("POST")
	api.HandleFunc(resumoBase+"/{id}/recibo", resumoHandler.DownloadRecibo).Methods("GET")

	// Rotas de planos de gestão (escritas são admin-only)
	api.HandleFunc("/gestao-planos", planosHandler.List).Methods("GET")
	api.HandleFunc("/gestao-planos/{id}", planosHandler.Get).Methods("GET")
	api.Handle("/gestao-planos", auth.RequireAdmin(http.HandlerFunc(planosHandler.Create))).Methods("POST")
	api.Handle("/gestao-planos/{id}", auth.RequireAdmin(http.HandlerFunc(planosHandler.Update))).Methods("PUT")
	api.Handle("/gestao-planos/{id}", auth.RequireAdmin(http.HandlerFunc(planosHandler.Delete))).Methods("DELETE")

	// Rotas de integrações externas (admin-only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/integracoes/{provider}", integracaoHandler.Get).Methods("GET")
	admin.HandleFunc("/integracoes/{provider}", integracaoHandler.Put).Methods("PUT")
	admin.HandleFunc("/integracoes/{provider}/testar", integracaoHandler.Testar).Methods("POST")

	// CORS para o frontend
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Servidor a arrancar", zap.String("porta", port))
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		logger.Fatal("Servidor terminou com erro", zap.Error(err))
	}
}
