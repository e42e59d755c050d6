package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AgroLog/api-fretes/internal/auth"
	"github.com/AgroLog/api-fretes/internal/custo"
	"github.com/AgroLog/api-fretes/internal/dashboard"
	"github.com/AgroLog/api-fretes/internal/fazenda"
	"github.com/AgroLog/api-fretes/internal/frete"
	"github.com/AgroLog/api-fretes/internal/frota"
	"github.com/AgroLog/api-fretes/internal/motorista"
	"github.com/AgroLog/api-fretes/internal/pagamento"
	"github.com/AgroLog/api-fretes/internal/sequencial"
	"github.com/AgroLog/api-fretes/internal/usuario"
	"github.com/AgroLog/api-fretes/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional, produção usa variáveis de ambiente
	_ = godotenv.Load()

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}

	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&fazenda.Fazenda{},
		&motorista.Motorista{},
		&frota.Caminhao{},
		&frete.Frete{},
		&custo.Custo{},
		&pagamento.Pagamento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate: ", err)
	}
	if err := sequencial.Migrate(conn); err != nil {
		log.Fatal("Erro ao criar tabela de sequências: ", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	fazendaHandler := fazenda.NewHandler(conn)
	motoristaHandler := motorista.NewHandler(conn)
	frotaHandler := frota.NewHandler(conn)
	freteHandler := frete.NewHandler(conn)
	custoHandler := custo.NewHandler(conn)
	pagamentoHandler := pagamento.NewHandler(conn)
	dashboardHandler := dashboard.NewHandler(conn)

	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Usuários (gestão restrita a administradores)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.ObterPorID).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")

	// Fazendas
	api.HandleFunc("/fazendas", fazendaHandler.Criar).Methods("POST")
	api.HandleFunc("/fazendas", fazendaHandler.Listar).Methods("GET")
	api.HandleFunc("/fazendas/{id}", fazendaHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/fazendas/{id}", fazendaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/fazendas/{id}", fazendaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/fazendas/{id}/incrementar-volume", fazendaHandler.IncrementarVolume).Methods("POST")

	// Motoristas
	api.HandleFunc("/motoristas", motoristaHandler.Criar).Methods("POST")
	api.HandleFunc("/motoristas", motoristaHandler.Listar).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.Deletar).Methods("DELETE")

	// Frota
	api.HandleFunc("/caminhoes", frotaHandler.Criar).Methods("POST")
	api.HandleFunc("/caminhoes", frotaHandler.Listar).Methods("GET")
	api.HandleFunc("/caminhoes/{id}", frotaHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/caminhoes/{id}", frotaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/caminhoes/{id}", frotaHandler.Deletar).Methods("DELETE")

	// Fretes
	api.HandleFunc("/fretes", freteHandler.Criar).Methods("POST")
	api.HandleFunc("/fretes", freteHandler.Listar).Methods("GET")
	api.HandleFunc("/fretes/{id}", freteHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/fretes/{id}", freteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/fretes/{id}", freteHandler.Deletar).Methods("DELETE")

	// Custos
	api.HandleFunc("/custos", custoHandler.Criar).Methods("POST")
	api.HandleFunc("/custos", custoHandler.Listar).Methods("GET")
	api.HandleFunc("/custos/{id}", custoHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/custos/{id}", custoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/custos/{id}", custoHandler.Deletar).Methods("DELETE")

	// Pagamentos
	api.HandleFunc("/pagamentos", pagamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/pagamentos", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.ObterPorID).Methods("GET")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.Deletar).Methods("DELETE")

	// Dashboard
	api.HandleFunc("/dashboard/kpis", dashboardHandler.ObterKPIs).Methods("GET")
	api.HandleFunc("/dashboard/estatisticas-rotas", dashboardHandler.EstatisticasPorRota).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + porta,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Servidor rodando em http://localhost:%s", porta)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Erro no servidor: ", err)
		}
	}()

	// encerramento limpo
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Erro ao encerrar servidor: ", err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Servidor encerrado")
}
