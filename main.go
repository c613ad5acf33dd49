package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "backend/internal/config"
	router "backend/internal/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := intconfig.NewStore(ctx, env)
	cancel()
	if err != nil {
		log.Fatalf("Não foi possível criar o cliente da planilha: %v", err)
	}

	// Ping: confirm the spreadsheet is reachable before serving.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	titles, err := store.SheetTitles(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatalf("Não foi possível acessar a planilha %s: %v", env.SpreadsheetID, err)
	}
	log.Printf("Planilha conectada: %s (%d abas)", env.SpreadsheetID, len(titles))

	r := router.NewRouter(env, store)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Distribuidor de senhas em http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Falha ao iniciar o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Encerrando o servidor...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Falha no shutdown: %v", err)
	}

	log.Println("Servidor encerrado.")
}
