package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/skilodge/lesson-booking/internal/config"
	"github.com/skilodge/lesson-booking/internal/database"
	"github.com/skilodge/lesson-booking/internal/gateway"
	"github.com/skilodge/lesson-booking/internal/handler"
	"github.com/skilodge/lesson-booking/internal/queue"
	"github.com/skilodge/lesson-booking/internal/repository"
	"github.com/skilodge/lesson-booking/internal/router"
	"github.com/skilodge/lesson-booking/internal/service"
	"github.com/skilodge/lesson-booking/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// One Redis client serves the pending payment store, the rate limiter
	// and the response cache. A nil client disables the middlewares but the
	// pending store is mandatory: without it approve can never run.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("redis: connection failed; pending payment store requires redis")
	}

	gw := gateway.NewClient(gateway.Config{
		BaseURL:      cfg.PayBaseURL,
		CID:          cfg.PayCID,
		SecretKey:    cfg.PaySecretKey,
		SecretKeyDev: cfg.PaySecretKeyDev,
		Mode:         cfg.PayMode,
		ApprovalURL:  cfg.PayApprovalURL,
		CancelURL:    cfg.PayCancelURL,
		FailURL:      cfg.PayFailURL,
		Timeout:      cfg.PayTimeout,
	})

	pending := store.NewPaymentStore(rdb, cfg.PendingTTL)
	ledger := repository.NewLedger(db)
	events := queue.NewPublisher()
	svc := service.NewPaymentService(gw, pending, ledger, events)

	// The reconciliation consumer follows up on payments that were
	// committed durably but never confirmed by the gateway.
	go func() {
		if err := queue.StartReconciliationConsumer(); err != nil {
			log.Printf("reconciliation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPayments(e, handler.NewPaymentHandler(svc), cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, gateway=%s)", addr, cfg.Env, cfg.PayMode)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
