package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omercengiz/warehouse-pro/internal/alert"
	"github.com/omercengiz/warehouse-pro/internal/alertlog"
	"github.com/omercengiz/warehouse-pro/internal/auth"
	"github.com/omercengiz/warehouse-pro/internal/config"
	"github.com/omercengiz/warehouse-pro/internal/db"
	whhttp "github.com/omercengiz/warehouse-pro/internal/http"
	"github.com/omercengiz/warehouse-pro/internal/http/handlers"
	rl "github.com/omercengiz/warehouse-pro/internal/http/rate_limiter"
	"github.com/omercengiz/warehouse-pro/internal/inventory"
	"github.com/omercengiz/warehouse-pro/internal/repo"
	"github.com/omercengiz/warehouse-pro/internal/search"
	"github.com/omercengiz/warehouse-pro/internal/sms"
)

// @title Warehouse Pro API
// @version 1.0
// @description REST API for managing warehouse inventory items and stock-out alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("WAREHOUSE_CONFIG"))
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.Auth.JWTSecret)

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("❌ Could not run migrations:", err)
	}

	ctx := context.Background()

	var alertLog *alertlog.Log
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️ Redis unreachable, alert history disabled: %v", err)
		} else {
			defer rdb.Close()
			alertLog = alertlog.New(rdb, ctx, alertlog.SummaryConfig{
				From:         cfg.SMS.From,
				To:           cfg.Alerts.SummaryTo,
				Server:       cfg.SMS.SMTPServer,
				Port:         cfg.SMS.SMTPPort,
				User:         cfg.SMS.SMTPUser,
				Password:     cfg.SMS.SMTPPassword,
				AuthDisabled: cfg.SMS.AuthDisabled,
			})
			go alertLog.StartDailySummary(24 * time.Hour)
		}
	}

	gateway := sms.NewSMTPGateway(
		cfg.SMS.Enabled,
		cfg.SMS.GatewayDomain,
		cfg.SMS.From,
		cfg.SMS.SMTPServer,
		cfg.SMS.SMTPPort,
		cfg.SMS.SMTPUser,
		cfg.SMS.SMTPPassword,
		cfg.SMS.AuthDisabled,
	)
	dispatcher := alert.NewDispatcher(
		gateway,
		cfg.SMS.Destination,
		cfg.Alerts.SendInterval,
		cfg.Alerts.MaxRetries,
		alertLog,
	)
	go func() {
		for o := range dispatcher.Results() {
			log.Printf("alert outcome: item=%d status=%s reason=%s", o.ItemID, o.Status, o.Reason)
		}
	}()

	debouncer := alert.NewDebouncer(cfg.Alerts.DebounceWindow, dispatcher, func(n alert.Notification) {
		log.Printf("stock level settled: item=%d (%s) quantity=%d", n.ItemID, n.ItemName, n.Quantity)
	})
	defer debouncer.Close()

	index := search.NewIndex()
	svc := inventory.NewService(repo.NewPostgresItemRepository(database), index, debouncer)
	if err := svc.RebuildIndex(); err != nil {
		log.Fatal("❌ Could not build search index:", err)
	}

	handlers.SetInventoryService(svc)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetDispatcher(dispatcher)

	go rl.StartVisitorCleanupLoop()

	r := whhttp.NewRouter()
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Println("Server running at http://localhost" + addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
