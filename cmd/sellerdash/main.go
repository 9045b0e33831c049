package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sellerdash/client/internal/application/dashboard"
	"github.com/sellerdash/client/internal/domain/seller"
	"github.com/sellerdash/client/internal/infrastructure/api"
	"github.com/sellerdash/client/internal/infrastructure/config"
	"github.com/sellerdash/client/internal/infrastructure/logger"
	"github.com/sellerdash/client/internal/infrastructure/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal("failed to build store", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, store, os.Args[1:]); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, store *dashboard.Store, args []string) error {
	command := "summary"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "login":
		if len(args) < 2 {
			return fmt.Errorf("usage: sellerdash login <token>")
		}
		return store.SetToken(ctx, args[1])
	case "logout":
		return store.ClearSession(ctx)
	case "summary":
		return printSummary(ctx, store)
	default:
		return fmt.Errorf("unknown command %q (expected login, logout or summary)", command)
	}
}

func buildStore(cfg *config.Config, log *zap.Logger) (*dashboard.Store, error) {
	tokens, err := buildTokenStore(cfg)
	if err != nil {
		return nil, err
	}
	sess := session.NewManager(tokens, log)

	client, err := api.NewClient(&api.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, sess)
	if err != nil {
		return nil, err
	}
	return dashboard.New(client, sess, log), nil
}

func buildTokenStore(cfg *config.Config) (session.TokenStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPass,
			DB:       cfg.Session.RedisDB,
		})
		return session.NewRedisTokenStore(client, cfg.Session.RedisKey, cfg.Session.RedisTTL), nil
	case "memory":
		return session.NewMemoryTokenStore(), nil
	default:
		path := cfg.Session.TokenPath
		if path == "" {
			var err error
			if path, err = session.DefaultTokenPath(); err != nil {
				return nil, err
			}
		}
		return session.NewFileTokenStore(path), nil
	}
}

// printSummary refreshes every slot and renders a plain-text dashboard.
// Slot failures are not fatal: whatever loaded is shown, the rest renders
// as unavailable, mirroring how the dashboard pages degrade.
func printSummary(ctx context.Context, store *dashboard.Store) error {
	store.InitSession(ctx)
	if store.Token() == "" {
		return fmt.Errorf("no session; run: sellerdash login <token>")
	}

	_, _ = store.FetchInventory(ctx)
	_, _ = store.FetchProfile(ctx)
	_, _ = store.FetchRevenue(ctx)

	if p := store.Profile(); p != nil {
		fmt.Printf("Store: %s (%s)\n", p.StoreName, p.Email)
	}

	if status := store.OrdersStatus(); status.State == dashboard.SlotLoaded {
		stats := seller.SummarizeOrders(store.Orders())
		fmt.Printf("Orders: %d total, %d pending, %d delivered, revenue %s\n",
			stats.Total, stats.Pending, stats.Delivered, seller.FormatAmount(stats.Revenue))
	} else {
		fmt.Println("Orders: unavailable")
	}

	if status := store.ProductsStatus(); status.State == dashboard.SlotLoaded {
		fmt.Printf("Products: %d listed\n", len(store.Products()))
	} else {
		fmt.Println("Products: unavailable")
	}

	if low := seller.LowStock(store.Inventory(), 5); len(low) > 0 {
		fmt.Printf("Low stock: %d items\n", len(low))
	}

	if r := store.Revenue(); r != nil {
		fmt.Printf("Revenue: today %s, month %s, year %s\n",
			seller.FormatAmount(r.Day), seller.FormatAmount(r.Month), seller.FormatAmount(r.Year))
	}

	for name, status := range map[string]dashboard.SlotStatus{
		"orders":    store.OrdersStatus(),
		"products":  store.ProductsStatus(),
		"inventory": store.InventoryStatus(),
		"profile":   store.ProfileStatus(),
		"revenue":   store.RevenueStatus(),
	} {
		if status.LastError != nil {
			fmt.Printf("warning: %s data may be outdated (%s at %s)\n",
				name, status.LastError.Kind, status.LastError.OccurredAt.Format("15:04:05"))
		}
	}
	return nil
}
