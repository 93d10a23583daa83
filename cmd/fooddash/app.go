package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/access"
	"github.com/fooddash/client-go/internal/checkout"
	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
	"github.com/fooddash/client-go/internal/core/store"
	"github.com/fooddash/client-go/internal/infrastructure/api"
	"github.com/fooddash/client-go/internal/infrastructure/config"
	"github.com/fooddash/client-go/internal/infrastructure/storage"
	"github.com/fooddash/client-go/pkg/logger"
)

// app wires configuration, storage, the API client and the state stores
// together once per invocation. Commands reach everything through it.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	storage  ports.Storage
	client   *api.Client
	session  *store.SessionStore
	cart     *store.CartStore
	wishlist *store.WishlistStore
	checkout *checkout.Service
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	switch cfg.Storage {
	case "memory":
		a.storage = storage.NewMemory()
	case "redis":
		rdb, err := storage.ConnectRedis(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		a.storage = storage.NewRedis(rdb, "")
	case "file":
		fileStore, err := storage.OpenFile(cfg.StateFile())
		if err != nil {
			return err
		}
		a.storage = fileStore
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	// The token source closes over a.session, which is assigned right after;
	// requests only flow once commands run, well past this point.
	a.client = api.New(cfg.APIBaseURL, cfg.HTTPTimeout, func() string {
		if a.session == nil {
			return ""
		}
		return a.session.Token()
	}, a.log)
	a.session = store.NewSession(a.storage, a.client, a.log)
	a.client.OnUnauthorized(func() {
		a.session.HandleUnauthorized(context.Background())
		warn("your session has expired, please log in again")
	})

	a.cart = store.NewCart(a.storage, a.log)
	a.wishlist = store.NewWishlist(a.storage, a.log)
	a.checkout = checkout.NewService(a.cart, a.client, a.log)

	a.session.Restore(ctx)
	a.cart.Restore(ctx)
	a.wishlist.Restore(ctx)
	return nil
}

func (a *app) close() {
	if a.storage != nil {
		_ = a.storage.Close()
	}
}

// requireRole gates a command the way a routed view is gated: any
// authenticated role when allowed is empty, otherwise the role must match.
func (a *app) requireRole(allowed ...domain.Role) error {
	d := access.Evaluate(a.session.Status(), a.session.Role(), allowed, "")
	switch d.Action {
	case access.Grant:
		return nil
	case access.Redirect:
		if d.Target == access.LoginPath {
			return fmt.Errorf("%w: run `fooddash login` first", domain.ErrNotAuthenticated)
		}
		return fmt.Errorf("%w: this command is not available to role %s", domain.ErrPermission, a.session.Role())
	}
	return fmt.Errorf("session is still initializing")
}
