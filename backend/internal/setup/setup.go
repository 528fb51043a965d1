package setup

import (
	"context"
	"time"

	"github.com/itchan-dev/forumapi/backend/internal/handler"
	"github.com/itchan-dev/forumapi/backend/internal/service"
	"github.com/itchan-dev/forumapi/backend/internal/storage/pg"
	"github.com/itchan-dev/forumapi/backend/internal/utils"
	"github.com/itchan-dev/forumapi/shared/config"
	"github.com/itchan-dev/forumapi/shared/jwt"
	"github.com/itchan-dev/forumapi/shared/logger"
	mw "github.com/itchan-dev/forumapi/shared/middleware"
	rl "github.com/itchan-dev/forumapi/shared/middleware/ratelimiter"
)

// Storage is everything the services need from persistence.
type Storage interface {
	service.ThreadStorage
	service.UserStorage
	service.AuthStorage
	handler.HealthChecker
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	LoginLimiter   *rl.UserRateLimiter
	ThreadLimiter  *rl.UserRateLimiter

	closeStorage func() error
}

// SetupDependencies connects to postgres, applies the schema and wires the services.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx); err != nil {
		storage.Cleanup()
		return nil, err
	}
	deps := Build(cfg, storage)
	deps.closeStorage = storage.Cleanup
	return deps, nil
}

// Build wires services and middleware on top of an existing storage.
func Build(cfg *config.Config, storage Storage) *Dependencies {
	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.AccessTokenAge())
	hasher := utils.NewBcryptHasher()

	thread := service.NewThread(storage, utils.NewIdGenerator("thread"))
	user := service.NewUser(storage, hasher, utils.NewIdGenerator("user"))
	auth := service.NewAuth(storage, hasher, tokens)

	return &Dependencies{
		Config:         cfg,
		Handler:        handler.New(thread, user, auth, storage),
		AuthMiddleware: mw.NewAuth(tokens),
		LoginLimiter:   rl.New(cfg.Public.LoginRatePerSecond, cfg.Public.LoginBurst, 1*time.Hour),
		ThreadLimiter:  rl.New(cfg.Public.ThreadRatePerSecond, cfg.Public.ThreadBurst, 1*time.Hour),
	}
}

// Close stops the rate limiters and closes the database pool if SetupDependencies opened it.
func (d *Dependencies) Close() {
	d.LoginLimiter.Stop()
	d.ThreadLimiter.Stop()
	if d.closeStorage != nil {
		if err := d.closeStorage(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}
}
