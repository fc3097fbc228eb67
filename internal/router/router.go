package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "dogs-adoption/docs"
	mem "dogs-adoption/internal/adapters/storage/memory"
	pg "dogs-adoption/internal/adapters/storage/postgres"
	lite "dogs-adoption/internal/adapters/storage/sqlite"
	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/domain/identity"
	"dogs-adoption/internal/domain/users"
	"dogs-adoption/internal/middleware"
	"dogs-adoption/internal/platform/config"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/platform/metrics"
	"dogs-adoption/internal/platform/respond"
	"dogs-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Driver elige los repos (memory|postgres|sqlite). Con DB nil se usa memoria.
	Driver string
	DB     *sql.DB

	Identities identity.Store
	Tokens     auth.TokenCodec
	Pictures   dogs.PictureSource

	AccessTTL  time.Duration
	BcryptCost int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	identitySvc := identity.NewService(opts.Identities, opts.Tokens, opts.BcryptCost)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(metrics.Instrument)

	r.Use(middleware.AuthContext(identitySvc))

	// Se registran antes de los subrouters para que r.Route los herede.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Detail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Detail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	dogRepo, userRepo := repositories(opts.Driver, opts.DB)

	// usersSvc implementa dogs.OwnerResolver.
	usersSvc := users.NewService(userRepo, dogRepo)
	dogsSvc := dogs.NewService(dogRepo, opts.Pictures, usersSvc)

	identity.RegisterRoutes(r, identitySvc, opts.AccessTTL, log)
	users.RegisterRoutes(r, usersSvc, log)
	dogs.RegisterRoutes(r, dogsSvc, log)

	return r
}

func repositories(driver string, db *sql.DB) (dogs.Repository, users.Repository) {
	if db == nil {
		return mem.NewDogRepo(), mem.NewUserRepo()
	}
	switch driver {
	case config.DriverPostgres:
		return pg.NewDogsRepo(db), pg.NewUsersRepo(db)
	case config.DriverSQLite:
		return lite.NewDogsRepo(db), lite.NewUsersRepo(db)
	default:
		return mem.NewDogRepo(), mem.NewUserRepo()
	}
}
