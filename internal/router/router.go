package router

import (
	"database/sql"
	"net/http"
	"time"

	"progest/internal/adapters/auth/sessions"
	mem "progest/internal/adapters/storage/memory"
	pg "progest/internal/adapters/storage/postgres"
	"progest/internal/domain/accounts"
	"progest/internal/domain/analytics"
	"progest/internal/domain/animals"
	"progest/internal/domain/batches"
	"progest/internal/domain/owners"
	"progest/internal/domain/properties"
	"progest/internal/middleware"
	"progest/internal/platform/logger"
	"progest/internal/platform/metrics"
	"progest/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil se usa un store en memoria (con gauge de sesiones).
	Sessions auth.SessionStore

	Logger  logger.Logger
	Metrics *metrics.Metrics

	SessionTTL   time.Duration
	BcryptCost   int
	SecureCookie bool
}

// Stores son los repos de cada dominio sobre el mismo backend.
type Stores struct {
	Owners     owners.Repository
	Properties properties.Repository
	Animals    animals.Repository
	Batches    batches.Repository
	Users      accounts.Repository
	Analytics  analytics.Reader
}

func NewStores(db *sql.DB) Stores {
	if db != nil {
		return Stores{
			Owners:     pg.NewOwnersRepo(db),
			Properties: pg.NewPropertiesRepo(db),
			Animals:    pg.NewAnimalsRepo(db),
			Batches:    pg.NewBatchesRepo(db),
			Users:      pg.NewUsersRepo(db),
			Analytics:  pg.NewAnalyticsReader(db),
		}
	}

	s := mem.NewStore()
	return Stores{
		Owners:     mem.NewOwnersRepo(s),
		Properties: mem.NewPropertiesRepo(s),
		Animals:    mem.NewAnimalsRepo(s),
		Batches:    mem.NewBatchesRepo(s),
		Users:      mem.NewUsersRepo(s),
		Analytics:  mem.NewAnalyticsReader(s),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	sess := opts.Sessions
	if sess == nil {
		sess = sessions.NewMemoryStore(sessions.WithActiveGauge(m.SetActiveSessions))
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)
	r.Use(middleware.AuthContext(sess))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	stores := NewStores(opts.DB)

	// Services por módulo
	accountsSvc := accounts.NewService(stores.Users, sess, accounts.Options{
		SessionTTL: opts.SessionTTL,
		BcryptCost: opts.BcryptCost,
	})
	ownersSvc := owners.NewService(stores.Owners)
	propertiesSvc := properties.NewService(stores.Properties)
	animalsSvc := animals.NewService(stores.Animals)
	batchesSvc := batches.NewService(stores.Batches)
	analyticsSvc := analytics.NewService(stores.Analytics, log.With(map[string]any{"component": "analytics"}), m.ObserveQuery)

	r.Route("/api", func(api chi.Router) {
		// register/login/logout son públicos; /auth/me se protege adentro
		accounts.RegisterRoutes(api, accountsSvc, log, accounts.HandlerOptions{SecureCookie: opts.SecureCookie})

		api.Group(func(g chi.Router) {
			g.Use(middleware.RequireAuth)

			analytics.RegisterRoutes(g, analyticsSvc)
			owners.RegisterRoutes(g, ownersSvc, log)
			properties.RegisterRoutes(g, propertiesSvc, log)
			animals.RegisterRoutes(g, animalsSvc, log)
			batches.RegisterRoutes(g, batchesSvc, log)
		})
	})

	return r
}
