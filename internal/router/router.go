package router

import (
	"net/http"
	"time"

	mem "vet-clinic-backend/internal/adapters/storage/memory"
	pg "vet-clinic-backend/internal/adapters/storage/postgres"
	"vet-clinic-backend/internal/domain/pets"
	"vet-clinic-backend/internal/middleware"
	"vet-clinic-backend/internal/platform/logger"
	"vet-clinic-backend/internal/ports/guardians"

	_ "vet-clinic-backend/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

type Options struct {
	// Opcional: si viene, usa Postgres (gorm). Si no, in-memory.
	DB *gorm.DB

	// Opcional: si viene, se verifica el tutor al crear mascotas.
	Guardians guardians.Directory

	Logger logger.Logger

	// RateLimitRPS <= 0 = sin límite.
	RateLimitRPS   float64
	RateLimitBurst int

	// Clock para tests; nil = time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	metrics := middleware.NewMetrics("vet_clinic")

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	svcOpts := []pets.Option{pets.WithLogger(log)}
	if opts.Guardians != nil {
		svcOpts = append(svcOpts, pets.WithGuardianDirectory(opts.Guardians))
	}
	if opts.Now != nil {
		svcOpts = append(svcOpts, pets.WithClock(opts.Now))
	}
	petsSvc := pets.NewService(petRepo, svcOpts...)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
		pets.RegisterRoutes(api, petsSvc)
	})

	return r
}
