package app

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"opportunityhub/config"
	"opportunityhub/internal/database"
	"opportunityhub/internal/domain"
	"opportunityhub/internal/fetch"
	"opportunityhub/internal/handler"
	"opportunityhub/internal/ingest"
	"opportunityhub/internal/repository"
	"opportunityhub/internal/scheduler"
	"opportunityhub/internal/service"
	"opportunityhub/pkg/email"
	"opportunityhub/pkg/ratelimit"
)

const (
	mutationRateLimit  = 5
	mutationRateWindow = time.Minute
)

type Application struct {
	Router    *mux.Router
	Config    *config.Config
	DBManager *database.Manager
	Scheduler *scheduler.Scheduler

	OpportunityHandler *handler.OpportunityHandler
	AlertHandler       *handler.AlertHandler

	limiter *ratelimit.Limiter
}

func New(cfg *config.Config) (*Application, error) {
	dbManager, err := database.NewManager(database.Config{
		ConnectionString: cfg.DatabaseURL,
		Host:             cfg.DBHost,
		Port:             cfg.DBPort,
		User:             cfg.DBUser,
		Password:         cfg.DBPassword,
		DBName:           cfg.DBName,
	})
	if err != nil {
		return nil, err
	}

	db := dbManager.GetDB()
	sourceRepository := repository.NewSourceRepository(db)
	opportunityRepository := repository.NewOpportunityRepository(db)
	preferencesRepository := repository.NewPreferencesRepository(db)
	alertRepository := repository.NewAlertRepository(db)
	userRepository := repository.NewUserRepository(db)

	if added, err := sourceRepository.Seed(defaultSources()); err != nil {
		log.Printf("Warning: seeding default sources failed: %v", err)
	} else if added > 0 {
		log.Printf("Seeded %d default source(s)", added)
	}

	fetcher := fetch.New(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
	pipeline := ingest.NewPipeline(sourceRepository, opportunityRepository, fetcher, cfg.MaxPerSource, cfg.AutoApprove)
	coordinator := ingest.NewCoordinator(pipeline.Run)

	opportunityService := service.NewOpportunityService(
		sourceRepository,
		opportunityRepository,
		preferencesRepository,
		coordinator,
		time.Duration(cfg.StalenessMinutes)*time.Minute,
		cfg.AutoRefresh,
	)

	var sender email.Sender
	smtpSender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	if err != nil {
		log.Printf("Warning: email sender initialization failed: %v", err)
		log.Println("Alert delivery will be skipped until SMTP is configured")
	} else {
		sender = smtpSender
	}

	alertService := service.NewAlertService(preferencesRepository, alertRepository, opportunityService, sender)

	var sched *scheduler.Scheduler
	if cfg.RefreshCronSpec != "" {
		sched = scheduler.New(coordinator, cfg.RefreshCronSpec)
	}

	app := &Application{
		Router:             mux.NewRouter(),
		Config:             cfg,
		DBManager:          dbManager,
		Scheduler:          sched,
		OpportunityHandler: handler.NewOpportunityHandler(opportunityService, sourceRepository, cfg.PageSize),
		AlertHandler:       handler.NewAlertHandler(alertService, preferencesRepository, userRepository),
		limiter:            ratelimit.NewLimiter(),
	}

	app.setupRoutes()

	return app, nil
}

func (a *Application) setupRoutes() {
	a.Router.HandleFunc("/health", a.health).Methods("GET")

	api := a.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/opportunities", a.OpportunityHandler.List).Methods("GET")
	api.HandleFunc("/opportunities/refresh", a.limitRate(a.OpportunityHandler.Refresh)).Methods("POST")
	api.HandleFunc("/sources", a.OpportunityHandler.ListSources).Methods("GET")
	api.HandleFunc("/users", a.AlertHandler.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id}/preferences", a.AlertHandler.UpdatePreferences).Methods("PUT")
	api.HandleFunc("/users/{id}/alerts", a.limitRate(a.AlertHandler.Generate)).Methods("POST")
	api.HandleFunc("/alerts/deliver", a.limitRate(a.AlertHandler.Deliver)).Methods("POST")
}

// limitRate throttles a handler per remote address using a sliding window.
func (a *Application) limitRate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !a.limiter.Allow(host+":"+r.URL.Path, mutationRateLimit, mutationRateWindow) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"Too many requests, slow down"}`))
			return
		}
		next(w, r)
	}
}

func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// StartScheduler begins periodic refresh cycles when a cron spec is
// configured.
func (a *Application) StartScheduler() error {
	if a.Scheduler == nil {
		return nil
	}
	return a.Scheduler.Start()
}

func (a *Application) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.DBManager != nil {
		return a.DBManager.Close()
	}
	return nil
}

func defaultSources() []domain.Source {
	seeds := config.DefaultSources()
	sources := make([]domain.Source, 0, len(seeds))
	for _, seed := range seeds {
		sources = append(sources, domain.Source{
			Name:   seed.Name,
			URL:    seed.URL,
			Kind:   domain.SourceKind(seed.Kind),
			Active: true,
		})
	}
	return sources
}
