package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/IHARC/stevi-portal/config"
	"github.com/IHARC/stevi-portal/internal/adapters/pgstore"
	"github.com/IHARC/stevi-portal/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth   *service.AuthService
	Access *service.AccessService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Profiles *pgstore.ProfileRepo
	Grants   *pgstore.GrantRepo
	Orgs     *pgstore.OrgRepo
	Audit    *pgstore.AuditSink
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, logger *slog.Logger) *serviceRepositories {
	return &serviceRepositories{
		Profiles: pgstore.NewProfileRepo(db),
		Grants:   pgstore.NewGrantRepo(db),
		Orgs:     pgstore.NewOrgRepo(db),
		Audit:    pgstore.NewAuditSink(db, logger),
	}
}

// NewServices wires the auth and access services from their adapters.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, logger)

	authService := BuildAuthService(AuthConfig{
		Auth:        appCfg.Auth,
		Session:     appCfg.Session,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	accessService := service.NewAccessService(service.AccessServiceOptions{
		Profiles: repos.Profiles,
		Grants:   repos.Grants,
		Orgs:     repos.Orgs,
		Audit:    repos.Audit,
	})

	return ServiceContainer{
		Auth:   authService,
		Access: accessService,
	}
}
