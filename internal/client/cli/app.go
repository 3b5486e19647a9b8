package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/TheReeds/turisync/internal/client/client"
	"github.com/TheReeds/turisync/internal/client/config"
	"github.com/TheReeds/turisync/internal/client/remote"
	"github.com/TheReeds/turisync/internal/client/services"
	"github.com/TheReeds/turisync/internal/logging"
)

type App struct {
	config         *config.Config
	store          *client.Store
	vendors        services.VendorService
	municipalities services.MunicipalityService
	log            logging.Logger
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := client.InitDatabase(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	source := remote.NewHTTPSource(c.APIBaseURL, c.RequestTimeout)

	vs := services.NewVendorService(store, source, log)
	ms := services.NewMunicipalityService(store, source, log)

	return &App{config: c, store: store, vendors: vs, municipalities: ms, log: log}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}
