package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/cubestats/analytics/pkg/config"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/datasource"
	"github.com/cubestats/analytics/pkg/service"
	"github.com/cubestats/analytics/pkg/store/sql"
)

func launchServer(ctx context.Context, cfg *config.Config) error {
	app := fiber.New(fiber.Config{
		BodyLimit:             16 * 1024 * 1024,
		ReadBufferSize:        16384,
		ReadTimeout:           cfg.ReadTimeout.Duration,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "analytics/" + cfg.Version,
		DisableStartupMessage: true,
	})

	app.Use(compress.New())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(logger.New(logger.Config{
		Format: "${status} - ${latency} ${method} ${path}\n",
		Output: logrus.StandardLogger().Writer(),
	}))

	apiApp, err := newAPIApp(cfg)
	if err != nil {
		return err
	}
	app.Mount("/api/1.0", apiApp)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Version)
	})

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout.Duration); err != nil {
			logrus.Errorf("Failed to gracefully shutdown analytics server: %v", err)
		}
	}()

	logrus.Infof("Analytics server listening on %s", cfg.Address)

	return app.Listen(cfg.Address)
}

func newAPIApp(cfg *config.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	parser, err := NewHTTPRequestParser()
	if err != nil {
		return nil, err
	}

	analyticsStore, err := sql.NewSQLStore(logrus.StandardLogger(), cfg)
	if err != nil {
		return nil, err
	}

	registry := newDatasourceRegistry(cfg, analyticsStore)

	routes := &routes{
		datasets:   service.NewDatasetService(logrus.StandardLogger(), analyticsStore),
		shares:     service.NewShareService(logrus.StandardLogger(), cfg, analyticsStore),
		thresholds: service.NewThresholdService(logrus.StandardLogger(), analyticsStore),
		dataloads:  service.NewDataService(logrus.StandardLogger(), analyticsStore, registry),
		registry:   registry,
		parser:     parser,
	}
	routes.register(app)

	return app, nil
}

// newDatasourceRegistry binds the six built-in connectors. External handlers
// join here as an explicit startup step, not through runtime discovery.
func newDatasourceRegistry(cfg *config.Config, rows datasource.RowReader) *datasource.Registry {
	registry := datasource.NewRegistry(logrus.StandardLogger())
	registry.RegisterBuiltin(datasource.TypeInternalFile, datasource.NewFile(cfg.DataRoot))
	registry.RegisterBuiltin(datasource.TypeInternalDB, datasource.NewDatabase(rows))
	registry.RegisterBuiltin(datasource.TypeGit, datasource.NewGit(nil))
	registry.RegisterBuiltin(datasource.TypeExternalFile, datasource.NewExternalFile(nil))
	registry.RegisterBuiltin(datasource.TypeRegex, datasource.NewRegex(nil))
	registry.RegisterBuiltin(datasource.TypeJSON, datasource.NewJSON(nil))

	return registry
}

func apiErrorHandler(c *fiber.Ctx, err error) error {
	var e *contract.Error
	if !errors.As(err, &e) {
		code := contract.ErrorCodeInternalError

		var f *fiber.Error
		if errors.As(err, &f) {
			switch f.Code {
			case fiber.StatusBadRequest:
				code = contract.ErrorCodeBadRequest
			case fiber.StatusNotFound:
				code = contract.ErrorCodeEndpointNotFound
			}
		}

		e = contract.NewError(code, err.Error())
	}

	var fn func(format string, args ...any)

	switch e.StatusCode() {
	case fiber.StatusBadRequest:
		fn = logrus.Infof
	case fiber.StatusNotFound:
		fn = logrus.Debugf
	case fiber.StatusBadGateway:
		fn = logrus.Warnf
	default:
		fn = logrus.Errorf
	}

	fn("Error encountered in %s %s: %s", c.Method(), c.Path(), err)

	return c.Status(e.StatusCode()).JSON(e)
}
