package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/megacare-dev/mega-care-api/auth"
	"github.com/megacare-dev/mega-care-api/clinicians"
	"github.com/megacare-dev/mega-care-api/config"
	"github.com/megacare-dev/mega-care-api/customers"
	"github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/line"
	"github.com/megacare-dev/mega-care-api/linking"
	"github.com/megacare-dev/mega-care-api/logger"
	"github.com/megacare-dev/mega-care-api/reports"
	"github.com/megacare-dev/mega-care-api/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const ServerTimeoutAmount = 20

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.Logger.Print("Starting Main Loop")

	// The readiness probe and the LINE endpoints carry no custom token:
	// login runs before one exists and the profile endpoint authenticates
	// with the LINE access token itself.
	skipper := RouteSkipper([]string{"/ready", "/v1/auth/line", "/v1/auth/line/profile"})
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(log))
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

// RegisterHandlers mounts every route under the versioned prefix.
func RegisterHandlers(e *echo.Echo, handler *Handler) {
	v1 := e.Group("/v1")

	v1.POST("/auth/line", handler.LineLogin)
	v1.GET("/auth/line/profile", handler.LineProfile)
	v1.GET("/users/status", handler.UserStatus)

	v1.GET("/customers/me", handler.GetMe)
	v1.POST("/customers/me", handler.CreateMe)
	v1.POST("/customers/me/link-device", handler.LinkDevice)

	v1.POST("/customers/me/devices", handler.AddDevice)
	v1.GET("/customers/me/devices", handler.ListDevices)
	v1.POST("/customers/me/masks", handler.AddMask)
	v1.GET("/customers/me/masks", handler.ListMasks)
	v1.POST("/customers/me/airTubing", handler.AddAirTubing)
	v1.GET("/customers/me/airTubing", handler.ListAirTubing)

	v1.POST("/customers/me/dailyReports", handler.UpsertDailyReport)
	v1.GET("/customers/me/dailyReports", handler.ListDailyReports)
	v1.GET("/customers/me/dailyReports/latest", handler.LatestDailyReport)
	v1.GET("/customers/me/dailyReports/:reportDate", handler.GetDailyReport)

	v1.GET("/clinician/patients", handler.ListMyPatients)
	v1.GET("/clinician/patients/:patientId", handler.GetMyPatient)
	v1.GET("/clinician/patients/:patientId/dailyReports", handler.ListMyPatientReports)
}

func MainLoop() {
	fx.New(
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			store.NewDocumentClient,
			customers.NewRepository,
			customers.NewService,
			clinicians.NewRepository,
			clinicians.NewService,
			line.NewClient,
			line.NewIDTokenVerifier,
			auth.NewTokenVerifier,
			auth.NewIssuer,
			auth.NewAuthenticator,
			linking.NewRegistry,
			linking.NewDeviceLinker,
			reports.NewAnalyzer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	).Run()
}
