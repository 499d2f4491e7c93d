package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/mkravtsov/canteen-api/internal/config"
	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/filestore"
	"github.com/mkravtsov/canteen-api/internal/repository/pgrepo"
	"github.com/mkravtsov/canteen-api/internal/service"
	"github.com/mkravtsov/canteen-api/internal/transport/api"
	"github.com/mkravtsov/canteen-api/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret))
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	uploads, uploadsErr := filestore.NewDiskStore(a.Config.UploadsDir)
	if uploadsErr != nil {
		return fmt.Errorf("app run: %s", uploadsErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:       a.Logger,
		UserService:  services.UserService,
		AdminService: services.AdminService,
		OrderService: services.OrderService,
		Uploads:      uploads,
		JWTSecretKey: []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[domain.RepositoryName]uow.RepositoryFactory{
		domain.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		domain.AdminRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAdminRepository(dbtx)
		},
		domain.CashierOrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCashierOrderRepository(dbtx)
		},
		domain.CartOrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCartOrderRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
