package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agarwood/internal/config"
	"agarwood/internal/infra/db"
	"agarwood/internal/infra/memstore"
	"agarwood/internal/infra/mongostore"
	infraRepo "agarwood/internal/infra/repository"
	"agarwood/internal/logging"
	"agarwood/internal/server"
	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/gommon/log"
)

const bcryptCost = 12

func main() {
	if err := run(); err != nil {
		logging.Default().Fatalj(log.JSON{"kind": "error", "action": "startup", "err": err.Error()})
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New("agarwood", cfg.LogLevel, nil)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Repository生成（STORE_DRIVERで切り替え）
	stores, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	//JWT issuer / verifier
	jwtSvc := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)

	//Handler生成
	h := server.NewHandlers(stores, jwtSvc, bcryptCost)
	e := server.New(cfg, logger, h, jwtSvc)

	//Server起動
	addr := ":" + cfg.Port
	logger.Infoj(log.JSON{"kind": "info", "action": "server.start", "addr": addr, "store": cfg.StoreDriver})
	return server.Start(ctx, e, addr)
}

func openStores(ctx context.Context, cfg config.Config) (server.Stores, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		gormDB, err := db.Connect(ctx, cfg)
		if err != nil {
			return server.Stores{}, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return server.Stores{
			Products: infraRepo.NewProductGormRepository(gormDB),
			Carts:    infraRepo.NewCartGormRepository(gormDB),
			Orders:   infraRepo.NewOrderGormRepository(gormDB),
			Users:    infraRepo.NewUserGormRepository(gormDB),
			Contacts: infraRepo.NewContactGormRepository(gormDB),
			Tx:       infraRepo.NewTxManagerGorm(gormDB),
		}, closeFn, nil

	case config.StoreDriverMongo:
		client, mdb, err := db.ConnectMongo(ctx, cfg)
		if err != nil {
			return server.Stores{}, nil, err
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
		s := mongostore.New(mdb)
		return server.Stores{
			Products: s.Products(),
			Carts:    s.Carts(),
			Orders:   s.Orders(),
			Users:    s.Users(),
			Contacts: s.Contacts(),
			Tx:       s,
		}, closeFn, nil

	case config.StoreDriverMemory:
		s := memstore.New()
		return server.Stores{
			Products: s.Products(),
			Carts:    s.Carts(),
			Orders:   s.Orders(),
			Users:    s.Users(),
			Contacts: s.Contacts(),
			Tx:       s,
		}, func() {}, nil
	}
	return server.Stores{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
