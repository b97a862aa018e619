package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/logingood/snmp-go-querier/config"
	devsql "github.com/logingood/snmp-go-querier/devices/sql"
	"github.com/logingood/snmp-go-querier/internal/lgr"
	"github.com/logingood/snmp-go-querier/models"
	"github.com/logingood/snmp-go-querier/storer/chouse"
	"github.com/logingood/snmp-go-querier/worker"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := lgr.New(os.Getenv("LOG_LEVEL"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var cfg config.FromEnv
	if err := envconfig.Process(ctx, &cfg); err != nil {
		logger.Fatal("cannot read config", zap.Error(err))
	}

	// handle ctrl + c
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	db, err := sqlx.Connect("mysql", getConnStringFromCfg(&cfg))
	if err != nil {
		logger.Fatal("error create mysql conn", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("db did not ping", zap.Error(err))
	}

	inventory := devsql.New(db, cfg.DbQuery, logger)

	conn, err := clickhouse.Open(getClickHouseConn(&cfg))
	if err != nil {
		logger.Fatal("error create clickhouse conn", zap.Error(err))
	}

	storerGroup, sctx := errgroup.WithContext(ctx)
	storer := chouse.New(logger, conn, cfg.ClickhouseQueueLength, cfg.ClickhouseDb, cfg.ClickhouseTableName, cfg.ClickhouseFlushBatchSize)
	if err := storer.InitDb(sctx); err != nil {
		logger.Fatal("error init db", zap.Error(err))
	}
	storer.StartQueue(sctx, storerGroup)

	workerGroup, wctx := errgroup.WithContext(ctx)
	q := worker.New(logger, inventory, cfg.ScanInterval(), func(scan *models.DeviceScan) error {
		storer.Insert([]*models.DeviceScan{scan})
		return nil
	}, workerGroup, cfg.WorkersNum, cfg.QueueLength, cfg.RootOids, cfg.DeviceTimeout(), cfg.DeviceRetries)
	q.StartWorkerPool(wctx)

	group, qctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return q.StartDispatcher(qctx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("error occurred", zap.Error(err))
	} else {
		logger.Info("have a jolly day")
	}
}

func getConnStringFromCfg(cfg *config.FromEnv) string {
	return fmt.Sprintf("%s:%s@(%s:%s)/%s", cfg.DbUsername, cfg.DbPassword, cfg.DbHost, cfg.DbPort, cfg.DbName)
}

func getClickHouseConn(cfg *config.FromEnv) *clickhouse.Options {
	return &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%s", cfg.ClickhouseAddr, cfg.ClickhousePort)},
		Auth: clickhouse.Auth{
			Database: cfg.ClickhouseDb,
			Username: cfg.ClickhouseUsername,
			Password: cfg.ClickhousePassword,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	}
}
