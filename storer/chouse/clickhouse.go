package chouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/logingood/snmp-go-querier/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ClickhouseClient struct {
	dbName         string
	tableName      string
	flushBatchSize int
	conn           driver.Conn
	queue          chan *models.DeviceScan
	logger         *zap.Logger

	// insertFn lets tests run the queue without a live connection
	insertFn func([]*models.DeviceScan) error
}

func New(logger *zap.Logger, conn driver.Conn, queueSize int, dbName, tableName string, flushBatchSize int) *ClickhouseClient {
	c := &ClickhouseClient{
		logger:         logger,
		conn:           conn,
		queue:          make(chan *models.DeviceScan, queueSize),
		dbName:         dbName,
		tableName:      tableName,
		flushBatchSize: flushBatchSize,
	}
	c.insertFn = c.insert
	return c
}

func (c *ClickhouseClient) Insert(scans []*models.DeviceScan) {
	for _, scan := range scans {
		c.logger.Debug("enqueue scan", zap.String("hostname", scan.Hostname), zap.Int("rows", len(scan.Rows)))
		c.queue <- scan
	}
}

func (c *ClickhouseClient) StartQueue(ctx context.Context, errGroup *errgroup.Group) {
	errGroup.Go(func() error {
		scans := []*models.DeviceScan{}
		for {
			select {
			case j := <-c.queue:
				scans = append(scans, j)
				if len(scans) == c.flushBatchSize {
					c.logger.Info("flushing scans", zap.Int("scans", len(scans)))
					if err := c.insertFn(scans); err != nil {
						c.logger.Error("error insert scans", zap.Error(err))
					}
					scans = nil
				}
			case <-ctx.Done():
				// drain whatever is still queued, then flush the residue
				for {
					select {
					case j := <-c.queue:
						scans = append(scans, j)
						continue
					default:
					}
					break
				}
				if len(scans) > 0 {
					c.logger.Info("flushing scans on shutdown", zap.Int("scans", len(scans)))
					if err := c.insertFn(scans); err != nil {
						c.logger.Error("error insert scans", zap.Error(err))
					}
				}
				return ctx.Err()
			}
		}
	})
}

func (c *ClickhouseClient) insert(scans []*models.DeviceScan) error {
	batch, err := c.conn.PrepareBatch(context.Background(), fmt.Sprintf("INSERT INTO %s.%s", c.dbName, c.tableName))
	if err != nil {
		return err
	}

	rows := 0
	for _, scan := range scans {
		for _, row := range scan.Rows {
			if err := batch.Append(
				row.Time,
				row.Hostname,
				row.SysName,
				row.RootOid,
				row.Oid,
				row.ValueType,
				row.Value,
			); err != nil {
				return err
			}
			rows++
		}
	}

	if err := batch.Send(); err != nil {
		return err
	}
	c.logger.Info("sent successfully", zap.Int("rows", rows))
	return nil
}

func (c *ClickhouseClient) InitDb(ctx context.Context) error {
	stm := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s.%s (
		time Int64,
		hostname VARCHAR(255),
		sys_name VARCHAR(255),
		root_oid VARCHAR(255),
		oid VARCHAR(255),
		value_type VARCHAR(64),
		value String
	)
	ENGINE = MergeTree
	ORDER BY (hostname, oid, time)`,
		c.dbName, c.tableName)
	return c.conn.Exec(ctx, stm)
}
