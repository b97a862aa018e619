package sql

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/logingood/snmp-go-querier/models"
	"go.uber.org/zap"
)

// ListQuery reads the LibreNMS devices table; disabled devices are skipped.
const ListQuery = `SELECT device_id, hostname, sysName, community, authlevel, authname, authpass, authalgo, cryptopass, cryptoalgo, snmpver, port, transport, sysObjectID, sysDescr, sysContact, version, hardware, os, status FROM devices WHERE status = 1;`

type Client struct {
	db     *sqlx.DB
	query  string
	logger *zap.Logger
}

// New builds an inventory client. An empty query falls back to ListQuery.
func New(db *sqlx.DB, query string, logger *zap.Logger) *Client {
	if query == "" {
		query = ListQuery
	}
	return &Client{
		db:     db,
		query:  query,
		logger: logger,
	}
}

func (c *Client) ListDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	err := c.db.SelectContext(ctx, &devices, c.query)
	if err != nil {
		c.logger.Error("error list devices", zap.Error(err))
	}
	return devices, err
}
