package devices

import (
	"context"

	"github.com/logingood/snmp-go-querier/models"
)

// Inventory lists the devices a scan run visits.
type Inventory interface {
	ListDevices(ctx context.Context) ([]models.Device, error)
}
