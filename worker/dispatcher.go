package worker

import (
	"context"
	"time"

	"github.com/logingood/snmp-go-querier/devices"
	"github.com/logingood/snmp-go-querier/models"
	"github.com/logingood/snmp-go-querier/query"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// subtreeQuerier is what a worker needs from the query layer; tests stub it.
type subtreeQuerier interface {
	GetSubtree(ctx context.Context, oids []string) (query.SubtreeResults, error)
	Close() error
}

type Queue struct {
	logger        *zap.Logger
	inventory     devices.Inventory
	jobChan       chan *models.Device
	interval      time.Duration
	processor     StepFunc
	eg            *errgroup.Group
	numWorkers    int
	rootOids      []string
	deviceTimeout time.Duration
	deviceRetries int

	connect func(*models.Device) (subtreeQuerier, error)
}

func New(
	logger *zap.Logger,
	inventory devices.Inventory,
	interval time.Duration,
	processor StepFunc,
	eg *errgroup.Group,
	numWorkers int,
	queueLength int,
	rootOids []string,
	deviceTimeout time.Duration,
	deviceRetries int,
) *Queue {
	logger.Info("created new queue")
	q := &Queue{
		logger:        logger,
		inventory:     inventory,
		jobChan:       make(chan *models.Device, queueLength),
		interval:      interval,
		processor:     processor,
		eg:            eg,
		numWorkers:    numWorkers,
		rootOids:      rootOids,
		deviceTimeout: deviceTimeout,
		deviceRetries: deviceRetries,
	}
	q.connect = q.openQuerier
	return q
}

func (q *Queue) openQuerier(dev *models.Device) (subtreeQuerier, error) {
	opts, err := dev.QueryOptions(q.deviceTimeout, q.deviceRetries)
	if err != nil {
		return nil, err
	}
	return query.New(opts, q.logger)
}

func (q *Queue) StartDispatcher(ctx context.Context) error {
	ticker := time.NewTicker(q.interval)
	q.logger.Info("start dispatcher to run every", zap.Any("interval", q.interval))

	for {
		select {
		case <-ticker.C:
			q.logger.Info("woke up to list devices")
			devs, err := q.inventory.ListDevices(ctx)
			if err != nil {
				return err
			}
			q.logger.Info("found devices", zap.Int("devices", len(devs)))
			for _, dev := range devs {
				dev := dev
				q.logger.Debug("enqueue scan", zap.Any("device", dev.SysName))
				q.jobChan <- &dev
			}
		case <-ctx.Done():
			q.logger.Info("stopping dispatcher")
			ticker.Stop()
			return nil
		}
	}
}

func (q *Queue) StartWorkerPool(ctx context.Context) error {
	q.logger.Info("starting worker pool", zap.Int("workers", q.numWorkers))
	for i := 0; i < q.numWorkers; i++ {
		q.eg.Go(func() error {
			for job := range q.jobChan {
				job := job
				if err := q.worker(ctx, job); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return nil
}

func (q *Queue) worker(ctx context.Context, job *models.Device) error {
	select {
	case <-ctx.Done():
		q.logger.Info("worker is shutting down")
		return nil
	default:
		q.logger.Debug("received a job to process", zap.Any("device", job.Hostname))
		if err := q.process(ctx, job); err != nil {
			q.logger.Error("scan failed", zap.Any("device", job.Hostname), zap.Error(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	}
}

func (q *Queue) process(ctx context.Context, job *models.Device) error {
	scan := models.NewDeviceScan(job)
	run := Compose(
		// do something with the scan
		q.processor,

		// runs the snmp walks, always keep at the bottom
		q.collectStep(ctx, job),
	)
	return run(scan)
}

// collectStep walks the configured roots on the device and fills the scan
// before handing it to the next step.
func (q *Queue) collectStep(ctx context.Context, dev *models.Device) Step {
	return func(next StepFunc) StepFunc {
		return func(scan *models.DeviceScan) error {
			qr, err := q.connect(dev)
			if err != nil {
				return err
			}
			defer qr.Close()

			roots := make([]string, len(q.rootOids))
			for i, oid := range q.rootOids {
				roots[i] = query.ResolveOID(oid)
			}
			subtree, err := qr.GetSubtree(ctx, roots)
			if err != nil {
				return err
			}

			scan.Time = time.Now().UTC().Unix()
			for _, root := range roots {
				scan.AddSubtree(root, subtree[root])
			}
			return next(scan)
		}
	}
}
