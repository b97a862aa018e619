package query

import (
	"context"
	"sync"

	"github.com/gosnmp/gosnmp"
	"go.uber.org/zap"
)

// The shared registry holds one process-wide session. It is built lazily
// from the options of the first call after process start or CloseShared,
// and reused until the next CloseShared regardless of what options later
// calls carry.
var registry = struct {
	mu     sync.Mutex
	q      *Querier
	logger *zap.Logger
}{}

// sessionFactory builds the shared session; tests swap it out.
var sessionFactory = func(opts *Options) (Session, error) {
	return NewSession(opts)
}

// SetSharedLogger sets the logger used by shared-mode calls. Without it the
// shared querier logs nowhere.
func SetSharedLogger(logger *zap.Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.logger = logger
}

func sharedQuerier(opts *Options) (*Querier, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.q != nil {
		return registry.q, nil
	}
	sess, err := sessionFactory(opts)
	if err != nil {
		return nil, err
	}
	if err := sess.Connect(); err != nil {
		return nil, transportErr("connect", err)
	}
	registry.q = NewWithSession(sess, registry.logger)
	return registry.q, nil
}

// Get resolves a single OID through the shared session.
func Get(ctx context.Context, opts *Options, oid string) (Results, error) {
	q, err := sharedQuerier(opts)
	if err != nil {
		return nil, err
	}
	return q.Get(ctx, oid)
}

// GetAll resolves all requested OIDs through the shared session with one
// batched Get. An empty request short-circuits before the session is even
// constructed.
func GetAll(ctx context.Context, opts *Options, oids []string) (Results, error) {
	if len(oids) == 0 {
		return Results{}, nil
	}
	q, err := sharedQuerier(opts)
	if err != nil {
		return nil, err
	}
	return q.GetAll(ctx, oids)
}

// GetNext resolves the lexicographic successor of oid through the shared
// session.
func GetNext(ctx context.Context, opts *Options, oid string) (Results, error) {
	q, err := sharedQuerier(opts)
	if err != nil {
		return nil, err
	}
	return q.GetNext(ctx, oid)
}

// GetSubtree walks every root through the shared session.
func GetSubtree(ctx context.Context, opts *Options, oids []string) (SubtreeResults, error) {
	if len(oids) == 0 {
		return SubtreeResults{}, nil
	}
	q, err := sharedQuerier(opts)
	if err != nil {
		return nil, err
	}
	return q.GetSubtree(ctx, oids)
}

// Set assigns value to oid through the shared session.
func Set(ctx context.Context, opts *Options, oid string, typ gosnmp.Asn1BER, value interface{}) (Results, error) {
	q, err := sharedQuerier(opts)
	if err != nil {
		return nil, err
	}
	return q.Set(ctx, oid, typ, value)
}

// CloseShared tears the shared session down. The next shared-mode call
// builds a fresh session from its own options.
func CloseShared() error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.q == nil {
		return nil
	}
	err := registry.q.Close()
	registry.q = nil
	return err
}
