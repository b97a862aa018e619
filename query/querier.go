// Package query is a thin convenience layer over gosnmp: it normalizes OID
// formatting, batches Get requests and fans subtree walks out across
// multiple roots, folding everything into maps keyed by canonical
// (leading-dot) OIDs. Protocol encoding, transport, retries and timeouts
// all stay with gosnmp.
package query

import (
	"context"

	"github.com/gosnmp/gosnmp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Results maps canonical OIDs to the binding returned for each of them.
type Results map[string]gosnmp.SnmpPDU

// SubtreeResults maps each canonical root OID to the bindings found under
// it, in the order the device returned them.
type SubtreeResults map[string][]gosnmp.SnmpPDU

// Querier dispatches requests through one Session and aggregates the
// responses.
type Querier struct {
	sess   Session
	logger *zap.Logger
}

// New builds a querier that owns its session, connected eagerly. Close
// tears the session down; the querier is not usable afterwards.
func New(opts *Options, logger *zap.Logger) (*Querier, error) {
	sess, err := NewSession(opts)
	if err != nil {
		return nil, err
	}
	if err := sess.Connect(); err != nil {
		return nil, transportErr("connect", err)
	}
	return NewWithSession(sess, logger), nil
}

// NewWithSession wraps an externally supplied session. The caller keeps
// ownership of the session's lifecycle unless it lets Close do it.
func NewWithSession(sess Session, logger *zap.Logger) *Querier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Querier{sess: sess, logger: logger}
}

// Close releases the underlying session.
func (q *Querier) Close() error {
	return q.sess.Close()
}

// Get resolves a single OID.
func (q *Querier) Get(ctx context.Context, oid string) (Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	packet, err := q.sess.Get([]string{oid})
	if err != nil {
		q.logger.Error("get failed", zap.String("oid", oid), zap.Error(err))
		return nil, transportErr("get", err)
	}
	if err := packetErr("get", packet); err != nil {
		q.logger.Error("get failed", zap.String("oid", oid), zap.Error(err))
		return nil, err
	}
	return collect(packet.Variables), nil
}

// GetAll resolves all requested OIDs with one batched Get; the session
// decides how many fit per packet. An empty request returns an empty map
// without touching the wire.
func (q *Querier) GetAll(ctx context.Context, oids []string) (Results, error) {
	if len(oids) == 0 {
		return Results{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	packet, err := q.sess.Get(oids)
	if err != nil {
		q.logger.Error("batched get failed", zap.Strings("oids", oids), zap.Error(err))
		return nil, transportErr("get", err)
	}
	if err := packetErr("get", packet); err != nil {
		q.logger.Error("batched get failed", zap.Strings("oids", oids), zap.Error(err))
		return nil, err
	}
	return collect(packet.Variables), nil
}

// GetNext resolves the lexicographic successor of oid.
func (q *Querier) GetNext(ctx context.Context, oid string) (Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	packet, err := q.sess.GetNext([]string{oid})
	if err != nil {
		q.logger.Error("getnext failed", zap.String("oid", oid), zap.Error(err))
		return nil, transportErr("getnext", err)
	}
	if err := packetErr("getnext", packet); err != nil {
		q.logger.Error("getnext failed", zap.String("oid", oid), zap.Error(err))
		return nil, err
	}
	return collect(packet.Variables), nil
}

// GetSubtree walks every root concurrently and keys each walk's bindings by
// its canonical root OID. All-or-nothing: the first failed walk rejects the
// whole call and any walks that already finished are discarded.
func (q *Querier) GetSubtree(ctx context.Context, oids []string) (SubtreeResults, error) {
	if len(oids) == 0 {
		return SubtreeResults{}, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	walks := make([][]gosnmp.SnmpPDU, len(oids))
	for i, oid := range oids {
		i, oid := i, oid
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pdus, err := q.sess.WalkAll(oid)
			if err != nil {
				q.logger.Error("walk failed", zap.String("root", oid), zap.Error(err))
				return transportErr("walk", err)
			}
			walks[i] = pdus
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make(SubtreeResults, len(oids))
	for i, oid := range oids {
		list := make([]gosnmp.SnmpPDU, len(walks[i]))
		for j, pdu := range walks[i] {
			pdu.Name = CanonicalOID(pdu.Name)
			list[j] = pdu
		}
		out[CanonicalOID(oid)] = list
	}
	return out, nil
}

// Set assigns value to oid. A zero typ dispatches a Null varbind, the
// underlying library's representation of an absent value.
func (q *Querier) Set(ctx context.Context, oid string, typ gosnmp.Asn1BER, value interface{}) (Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if typ == 0 {
		typ = gosnmp.Null
	}
	packet, err := q.sess.Set([]gosnmp.SnmpPDU{{Name: oid, Type: typ, Value: value}})
	if err != nil {
		q.logger.Error("set failed", zap.String("oid", oid), zap.Error(err))
		return nil, transportErr("set", err)
	}
	if err := packetErr("set", packet); err != nil {
		q.logger.Error("set failed", zap.String("oid", oid), zap.Error(err))
		return nil, err
	}
	return collect(packet.Variables), nil
}

// Fetch resolves all requested OIDs.
//
// Deprecated: use GetAll.
func (q *Querier) Fetch(ctx context.Context, oids []string) (Results, error) {
	return q.GetAll(ctx, oids)
}

// Walk walks every root.
//
// Deprecated: use GetSubtree.
func (q *Querier) Walk(ctx context.Context, oids []string) (SubtreeResults, error) {
	return q.GetSubtree(ctx, oids)
}

// collect rewrites every binding's name to canonical form and keys the map
// by it. gosnmp already reports leading-dot names; canonicalisation is
// idempotent so applying it here covers sessions that do not.
func collect(pdus []gosnmp.SnmpPDU) Results {
	out := make(Results, len(pdus))
	for _, pdu := range pdus {
		pdu.Name = CanonicalOID(pdu.Name)
		out[pdu.Name] = pdu
	}
	return out
}
