package query

import (
	"errors"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"
)

var (
	ErrNoHost         = errors.New("options must carry a host")
	ErrBadVersion     = errors.New("unsupported snmp version")
	ErrNoCommunity    = errors.New("bad community for v2c, must have a community")
	ErrBadSecLevel    = errors.New("unsupported security level")
	ErrBadCredentials = errors.New("v3 requires sec level, auth name, auth pass and crypto pass")
)

// Session is the transport handle every request dispatches through. It is a
// dumb handle: retries, timeouts, packet splitting and all protocol mechanics
// belong to the implementation. Implementations must be safe for concurrent
// use, because subtree walks run in parallel over one session.
type Session interface {
	Connect() error
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	GetNext(oids []string) (*gosnmp.SnmpPacket, error)
	Set(pdus []gosnmp.SnmpPDU) (*gosnmp.SnmpPacket, error)
	WalkAll(rootOid string) ([]gosnmp.SnmpPDU, error)
	Close() error
}

// Options configure the underlying gosnmp session. Beyond mapping the
// version and security enumerations they are forwarded uninterpreted.
type Options struct {
	Host      string
	Port      uint16
	Transport string
	Version   string // "1", "v2c" or "v3"
	Community string

	// v3 only
	SecLevel   string // noAuthNoPriv, authNoPriv or authPriv
	AuthName   string
	AuthPass   string
	CryptoPass string

	Timeout time.Duration
	Retries int
	MaxOids int
}

// NewSession builds a gosnmp-backed session from opts without connecting it.
func NewSession(opts *Options) (Session, error) {
	g, err := newGoSNMP(opts)
	if err != nil {
		return nil, err
	}
	return &gosnmpSession{client: g}, nil
}

func newGoSNMP(opts *Options) (*gosnmp.GoSNMP, error) {
	if opts == nil || opts.Host == "" {
		return nil, ErrNoHost
	}

	g := &gosnmp.GoSNMP{
		Port:                    161,
		Retries:                 3,
		Timeout:                 5 * time.Second,
		Transport:               "udp",
		Target:                  opts.Host,
		UseUnconnectedUDPSocket: true,
		MaxOids:                 30,
	}
	if opts.Port != 0 {
		g.Port = opts.Port
	}
	if opts.Transport != "" {
		g.Transport = opts.Transport
	}
	if opts.Timeout != 0 {
		g.Timeout = opts.Timeout
	}
	if opts.Retries != 0 {
		g.Retries = opts.Retries
	}
	if opts.MaxOids != 0 {
		g.MaxOids = opts.MaxOids
	}

	switch opts.Version {
	case "1":
		g.Version = gosnmp.Version1
		g.Community = opts.Community
	case "v2c":
		g.Version = gosnmp.Version2c
		if opts.Community == "" {
			return nil, ErrNoCommunity
		}
		g.Community = opts.Community
	case "v3":
		if opts.AuthName == "" || opts.AuthPass == "" || opts.CryptoPass == "" {
			return nil, ErrBadCredentials
		}
		g.Version = gosnmp.Version3
		g.SecurityModel = gosnmp.UserSecurityModel
		g.SecurityParameters = &gosnmp.UsmSecurityParameters{
			UserName:                 opts.AuthName,
			AuthenticationProtocol:   gosnmp.SHA,
			AuthenticationPassphrase: opts.AuthPass,
			PrivacyProtocol:          gosnmp.AES,
			PrivacyPassphrase:        opts.CryptoPass,
		}

		switch opts.SecLevel {
		case "noAuthNoPriv":
			g.MsgFlags = gosnmp.NoAuthNoPriv
		case "authNoPriv":
			g.MsgFlags = gosnmp.AuthNoPriv
		case "authPriv":
			g.MsgFlags = gosnmp.AuthPriv
		default:
			return nil, ErrBadSecLevel
		}
	default:
		return nil, ErrBadVersion
	}

	return g, nil
}

// gosnmp.GoSNMP is not goroutine safe and concurrent walks share one
// socket, so every call holds the session lock. The transport serializes
// at the session boundary, the querier above stays lock free.
type gosnmpSession struct {
	mu     sync.Mutex
	client *gosnmp.GoSNMP
}

func (s *gosnmpSession) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Connect()
}

func (s *gosnmpSession) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Get(oids)
}

func (s *gosnmpSession) GetNext(oids []string) (*gosnmp.SnmpPacket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.GetNext(oids)
}

func (s *gosnmpSession) Set(pdus []gosnmp.SnmpPDU) (*gosnmp.SnmpPacket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Set(pdus)
}

func (s *gosnmpSession) WalkAll(rootOid string) ([]gosnmp.SnmpPDU, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.WalkAll(rootOid)
}

func (s *gosnmpSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client.Conn == nil {
		return nil
	}
	return s.client.Conn.Close()
}
