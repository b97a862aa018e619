// snmpq runs one SNMP operation against one target and prints the
// normalized results, one binding per line. Everything is configured
// through the environment, e.g.:
//
//	SNMP_TARGET=192.0.2.10 SNMP_COMMUNITY=public \
//	SNMP_OP=getsubtree SNMP_OIDS=ifDescr,ifAlias snmpq
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/logingood/snmp-go-querier/internal/lgr"
	"github.com/logingood/snmp-go-querier/models"
	"github.com/logingood/snmp-go-querier/query"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
)

type cliConfig struct {
	Target     string        `env:"SNMP_TARGET,required"`
	Port       uint16        `env:"SNMP_PORT"`
	Version    string        `env:"SNMP_VERSION,default=v2c"`
	Community  string        `env:"SNMP_COMMUNITY"`
	SecLevel   string        `env:"SNMP_SEC_LEVEL"`
	AuthName   string        `env:"SNMP_AUTH_NAME"`
	AuthPass   string        `env:"SNMP_AUTH_PASS"`
	CryptoPass string        `env:"SNMP_CRYPTO_PASS"`
	Timeout    time.Duration `env:"SNMP_TIMEOUT"`
	Retries    int           `env:"SNMP_RETRIES"`

	// get, getall, getnext, getsubtree or set
	Op       string   `env:"SNMP_OP,default=get"`
	Oids     []string `env:"SNMP_OIDS,required"`
	SetType  string   `env:"SNMP_SET_TYPE"`
	SetValue string   `env:"SNMP_SET_VALUE"`
}

func main() {
	logger := lgr.New(os.Getenv("LOG_LEVEL"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cfg cliConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		logger.Fatal("cannot read config", zap.Error(err))
	}

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

	q, err := query.New(&query.Options{
		Host:       cfg.Target,
		Port:       cfg.Port,
		Version:    cfg.Version,
		Community:  cfg.Community,
		SecLevel:   cfg.SecLevel,
		AuthName:   cfg.AuthName,
		AuthPass:   cfg.AuthPass,
		CryptoPass: cfg.CryptoPass,
		Timeout:    cfg.Timeout,
		Retries:    cfg.Retries,
	}, logger)
	if err != nil {
		logger.Fatal("cannot open session", zap.Error(err))
	}
	defer q.Close()

	oids := make([]string, len(cfg.Oids))
	for i, oid := range cfg.Oids {
		oids[i] = query.ResolveOID(oid)
	}

	if err := run(ctx, q, &cfg, oids); err != nil {
		logger.Fatal("query failed", zap.Error(err))
	}
}

func run(ctx context.Context, q *query.Querier, cfg *cliConfig, oids []string) error {
	switch cfg.Op {
	case "get":
		results, err := q.Get(ctx, oids[0])
		if err != nil {
			return err
		}
		printResults(results)
	case "getall":
		results, err := q.GetAll(ctx, oids)
		if err != nil {
			return err
		}
		printResults(results)
	case "getnext":
		results, err := q.GetNext(ctx, oids[0])
		if err != nil {
			return err
		}
		printResults(results)
	case "getsubtree":
		subtree, err := q.GetSubtree(ctx, oids)
		if err != nil {
			return err
		}
		roots := make([]string, 0, len(subtree))
		for root := range subtree {
			roots = append(roots, root)
		}
		sort.Strings(roots)
		for _, root := range roots {
			fmt.Printf("%s (%d bindings)\n", root, len(subtree[root]))
			for _, pdu := range subtree[root] {
				printBinding(pdu)
			}
		}
	case "set":
		typ, value, err := setArgs(cfg)
		if err != nil {
			return err
		}
		results, err := q.Set(ctx, oids[0], typ, value)
		if err != nil {
			return err
		}
		printResults(results)
	default:
		return fmt.Errorf("unknown op %q", cfg.Op)
	}
	return nil
}

func setArgs(cfg *cliConfig) (gosnmp.Asn1BER, interface{}, error) {
	if cfg.SetType == "" {
		return 0, nil, nil
	}
	typ, ok := query.TypeFromString(cfg.SetType)
	if !ok {
		return 0, nil, fmt.Errorf("unknown set type %q", cfg.SetType)
	}
	switch typ {
	case gosnmp.Integer:
		n, err := strconv.Atoi(cfg.SetValue)
		if err != nil {
			return 0, nil, err
		}
		return typ, n, nil
	case gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Uinteger32:
		n, err := strconv.ParseUint(cfg.SetValue, 10, 32)
		if err != nil {
			return 0, nil, err
		}
		return typ, uint32(n), nil
	case gosnmp.OctetString:
		return typ, []byte(cfg.SetValue), nil
	default:
		return typ, cfg.SetValue, nil
	}
}

func printResults(results query.Results) {
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printBinding(results[k])
	}
}

func printBinding(pdu gosnmp.SnmpPDU) {
	fmt.Printf("%s = %s: %s\n", pdu.Name, query.TypeString(pdu.Type), models.FormatValue(pdu))
}
