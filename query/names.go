package query

// WellKnownOIDs maps MIB object names to canonical OIDs for the objects the
// scan tooling reaches for most: system scalars, ifTable and ifXTable
// columns, LLDP neighbours and host CPU load.
var WellKnownOIDs = map[string]string{
	"sysDescr":    ".1.3.6.1.2.1.1.1",
	"sysObjectID": ".1.3.6.1.2.1.1.2",
	"sysUpTime":   ".1.3.6.1.2.1.1.3",
	"sysContact":  ".1.3.6.1.2.1.1.4",
	"sysName":     ".1.3.6.1.2.1.1.5",
	"sysLocation": ".1.3.6.1.2.1.1.6",

	"ifIndex":       ".1.3.6.1.2.1.2.2.1.1",
	"ifDescr":       ".1.3.6.1.2.1.2.2.1.2",
	"ifType":        ".1.3.6.1.2.1.2.2.1.3",
	"ifMtu":         ".1.3.6.1.2.1.2.2.1.4",
	"ifSpeed":       ".1.3.6.1.2.1.2.2.1.5",
	"ifPhysAddress": ".1.3.6.1.2.1.2.2.1.6",
	"ifAdminStatus": ".1.3.6.1.2.1.2.2.1.7",
	"ifOperStatus":  ".1.3.6.1.2.1.2.2.1.8",
	"ifLastChange":  ".1.3.6.1.2.1.2.2.1.9",
	"ifInDiscards":  ".1.3.6.1.2.1.2.2.1.13",
	"ifInErrors":    ".1.3.6.1.2.1.2.2.1.14",
	"ifOutDiscards": ".1.3.6.1.2.1.2.2.1.19",
	"ifOutErrors":   ".1.3.6.1.2.1.2.2.1.20",

	"ifAlias":                    ".1.3.6.1.2.1.31.1.1.1.18",
	"ifInMulticastPkts":          ".1.3.6.1.2.1.31.1.1.1.2",
	"ifInBroadcastPkts":          ".1.3.6.1.2.1.31.1.1.1.3",
	"ifOutMulticastPkts":         ".1.3.6.1.2.1.31.1.1.1.4",
	"ifOutBroadcastPkts":         ".1.3.6.1.2.1.31.1.1.1.5",
	"ifHCInOctets":               ".1.3.6.1.2.1.31.1.1.1.6",
	"ifHCInUcastPkts":            ".1.3.6.1.2.1.31.1.1.1.7",
	"ifHCInMulticastPkts":        ".1.3.6.1.2.1.31.1.1.1.8",
	"ifHCInBroadcastPkts":        ".1.3.6.1.2.1.31.1.1.1.9",
	"ifHCOutOctets":              ".1.3.6.1.2.1.31.1.1.1.10",
	"ifHCOutUcastPkts":           ".1.3.6.1.2.1.31.1.1.1.11",
	"ifHCOutMulticastPkts":       ".1.3.6.1.2.1.31.1.1.1.12",
	"ifHCOutBroadcastPkts":       ".1.3.6.1.2.1.31.1.1.1.13",
	"ifHighSpeed":                ".1.3.6.1.2.1.31.1.1.1.15",
	"ifCounterDiscontinuityTime": ".1.3.6.1.2.1.31.1.1.1.19",

	"lldpRemSysName":  ".1.0.8802.1.1.2.1.4.1.1.9",
	"hrProcessorLoad": ".1.3.6.1.2.1.25.3.3.1.2",
}

// ResolveOID maps a well-known object name to its canonical OID; anything
// not in the table is treated as a numeric OID and canonicalised.
func ResolveOID(s string) string {
	if oid, ok := WellKnownOIDs[s]; ok {
		return oid
	}
	return CanonicalOID(s)
}
