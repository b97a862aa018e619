package query

import "github.com/gosnmp/gosnmp"

// typeNames covers the data-type tags the underlying library can hand back.
var typeNames = map[gosnmp.Asn1BER]string{
	gosnmp.Boolean:          "Boolean",
	gosnmp.Integer:          "Integer",
	gosnmp.BitString:        "BitString",
	gosnmp.OctetString:      "OctetString",
	gosnmp.Null:             "Null",
	gosnmp.ObjectIdentifier: "ObjectIdentifier",
	gosnmp.IPAddress:        "IPAddress",
	gosnmp.Counter32:        "Counter",
	gosnmp.Gauge32:          "Gauge",
	gosnmp.TimeTicks:        "TimeTicks",
	gosnmp.Opaque:           "Opaque",
	gosnmp.NsapAddress:      "NsapAddress",
	gosnmp.Counter64:        "Counter64",
	gosnmp.Uinteger32:       "Uinteger32",
	gosnmp.OpaqueFloat:      "OpaqueFloat",
	gosnmp.OpaqueDouble:     "OpaqueDouble",
	gosnmp.NoSuchObject:     "NoSuchObject",
	gosnmp.NoSuchInstance:   "NoSuchInstance",
	gosnmp.EndOfMibView:     "EndOfMibView",
}

// TypeString names a data-type tag; unrecognized tags come back as
// "Unknown".
func TypeString(t gosnmp.Asn1BER) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// TypeFromString resolves a data-type tag by name.
func TypeFromString(name string) (gosnmp.Asn1BER, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
