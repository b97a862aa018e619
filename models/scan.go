package models

import (
	"fmt"

	"github.com/gosnmp/gosnmp"
	"github.com/logingood/snmp-go-querier/query"
)

// ScanRow is one varbind flattened for storage.
type ScanRow struct {
	Time      int64  `ch:"time" json:"time"`
	Hostname  string `ch:"hostname" json:"hostname"`
	SysName   string `ch:"sys_name" json:"sys_name"`
	RootOid   string `ch:"root_oid" json:"root_oid"`
	Oid       string `ch:"oid" json:"oid"`
	ValueType string `ch:"value_type" json:"value_type"`
	Value     string `ch:"value" json:"value"`
}

// DeviceScan is the outcome of one device's subtree scan.
type DeviceScan struct {
	Hostname string
	SysName  string
	Time     int64
	Rows     []ScanRow
}

func NewDeviceScan(device *Device) *DeviceScan {
	scan := &DeviceScan{}
	if device != nil && device.Hostname != nil {
		scan.Hostname = *device.Hostname
	}
	if device != nil && device.SysName != nil {
		scan.SysName = *device.SysName
	}
	return scan
}

// AddSubtree flattens one root's bindings into rows, transport order kept.
func (s *DeviceScan) AddSubtree(root string, pdus []gosnmp.SnmpPDU) {
	for _, pdu := range pdus {
		s.Rows = append(s.Rows, ScanRow{
			Time:      s.Time,
			Hostname:  s.Hostname,
			SysName:   s.SysName,
			RootOid:   root,
			Oid:       pdu.Name,
			ValueType: query.TypeString(pdu.Type),
			Value:     FormatValue(pdu),
		})
	}
}

// FormatValue renders a binding's value for storage and display.
func FormatValue(pdu gosnmp.SnmpPDU) string {
	switch pdu.Type {
	case gosnmp.OctetString:
		if b, ok := pdu.Value.([]byte); ok {
			return string(b)
		}
		return fmt.Sprint(pdu.Value)
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks, gosnmp.Counter64, gosnmp.Uinteger32:
		return gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.Null, gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView:
		return ""
	default:
		return fmt.Sprint(pdu.Value)
	}
}
