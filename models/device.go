package models

import (
	"errors"
	"time"

	"github.com/logingood/snmp-go-querier/query"
)

var ErrIncompleteDevice = errors.New("device row misses hostname or snmp version")

// Device is one row of a LibreNMS-style devices table. Nullable columns map
// to pointers.
type Device struct {
	DeviceID    int32   `db:"device_id" json:"device_id"`
	Hostname    *string `db:"hostname" json:"hostname"`
	SysName     *string `db:"sysName" json:"sysname"`
	Community   *string `db:"community" json:"community"`
	AuthLevel   *string `db:"authlevel" json:"authlevel"`
	AuthName    *string `db:"authname"`
	AuthPass    *string `db:"authpass" json:"authpass"`
	AuthAlgo    *string `db:"authalgo" json:"authalgo"`
	CryptoPass  *string `db:"cryptopass" json:"cryptopass"`
	CryptoAlgo  *string `db:"cryptoalgo" json:"cryptoalgo"`
	SnmpVer     *string `db:"snmpver" json:"snmpver"`
	Port        int     `db:"port" json:"port"`
	Transport   *string `db:"transport" json:"transport"`
	SysObjectID *string `db:"sysObjectID" json:"sysobjectid"`
	SysDescr    *string `db:"sysDescr" json:"sysdescr"`
	SysContact  *string `db:"sysContact" json:"syscontact"`
	Version     *string `db:"version" json:"version"`
	Hardware    *string `db:"hardware" json:"hardware"`
	OS          *string `db:"os" json:"os"`
	Status      bool    `db:"status" json:"status"`
}

// QueryOptions maps the inventory row onto session options. Credential and
// version validation happens when the session is built.
func (d *Device) QueryOptions(timeout time.Duration, retries int) (*query.Options, error) {
	if d.Hostname == nil || d.SnmpVer == nil {
		return nil, ErrIncompleteDevice
	}

	opts := &query.Options{
		Host:    *d.Hostname,
		Version: *d.SnmpVer,
		Timeout: timeout,
		Retries: retries,
	}
	// out-of-range rows fall back to the session default
	if d.Port > 0 && d.Port <= 65535 {
		opts.Port = uint16(d.Port)
	}
	if d.Transport != nil {
		opts.Transport = *d.Transport
	}
	if d.Community != nil {
		opts.Community = *d.Community
	}
	if d.AuthLevel != nil {
		opts.SecLevel = *d.AuthLevel
	}
	if d.AuthName != nil {
		opts.AuthName = *d.AuthName
	}
	if d.AuthPass != nil {
		opts.AuthPass = *d.AuthPass
	}
	if d.CryptoPass != nil {
		opts.CryptoPass = *d.CryptoPass
	}
	return opts, nil
}
