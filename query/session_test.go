package query

import (
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoSNMPDefaults(t *testing.T) {
	g, err := newGoSNMP(&Options{Host: "192.0.2.10", Version: "v2c", Community: "public"})
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", g.Target)
	assert.Equal(t, uint16(161), g.Port)
	assert.Equal(t, "udp", g.Transport)
	assert.Equal(t, 3, g.Retries)
	assert.Equal(t, 5*time.Second, g.Timeout)
	assert.Equal(t, 30, g.MaxOids)
	assert.Equal(t, gosnmp.Version2c, g.Version)
	assert.Equal(t, "public", g.Community)
}

func TestNewGoSNMPOverrides(t *testing.T) {
	g, err := newGoSNMP(&Options{
		Host:      "192.0.2.10",
		Port:      1161,
		Transport: "tcp",
		Version:   "1",
		Community: "private",
		Timeout:   time.Second,
		Retries:   1,
		MaxOids:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(1161), g.Port)
	assert.Equal(t, "tcp", g.Transport)
	assert.Equal(t, time.Second, g.Timeout)
	assert.Equal(t, 1, g.Retries)
	assert.Equal(t, 10, g.MaxOids)
	assert.Equal(t, gosnmp.Version1, g.Version)
}

func TestNewGoSNMPV3(t *testing.T) {
	g, err := newGoSNMP(&Options{
		Host:       "192.0.2.10",
		Version:    "v3",
		SecLevel:   "authPriv",
		AuthName:   "poller",
		AuthPass:   "authsecret",
		CryptoPass: "privsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, gosnmp.Version3, g.Version)
	assert.Equal(t, gosnmp.AuthPriv, g.MsgFlags)
	usm, ok := g.SecurityParameters.(*gosnmp.UsmSecurityParameters)
	require.True(t, ok)
	assert.Equal(t, "poller", usm.UserName)
}

func TestNewGoSNMPRejectsBadOptions(t *testing.T) {
	_, err := newGoSNMP(nil)
	assert.ErrorIs(t, err, ErrNoHost)

	_, err = newGoSNMP(&Options{Version: "v2c", Community: "public"})
	assert.ErrorIs(t, err, ErrNoHost)

	_, err = newGoSNMP(&Options{Host: "h", Version: "v2c"})
	assert.ErrorIs(t, err, ErrNoCommunity)

	_, err = newGoSNMP(&Options{Host: "h", Version: "v4"})
	assert.ErrorIs(t, err, ErrBadVersion)

	_, err = newGoSNMP(&Options{Host: "h", Version: "v3"})
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = newGoSNMP(&Options{
		Host: "h", Version: "v3", SecLevel: "authMaybe",
		AuthName: "a", AuthPass: "b", CryptoPass: "c",
	})
	assert.ErrorIs(t, err, ErrBadSecLevel)
}
