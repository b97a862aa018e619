package query

import (
	"context"
	"testing"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMockFactory points the shared registry at mock sessions for the
// duration of one test and resets the registry afterwards.
func withMockFactory(t *testing.T) *[]*mockSession {
	t.Helper()
	var made []*mockSession
	orig := sessionFactory
	sessionFactory = func(opts *Options) (Session, error) {
		sess := newMockSession()
		made = append(made, sess)
		return sess, nil
	}
	t.Cleanup(func() {
		sessionFactory = orig
		require.NoError(t, CloseShared())
	})
	return &made
}

func sharedOpts() *Options {
	return &Options{Host: "192.0.2.10", Version: "v2c", Community: "public"}
}

func TestSharedSessionLazyInitAndReuse(t *testing.T) {
	made := withMockFactory(t)

	_, err := Get(context.Background(), sharedOpts(), ".1.3.6.1.2.1.1.5.0")
	require.NoError(t, err)
	_, err = GetNext(context.Background(), sharedOpts(), ".1.3.6.1.2.1.1.5")
	require.NoError(t, err)

	require.Len(t, *made, 1, "one session for all shared calls")
	assert.Equal(t, 1, (*made)[0].connects)
	assert.Equal(t, 2, (*made)[0].dispatched())
}

func TestSharedCloseThenUseRecreates(t *testing.T) {
	made := withMockFactory(t)

	_, err := Get(context.Background(), sharedOpts(), ".1.3.6.1.2.1.1.5.0")
	require.NoError(t, err)
	require.NoError(t, CloseShared())
	assert.Equal(t, 1, (*made)[0].closes)

	_, err = Get(context.Background(), sharedOpts(), ".1.3.6.1.2.1.1.5.0")
	require.NoError(t, err)
	require.Len(t, *made, 2, "use after close builds a fresh session")
	assert.Equal(t, 1, (*made)[1].connects)
}

func TestSharedEmptyRequestsBuildNoSession(t *testing.T) {
	made := withMockFactory(t)

	results, err := GetAll(context.Background(), sharedOpts(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	subtree, err := GetSubtree(context.Background(), sharedOpts(), nil)
	require.NoError(t, err)
	assert.Empty(t, subtree)

	assert.Empty(t, *made, "empty requests must not construct the session")
}

func TestSharedSetAndSubtree(t *testing.T) {
	made := withMockFactory(t)
	root := ".1.3.6.1.2.1.2.2.1.2"

	_, err := Set(context.Background(), sharedOpts(), ".1.3.6.1.2.1.1.6.0", gosnmp.OctetString, []byte("rack 4"))
	require.NoError(t, err)

	(*made)[0].mu.Lock()
	(*made)[0].walkResponses[root] = []gosnmp.SnmpPDU{
		{Name: root + ".1", Type: gosnmp.OctetString, Value: []byte("ether1")},
	}
	(*made)[0].mu.Unlock()

	results, err := GetSubtree(context.Background(), sharedOpts(), []string{root})
	require.NoError(t, err)
	require.Len(t, results[root], 1)
	require.Len(t, *made, 1)
}

func TestCloseSharedIdempotent(t *testing.T) {
	withMockFactory(t)
	require.NoError(t, CloseShared())
	require.NoError(t, CloseShared())
}
