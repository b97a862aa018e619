package query

import (
	"fmt"

	"github.com/gosnmp/gosnmp"
)

// TransportError wraps any error the underlying session reports for a
// dispatched request. The querier never reclassifies transport failures;
// the cause's message is carried through unchanged.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("snmp %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// packetErr surfaces a device-reported error status (genErr, noSuchName and
// friends) as a transport failure; a reply carrying one is not a result.
func packetErr(op string, packet *gosnmp.SnmpPacket) error {
	if packet.Error == gosnmp.NoError {
		return nil
	}
	return transportErr(op, fmt.Errorf("device reported error status %d at index %d", packet.Error, packet.ErrorIndex))
}
