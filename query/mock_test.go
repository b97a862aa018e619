package query

import (
	"sync"

	"github.com/gosnmp/gosnmp"
)

// mockSession records every dispatched call so tests can assert on what hit
// the wire. Guarded by a mutex because subtree walks run concurrently.
type mockSession struct {
	mu sync.Mutex

	getResponses  map[string]gosnmp.SnmpPDU
	walkResponses map[string][]gosnmp.SnmpPDU

	connectErr error
	getErr     error
	nextErr    error
	setErr     error
	walkErrs   map[string]error

	// device-reported error status stamped on every reply packet
	errorStatus gosnmp.SNMPError
	errorIndex  uint8

	callGet  [][]string
	callNext [][]string
	callSet  [][]gosnmp.SnmpPDU
	callWalk []string
	connects int
	closes   int
}

func newMockSession() *mockSession {
	return &mockSession{
		getResponses:  map[string]gosnmp.SnmpPDU{},
		walkResponses: map[string][]gosnmp.SnmpPDU{},
		walkErrs:      map[string]error{},
	}
}

func (m *mockSession) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connects++
	return m.connectErr
}

func (m *mockSession) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callGet = append(m.callGet, oids)
	if m.getErr != nil {
		return nil, m.getErr
	}
	pdus := make([]gosnmp.SnmpPDU, 0, len(oids))
	for _, oid := range oids {
		if response, exists := m.getResponses[oid]; exists {
			pdus = append(pdus, response)
		} else {
			pdus = append(pdus, gosnmp.SnmpPDU{Name: oid, Type: gosnmp.NoSuchObject, Value: nil})
		}
	}
	return &gosnmp.SnmpPacket{Variables: pdus, Error: m.errorStatus, ErrorIndex: m.errorIndex}, nil
}

func (m *mockSession) GetNext(oids []string) (*gosnmp.SnmpPacket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callNext = append(m.callNext, oids)
	if m.nextErr != nil {
		return nil, m.nextErr
	}
	pdus := make([]gosnmp.SnmpPDU, 0, len(oids))
	for _, oid := range oids {
		if response, exists := m.getResponses[oid]; exists {
			pdus = append(pdus, response)
		}
	}
	return &gosnmp.SnmpPacket{Variables: pdus, Error: m.errorStatus, ErrorIndex: m.errorIndex}, nil
}

func (m *mockSession) Set(pdus []gosnmp.SnmpPDU) (*gosnmp.SnmpPacket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callSet = append(m.callSet, pdus)
	if m.setErr != nil {
		return nil, m.setErr
	}
	return &gosnmp.SnmpPacket{Variables: pdus, Error: m.errorStatus, ErrorIndex: m.errorIndex}, nil
}

func (m *mockSession) WalkAll(rootOid string) ([]gosnmp.SnmpPDU, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callWalk = append(m.callWalk, rootOid)
	if err, exists := m.walkErrs[rootOid]; exists {
		return nil, err
	}
	return m.walkResponses[rootOid], nil
}

func (m *mockSession) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

func (m *mockSession) dispatched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.callGet) + len(m.callNext) + len(m.callSet) + len(m.callWalk)
}
