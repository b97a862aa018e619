package query

import (
	"strconv"
	"strings"
)

// CanonicalOID returns the leading-dot dotted form of an OID string.
// Idempotent: applying it to an already canonical OID is a no-op.
func CanonicalOID(oid string) string {
	s := strings.TrimSpace(oid)
	if s == "" {
		return s
	}
	return "." + strings.TrimLeft(s, ".")
}

// JoinSegments renders an integer OID path in canonical dotted form.
func JoinSegments(segments []int) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(seg))
	}
	return b.String()
}
