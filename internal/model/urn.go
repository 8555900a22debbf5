package model

import (
	"fmt"
	"strings"
)

// ParseURN decodes a NormeInRete permanent identifier into an act reference.
// The expected shape is urn:nir:<authority>:<type>:<date>;<number>, e.g.
// urn:nir:stato:legge:1990-08-07;241. The URN itself is kept verbatim.
func ParseURN(urn string) (ActRef, error) {
	if !strings.HasPrefix(urn, "urn:nir:") {
		return ActRef{}, fmt.Errorf("not a urn:nir identifier: %q", urn)
	}
	parts := strings.Split(urn, ":")
	if len(parts) < 5 {
		return ActRef{}, fmt.Errorf("malformed act urn: %q", urn)
	}
	actType := parts[3]
	tail := parts[4]
	date, number, ok := strings.Cut(tail, ";")
	if !ok || date == "" || number == "" {
		return ActRef{}, fmt.Errorf("act urn missing date;number: %q", urn)
	}
	return ActRef{Type: actType, Number: number, Date: date, URN: urn}, nil
}
