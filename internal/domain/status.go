package domain

import "strings"

// LotStatus is the canonical lifecycle of a lot.
type LotStatus string

const (
	LotPlanned   LotStatus = "PLANNED"
	LotActive    LotStatus = "ACTIVE"
	LotSuspended LotStatus = "SUSPENDED"
	LotClosed    LotStatus = "CLOSED"
)

// legacyLotStatus maps every status spelling found in stored data to the
// canonical value. Presale lots have not started yet, so they are planned.
var legacyLotStatus = map[string]LotStatus{
	"PLANNED":     LotPlanned,
	"PIANIFICATO": LotPlanned,
	"PRESALE":     LotPlanned,
	"PREVENDITA":  LotPlanned,
	"ACTIVE":      LotActive,
	"ATTIVO":      LotActive,
	"SUSPENDED":   LotSuspended,
	"SOSPESO":     LotSuspended,
	"CLOSED":      LotClosed,
	"CHIUSO":      LotClosed,
	"COMPLETED":   LotClosed,
	"COMPLETATO":  LotClosed,
}

// ParseLotStatus normalizes a stored or user-supplied lot status.
func ParseLotStatus(raw string) (LotStatus, error) {
	status, ok := legacyLotStatus[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", Invalid("status", "unknown lot status %q", raw)
	}
	return status, nil
}
