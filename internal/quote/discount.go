package quote

// Discount bounds offered by the quote form. Calculate does not apply them.
const (
	MaxSpaceDiscount   = 50.0
	MaxStationDiscount = 30.0
)

// ClampDiscount bounds a discount typed by a user to the range allowed for
// the given line kind.
func ClampDiscount(kind string, pct float64) float64 {
	upper := MaxSpaceDiscount
	if kind == KindStation {
		upper = MaxStationDiscount
	}
	switch {
	case pct < 0:
		return 0
	case pct > upper:
		return upper
	default:
		return pct
	}
}
