package component

import "image/color"

// HealthTier buckets a health fraction for bar colouring.
type HealthTier int

const (
	TierHigh HealthTier = iota
	TierMid
	TierLow
	TierCritical
)

func TierFor(fraction float64) HealthTier {
	switch {
	case fraction <= 0.15:
		return TierCritical
	case fraction <= 0.35:
		return TierLow
	case fraction <= 0.65:
		return TierMid
	default:
		return TierHigh
	}
}

func (t HealthTier) Color() color.NRGBA {
	switch t {
	case TierCritical:
		return color.NRGBA{R: 0xff, A: 0xff}
	case TierLow:
		return color.NRGBA{R: 0xff, G: 0xa5, A: 0xff}
	case TierMid:
		return color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	default:
		return color.NRGBA{G: 0xff, A: 0xff}
	}
}

func (t HealthTier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	default:
		return "high"
	}
}
