package derivative

import "fmt"

// GatePolicy decides whether a pixel's channel deltas pass the threshold.
// A passing pixel keeps all three deltas; a blocked pixel becomes black.
// Channels are always gated together.
type GatePolicy int

const (
	// GateRed passes a pixel when the red delta alone exceeds the threshold.
	GateRed GatePolicy = iota
	// GateAnyChannel passes a pixel when any channel delta exceeds the threshold.
	GateAnyChannel
	// GateLuminance passes a pixel when the Rec.601 luma of the deltas
	// exceeds the threshold.
	GateLuminance
)

// Pass reports whether deltas dr, dg, db (each 0-255) pass the threshold.
func (g GatePolicy) Pass(dr, dg, db int, threshold uint8) bool {
	t := int(threshold)
	switch g {
	case GateAnyChannel:
		return dr > t || dg > t || db > t
	case GateLuminance:
		return (299*dr+587*dg+114*db)/1000 > t
	default:
		return dr > t
	}
}

// Valid reports whether g is a known policy.
func (g GatePolicy) Valid() bool {
	return g >= GateRed && g <= GateLuminance
}

func (g GatePolicy) String() string {
	switch g {
	case GateRed:
		return "red"
	case GateAnyChannel:
		return "any"
	case GateLuminance:
		return "luminance"
	default:
		return fmt.Sprintf("GatePolicy(%d)", int(g))
	}
}

// ParseGatePolicy converts a policy name as produced by String back to a GatePolicy.
func ParseGatePolicy(name string) (GatePolicy, error) {
	switch name {
	case "red":
		return GateRed, nil
	case "any":
		return GateAnyChannel, nil
	case "luminance":
		return GateLuminance, nil
	default:
		return GateRed, fmt.Errorf("%w: %q", ErrUnknownGate, name)
	}
}
