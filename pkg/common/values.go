package common

const (
	// WinningValue is the worth of a won position from the winner's point of view.
	WinningValue = 1000
	// Infinity bounds every score a search can produce.
	Infinity = 10 * WinningValue

	MaxQuiescentDepth = 12
)

// ClampWorth keeps a non terminal evaluation strictly inside the winning range
// so that only a real win is recognized as one.
func ClampWorth(v int) int {
	if v >= WinningValue {
		return WinningValue - 1
	}
	if v <= -WinningValue {
		return -WinningValue + 1
	}
	return v
}

func IsWinningValue(v int) bool {
	return Abs(v) >= WinningValue
}
