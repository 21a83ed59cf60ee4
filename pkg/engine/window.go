package engine

import (
	"fmt"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

type Window struct {
	Alpha int
	Beta  int
}

func FullWindow() Window {
	return Window{Alpha: -Infinity, Beta: Infinity}
}

func NullWindow(beta int) Window {
	return Window{Alpha: beta - 1, Beta: beta}
}

// Negate gives the window seen from the opponent's side.
func (w Window) Negate() Window {
	return Window{Alpha: -w.Beta, Beta: -w.Alpha}
}

func (w Window) IsNull() bool {
	return w.Beta-w.Alpha <= 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Alpha, w.Beta)
}
