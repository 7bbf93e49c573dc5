package easygame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter is a small overlay showing the measured frame and tick rates in
// the top-left corner. The text refreshes every half second so it stays
// readable. Draw it last in the frame callback so nothing covers it.
type FPSCounter struct {
	text      string
	countdown int
}

// NewFPSCounter creates the overlay.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{}
}

// Draw renders the overlay onto target, refreshing the text when due.
func (f *FPSCounter) Draw(target *ebiten.Image) {
	if f.countdown <= 0 {
		f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		f.countdown = ebiten.TPS() / 2
	}
	f.countdown--
	ebitenutil.DebugPrint(target, f.text)
}
