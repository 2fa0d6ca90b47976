package ui

import (
	"errors"
	"image/color"

	"github.com/golangdaddy/kart/surface"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Size of one character cell in pixels, matching the bitmap font
const (
	cellWidth  = 6
	cellHeight = 12
)

// Window shows a surface.Grid in a desktop window and feeds keys back as bytes
type Window struct {
	grid  *surface.Grid
	onKey func(byte)
	done  <-chan struct{} // Closed when the race no longer needs input
	face  text.Face
	chars []rune
}

// NewWindow creates a window host for grid
func NewWindow(grid *surface.Grid, onKey func(byte), done <-chan struct{}) *Window {
	return &Window{
		grid:  grid,
		onKey: onKey,
		done:  done,
		face:  text.NewGoXFace(bitmapfont.Face),
	}
}

// Update handles input for the window
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case <-w.done:
		// Any key closes the finish screen
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	default:
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		if r < 0x80 {
			w.onKey(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		w.onKey('<')
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		w.onKey('>')
	}
	return nil
}

// Draw renders every grid cell
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cols, _ := w.grid.Size()
	if cols == 0 {
		return
	}
	for i, c := range w.grid.Snapshot() {
		x := float64(i%cols) * cellWidth
		y := float64(i/cols) * cellHeight

		if c.Bg != surface.ColorDefault && c.Bg != surface.ColorBlack {
			vector.DrawFilledRect(screen, float32(x), float32(y), cellWidth, cellHeight, rgba(c.Bg, color.Black), false)
		}
		if c.Rune == ' ' || c.Rune == 0 {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(rgba(c.Fg, color.White))
		text.Draw(screen, string(c.Rune), w.face, op)
	}
}

// Layout returns the grid size in pixels
func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cols, rows := w.grid.Size()
	return cols * cellWidth, rows * cellHeight
}

// RunWindow opens the window and blocks until it is closed
func RunWindow(w *Window, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	cols, rows := w.grid.Size()
	ebiten.SetWindowSize(cols*cellWidth*scale, rows*cellHeight*scale)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func rgba(c surface.Color, fallback color.Color) color.Color {
	switch c {
	case surface.ColorBlack:
		return color.RGBA{0, 0, 0, 255}
	case surface.ColorRed:
		return color.RGBA{200, 40, 40, 255}
	case surface.ColorWhite:
		return color.RGBA{230, 230, 230, 255}
	case surface.ColorYellow:
		return color.RGBA{255, 200, 50, 255}
	default:
		return fallback
	}
}
