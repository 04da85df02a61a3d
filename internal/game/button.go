package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/aurora-lab/internal/config"
)

type button struct {
	label      string
	x, y, w, h int

	hovered bool
	pressed bool
}

func newButton(label string, x, y int) button {
	return button{label: label, x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight}
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// update tracks hover and press state and reports a click: a press that
// started on the button and was released over it.
func (b *button) update(mx, my int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && justPressed {
		b.pressed = true
	}
	if !justReleased {
		return false
	}
	clicked := b.pressed && b.hovered
	b.pressed = false
	return clicked
}

func (b *button) draw(dst *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 74, G: 48, B: 140, A: 235} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 107, G: 70, B: 193, A: 235} // Hovered
	} else {
		bgColor = color.RGBA{R: 60, G: 44, B: 110, A: 200} // Normal
	}

	vector.DrawFilledRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 45, G: 197, B: 253, A: 200}
	vector.StrokeRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, borderColor, false)

	textWidth := len(b.label) * charWidth
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-lineHeight)/2
	ebitenutil.DebugPrintAt(dst, b.label, textX, textY)
}
