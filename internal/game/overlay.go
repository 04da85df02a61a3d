package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/aurora-lab/internal/config"
	"github.com/iburimskiy/aurora-lab/internal/landing"
)

// Debug font metrics.
const (
	charWidth  = 6
	lineHeight = 16
)

const (
	margin     = 48
	panelPad   = 12
	sectionGap = 20
)

var (
	panelColor  = color.RGBA{R: 12, G: 8, B: 32, A: 150}
	borderColor = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	pillColor   = color.RGBA{R: 107, G: 70, B: 193, A: 170}
)

// drawOverlay draws the landing copy in display units on its own layer and
// scales that layer onto the device-pixel screen.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	w, h := g.surface.DisplaySize()
	lw, lh := int(w), int(h)
	if lw <= 0 || lh <= 0 {
		return
	}
	if g.overlayImg == nil || g.overlayImg.Bounds().Dx() != lw || g.overlayImg.Bounds().Dy() != lh {
		if g.overlayImg != nil {
			g.overlayImg.Deallocate()
		}
		g.overlayImg = ebiten.NewImage(lw, lh)
	}
	o := g.overlayImg
	o.Clear()

	p := pen{dst: o}
	colW := lw/2 - margin - sectionGap
	y := g.drawHero(p, margin, margin, colW)
	panel(p, margin, max(y, config.ButtonY+config.ButtonHeight+sectionGap), colW, g.drawIdeaCard)

	rightX := lw/2 + sectionGap
	rightW := lw - rightX - margin
	y = drawBlueprint(p, rightX, margin, rightW)
	y = drawLab(p, rightX, y+sectionGap, rightW)
	panel(p, rightX, y+sectionGap, rightW, drawCTA)

	g.drawStatus(p, margin, lh-lineHeight-8)

	op := &ebiten.DrawImageOptions{}
	s := g.scale()
	op.GeoM.Scale(s, s)
	screen.DrawImage(o, op)
}

// pen draws onto dst, or only measures when dst is nil.
type pen struct {
	dst *ebiten.Image
}

func (p pen) print(s string, x, y int) {
	if p.dst != nil {
		ebitenutil.DebugPrintAt(p.dst, s, x, y)
	}
}

// bold doubles the text with a 1px offset.
func (p pen) bold(s string, x, y int) {
	p.print(s, x, y)
	p.print(s, x+1, y)
}

func (p pen) rect(x, y, w, h int, c color.Color) {
	if p.dst != nil {
		vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), c, false)
	}
}

func (p pen) outline(x, y, w, h int, c color.Color) {
	if p.dst != nil {
		vector.StrokeRect(p.dst, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}
}

// wrapped prints s wrapped to w and returns the y below it.
func (p pen) wrapped(s string, x, y, w int) int {
	for _, line := range wrapText(s, w/charWidth) {
		p.print(line, x, y)
		y += lineHeight
	}
	return y
}

// panel measures body, draws a translucent card behind it, then draws body
// inside the card padding.
func panel(p pen, x, y, w int, body func(p pen, x, y, w int) int) int {
	inner := w - 2*panelPad
	h := body(pen{}, x+panelPad, y+panelPad, inner) - y + panelPad
	p.rect(x, y, w, h, panelColor)
	p.outline(x, y, w, h, borderColor)
	body(p, x+panelPad, y+panelPad, inner)
	return y + h
}

func (g *Game) drawHero(p pen, x, y, w int) int {
	pillW := len(landing.Pill)*charWidth + 2*panelPad
	p.rect(x, y, pillW, lineHeight+6, pillColor)
	p.print(strings.ToUpper(landing.Pill), x+panelPad, y+3)
	y += lineHeight + 20

	p.bold(landing.Headline, x, y)
	y += lineHeight + 12
	y = p.wrapped(landing.Intro, x, y, w)

	if p.dst != nil {
		g.shuffleBtn.draw(p.dst)
		g.snapshotBtn.draw(p.dst)
	}
	return y + sectionGap
}

func (g *Game) drawIdeaCard(p pen, x, y, w int) int {
	idea, ok := g.shuffler.Current()
	if !ok {
		return y
	}

	p.print(strings.ToUpper(landing.IdeaHeading), x, y)
	y += lineHeight
	y = p.wrapped(landing.IdeaSubtitle, x, y, w)
	y += 8

	p.bold(idea.Title, x, y)
	y += lineHeight + 4
	y = p.wrapped(idea.Summary, x, y, w)
	y += 6

	tx := x
	for i, tag := range idea.Tags {
		tw := len(tag)*charWidth + 12
		if tx+tw > x+w {
			tx = x
			y += lineHeight + 8
		}
		r, gr, b := hsvToRgb(float64(g.shuffler.Index())*40+float64(i)*72+260, 0.55, 0.9)
		p.rect(tx, y, tw, lineHeight+2, color.RGBA{R: r, G: gr, B: b, A: 90})
		p.print(tag, tx+6, y+1)
		tx += tw + 8
	}
	y += lineHeight + 14

	for _, card := range landing.MomentumCards(idea) {
		p.print(strings.ToUpper(card.Label), x, y)
		y += lineHeight
		y = p.wrapped(card.Body, x, y, w)
		y += 6
	}
	return y
}

func drawBlueprint(p pen, x, y, w int) int {
	p.print(strings.ToUpper(landing.StoryHeading), x, y)
	y += lineHeight
	y = p.wrapped(landing.StorySubtitle, x, y, w)
	y += 6

	for i, step := range landing.StorySteps() {
		p.print(fmt.Sprintf("%d  %s", i+1, step.Title), x, y)
		y += lineHeight
		y = p.wrapped(step.Content, x+3*charWidth, y, w-3*charWidth)
		y += 4
	}
	return y
}

func drawLab(p pen, x, y, w int) int {
	p.print(strings.ToUpper(landing.LabHeading), x, y)
	y += lineHeight
	y = p.wrapped(landing.LabSubtitle, x, y, w)
	y += 6

	for _, u := range landing.LabUpdates() {
		badge := u.Status.Copy()
		bw := len(badge)*charWidth + 10
		c := u.Status.Color()
		c.A = 120
		p.rect(x, y, bw, lineHeight+2, c)
		p.print(badge, x+5, y+1)
		p.print(u.Title+"  ("+u.ShipDate+")", x+bw+8, y+1)
		y += lineHeight + 4
		y = p.wrapped(u.Description, x, y, w)
		y += 4
	}
	return y
}

func drawCTA(p pen, x, y, w int) int {
	p.bold(landing.CTAHeading, x, y)
	y += lineHeight + 4
	y = p.wrapped(landing.CTABody, x, y, w)
	y += 4
	for _, l := range landing.CTALinks() {
		p.print("> "+l.Label+"  "+l.URL, x, y)
		y += lineHeight
	}
	return y
}

func (g *Game) drawStatus(p pen, x, y int) {
	p.print(g.statusLine(), x, y)
}

func (g *Game) statusLine() string {
	avg, worst := g.stats.Summary()
	line := fmt.Sprintf("frame %d | paint %s avg, %s worst over %d | Space: shuffle  S: snapshot  Esc/Q: quit",
		g.renderer.Tick(), formatMillis(avg), formatMillis(worst), g.stats.Len())
	if g.status != "" {
		line += " | " + g.status
	}
	if g.lastErr != nil {
		line += " | Error: " + g.lastErr.Error()
	}
	return line
}
