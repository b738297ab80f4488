package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

var (
	skyColor     = color.RGBA{24, 28, 48, 255}
	starColor    = color.RGBA{90, 96, 130, 255}
	hillColor    = color.RGBA{44, 52, 84, 255}
	stripeColor  = color.RGBA{36, 40, 64, 255}
	grassColor   = color.RGBA{96, 180, 72, 255}
	dirtColor    = color.RGBA{120, 78, 44, 255}
	seamColor    = color.RGBA{96, 60, 34, 255}
	playerColor  = color.RGBA{255, 214, 64, 255}
	legColor     = color.RGBA{200, 150, 30, 255}
	textColor    = color.RGBA{230, 230, 240, 255}
	accentColor  = color.RGBA{255, 200, 0, 255}
	mutedColor   = color.RGBA{150, 150, 200, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
)

const fontSize = 16.0

// drawText draws s with its top-left corner at x, y.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	scale := size / fontSize
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = fontSize * 1.4
	text.Draw(dst, s, g.face, op)
}

// drawCentered draws s centered horizontally at y.
func (g *Game) drawCentered(dst *ebiten.Image, s string, y, size float64, clr color.Color) {
	w := text.Advance(s, g.face) * size / fontSize
	g.drawText(dst, s, (float64(g.width)-w)/2, y, size, clr)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	w := g.runner.World()
	screen.Fill(skyColor)
	if w == nil {
		return
	}

	g.drawBackground(screen, w)
	for _, s := range w.Segments() {
		g.drawSegment(screen, s)
	}
	g.drawPlayer(screen, w)
	g.drawHUD(screen, w)

	st := g.session.State()
	switch {
	case st.GameOver:
		g.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d   R to restart, Esc for menu", st.Score))
	case st.Paused:
		g.drawOverlay(screen, "PAUSED", "P to resume, Esc for menu")
	}
}

// drawBackground draws the three parallax layers, each twice across so the
// wrap never shows a seam.
func (g *Game) drawBackground(screen *ebiten.Image, w *runner.World) {
	p := w.Parallax()
	vw, vh := g.cfg.Viewport.Width, g.cfg.Viewport.Height

	for k := 0; float64(k)*160 < 2*vw; k++ {
		x := p.Far + float64(k)*160
		y := 40 + float64((k*37)%140)
		fillRect(screen, x, y, 4, 4, starColor)
	}
	for k := 0; float64(k)*96 < 2*vw; k++ {
		x := p.Near + float64(k)*96
		h := 80 + float64((k*53)%60)
		fillRect(screen, x, vh*0.5+140-h, 72, h+vh*0.5, hillColor)
	}
	for k := 0; float64(k)*64 < 2*vw; k++ {
		fillRect(screen, p.Floor+float64(k)*64, vh-260, 32, 6, stripeColor)
	}
}

// drawSegment draws each tile of an active segment down to the world floor.
func (g *Game) drawSegment(screen *ebiten.Image, s runner.Segment) {
	if !s.Active {
		return
	}
	tw, th := g.cfg.Tiles.Width, g.cfg.Tiles.Height
	floor := g.cfg.Viewport.Height
	top := s.Y - th

	for t := 0; t < s.Tiles; t++ {
		x := s.X + float64(t)*tw
		fillRect(screen, x, top, tw, floor-top, dirtColor)
		fillRect(screen, x, top, tw, 10, grassColor)
		fillRect(screen, x+tw-2, top+10, 2, floor-top-10, seamColor)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, w *runner.World) {
	b := w.Player().Box()
	bw, bh := b.Width(), b.Height()
	legH := bh / 5
	fillRect(screen, b.Min.X, b.Min.Y, bw, bh-legH, playerColor)

	anim := w.Animator()
	if anim.Jumping() {
		// Tucked legs
		fillRect(screen, b.Min.X+bw/4, b.Max.Y-legH, bw/2, legH/2, legColor)
		return
	}
	stride := bw / 4 * float64(anim.Frame()%3) / 2
	fillRect(screen, b.Min.X+stride, b.Max.Y-legH, bw/4, legH, legColor)
	fillRect(screen, b.Max.X-bw/4-stride, b.Max.Y-legH, bw/4, legH, legColor)
}

func (g *Game) drawHUD(screen *ebiten.Image, w *runner.World) {
	score := w.Score()
	clr := color.Color(textColor)
	if score.Pop() > 0.5 {
		clr = accentColor
	}
	g.drawText(screen, fmt.Sprintf("SCORE %d", score.Shown()), 24, 20, 32*score.Scale(), clr)

	stage := fmt.Sprintf("STAGE %d/%d", w.Stage().Index+1, w.Stages().Len())
	if !g.cfg.Difficulty.Enabled {
		stage = fmt.Sprintf("STAGE %d (fixed)", w.Stage().Index+1)
	}
	sw := text.Advance(stage, g.face) * 24 / fontSize
	g.drawText(screen, stage, float64(g.width)-sw-24, 24, 24, mutedColor)
}

func (g *Game) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	fillRect(screen, 0, 0, float64(g.width), float64(g.height), overlayColor)
	mid := float64(g.height) / 2
	g.drawCentered(screen, title, mid-60, 48, accentColor)
	g.drawCentered(screen, subtitle, mid+10, 20, textColor)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.drawCentered(screen, strings.ToUpper(g.runner.Title()), 100, 56, accentColor)
	if g.label != "" {
		g.drawCentered(screen, g.label, 180, 18, mutedColor)
	}

	switch g.session.Machine().Panel() {
	case scene.PanelHowTo:
		g.drawHowTo(screen)
	case scene.PanelScores:
		g.drawScores(screen)
	default:
		g.drawMenu(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	cursor := g.session.Machine().Cursor()
	y := 280.0
	for i, item := range scene.Items {
		label, clr := item.Label(), color.Color(textColor)
		if i == cursor {
			label, clr = "> "+label+" <", accentColor
		}
		g.drawCentered(screen, label, y, 28, clr)
		y += 56
	}
	if best := g.session.HighScore(); best > 0 {
		g.drawCentered(screen, fmt.Sprintf("Best: %d", best), y+24, 20, mutedColor)
	}
	g.drawCentered(screen, "Arrows move   Enter select   Q quit", float64(g.height)-48, 16, mutedColor)
}

const howTo = `Run as far as you can. The ground scrolls faster
with every stage and gaps open between platforms.

Space / Up    jump (only from the ground)
P             pause
R             restart after a fall
Esc           pause, then back to the menu
Q             quit`

func (g *Game) drawHowTo(screen *ebiten.Image) {
	g.drawCentered(screen, "HOW TO PLAY", 240, 32, textColor)
	g.drawText(screen, howTo, float64(g.width)/2-300, 310, 20, textColor)
	g.drawCentered(screen, "Esc to go back", float64(g.height)-48, 16, mutedColor)
}

func (g *Game) drawScores(screen *ebiten.Image) {
	g.drawCentered(screen, "HIGH SCORES", 240, 32, textColor)

	runs, err := g.session.Scores()
	var msg string
	switch {
	case !g.session.HasStore():
		msg = "Score database unavailable."
	case err != nil:
		msg = "Could not load scores."
	case len(runs) == 0:
		msg = "No runs recorded yet."
	}
	if msg != "" {
		g.drawCentered(screen, msg, 320, 20, mutedColor)
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%-6s%-10s%-12s%-7s%s\n", "RANK", "SCORE", "DISTANCE", "STAGE", "DATE")
		for i, r := range runs {
			fmt.Fprintf(&b, "%-6s%-10d%-12.0f%-7d%s\n",
				fmt.Sprintf("#%d", i+1), r.Score, r.Distance, r.Stage+1, r.CreatedAt.Format("Jan 02 15:04"))
		}
		g.drawText(screen, b.String(), float64(g.width)/2-330, 300, 20, textColor)
	}
	g.drawCentered(screen, "Esc to go back", float64(g.height)-48, 16, mutedColor)
}
