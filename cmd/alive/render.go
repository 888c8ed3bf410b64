package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alive/engine"
	"github.com/lixenwraith/alive/personality"
	"github.com/lixenwraith/alive/physics"
	"github.com/lixenwraith/alive/vmath"
)

// Pixel units per terminal cell; physics runs in pixel space
const (
	cellW = 8.0
	cellH = 16.0
)

// statusRows is reserved at the bottom of the screen
const statusRows = 1

// glyphArt is the character drawn at screen center
var glyphArt = [...]string{
	"  ▄█▄  ",
	" ██ ██ ",
	" █████ ",
	" ██ ██ ",
}

const (
	glyphCols = 7
	glyphRows = len(glyphArt)
)

// glitchRunes replace glyph cells while the glitch overlay is active
const glitchRunes = "▓▒░█▚▞"

// canvas is the drawing surface, satisfied by tcell.Screen
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// layout maps between terminal cells and engine pixel space
type layout struct {
	cols, rows int
}

// playRows is the number of rows available to the scene
func (l layout) playRows() int {
	return max(l.rows-statusRows, 1)
}

// viewport returns the physics bounds in pixel units
func (l layout) viewport() (w, h float64) {
	return float64(max(l.cols, 1)) * cellW, float64(l.playRows()) * cellH
}

// glyphOrigin is the top-left cell of the character glyph
func (l layout) glyphOrigin() (x, y int) {
	return l.cols/2 - glyphCols/2, l.playRows()/2 - glyphRows/2
}

// target is the glyph's hit box in pixel units
func (l layout) target() vmath.Rect {
	x, y := l.glyphOrigin()
	return vmath.Rect{
		MinX: float64(x) * cellW,
		MinY: float64(y) * cellH,
		MaxX: float64(x+glyphCols) * cellW,
		MaxY: float64(y+glyphRows) * cellH,
	}
}

// toPixel returns the pixel-space center of a cell
func toPixel(x, y int) vmath.Vec2F {
	return vmath.Vec2F{X: (float64(x) + 0.5) * cellW, Y: (float64(y) + 0.5) * cellH}
}

// toCell returns the cell containing a pixel-space point
func toCell(p vmath.Vec2F) (x, y int) {
	return int(math.Floor(p.X / cellW)), int(math.Floor(p.Y / cellH))
}

// moodColors is the base glyph color per mood
var moodColors = map[personality.Mood]tcell.Color{
	personality.MoodHappy:      tcell.NewRGBColor(255, 215, 0),
	personality.MoodExcited:    tcell.NewRGBColor(255, 140, 0),
	personality.MoodSleepy:     tcell.NewRGBColor(112, 128, 144),
	personality.MoodAngry:      tcell.NewRGBColor(220, 20, 60),
	personality.MoodMysterious: tcell.NewRGBColor(138, 43, 226),
	personality.MoodChaotic:    tcell.NewRGBColor(255, 0, 255),
	personality.MoodZen:        tcell.NewRGBColor(64, 224, 208),
}

// glyphStyle resolves mood style tokens to a terminal style for one frame
func glyphStyle(s *engine.Snapshot) tcell.Style {
	color, ok := moodColors[s.Mood.Mood]
	if !ok {
		color = tcell.ColorWhite
	}
	st := tcell.StyleDefault.Foreground(color)

	for _, tok := range s.Styles {
		switch tok {
		case personality.StyleBright, personality.StyleGlow:
			st = st.Bold(true)
		case personality.StyleDim, personality.StyleBlur:
			st = st.Dim(true)
		case personality.StyleHot:
			st = st.Foreground(tcell.ColorRed)
		case personality.StylePulse:
			// 1s cycle at the reference frame rate
			if (s.Frame/30)%2 == 1 {
				st = st.Dim(true)
			}
		case personality.StyleChaos:
			st = st.Foreground(hueColor(float64(s.Frame) * 7))
		}
	}
	if s.Hovered {
		st = st.Underline(true)
	}
	return st
}

// glyphOffset returns the per-frame displacement from bounce and spin tokens
func glyphOffset(s *engine.Snapshot) (dx, dy int) {
	if personality.HasStyle(s.Styles, personality.StyleBounce) && (s.Frame/8)%2 == 1 {
		dy = -1
	}
	if personality.HasStyle(s.Styles, personality.StyleSpin) {
		dx = int((s.Frame/6)%3) - 1
	}
	return dx, dy
}

// hueColor maps a hue in degrees to a saturated color
func hueColor(deg float64) tcell.Color {
	h := math.Mod(deg, 360) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g = 1, x
	case 1:
		r, g = x, 1
	case 2:
		g, b = 1, x
	case 3:
		g, b = x, 1
	case 4:
		r, b = x, 1
	default:
		r, b = 1, x
	}
	return tcell.NewRGBColor(int32(r*255), int32(g*255), int32(b*255))
}

func particleColor(c physics.Color, fade float64) tcell.Color {
	r, g, b := c.RGB()
	f := vmath.Clamp(fade, 0.2, 1)
	return tcell.NewRGBColor(int32(float64(r)*f), int32(float64(g)*f), int32(float64(b)*f))
}

// renderer draws snapshots; it owns no engine state
type renderer struct {
	rng *vmath.FastRand
}

func newRenderer(seed uint64) *renderer {
	return &renderer{rng: vmath.NewFastRand(seed)}
}

// draw renders one snapshot onto an already cleared canvas
func (r *renderer) draw(c canvas, l layout, s *engine.Snapshot, muted bool) {
	if s.Flags.Chaos {
		bg := tcell.StyleDefault.Background(hueColor(float64(s.Frame) * 3)).Dim(true)
		for y := 0; y < l.playRows(); y += 4 {
			for x := (int(s.Frame) + y) % 5; x < l.cols; x += 9 {
				c.SetContent(x, y, ' ', nil, bg)
			}
		}
	}

	r.drawParticles(c, l, s.Gravity, true)
	r.drawParticles(c, l, s.Swarm, false)
	r.drawParticles(c, l, s.Sparks, false)
	r.drawGlyph(c, l, s)
	r.drawStatus(c, l, s, muted)
}

func (r *renderer) drawParticles(c canvas, l layout, views []physics.View, trails bool) {
	rows := l.playRows()
	for i := range views {
		v := &views[i]
		if trails {
			n := len(v.Trail)
			for j, p := range v.Trail {
				x, y := toCell(p)
				if x < 0 || y < 0 || x >= l.cols || y >= rows {
					continue
				}
				// Older points fade toward black
				fade := float64(j+1) / float64(n+1) * v.Fade
				c.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(particleColor(v.Color, fade)))
			}
		}
		x, y := toCell(vmath.Vec2F{X: v.X, Y: v.Y})
		if x < 0 || y < 0 || x >= l.cols || y >= rows {
			continue
		}
		ch := v.Glyph
		if ch == 0 {
			ch = '●'
		}
		c.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(particleColor(v.Color, v.Fade)).Bold(true))
	}
}

func (r *renderer) drawGlyph(c canvas, l layout, s *engine.Snapshot) {
	ox, oy := l.glyphOrigin()
	dx, dy := glyphOffset(s)
	st := glyphStyle(s)
	if s.Flags.Screensaver {
		st = st.Dim(true)
	}
	glitch := []rune(glitchRunes)

	for row, line := range glyphArt {
		col := 0
		for _, ch := range line {
			x, y := ox+dx+col, oy+dy+row
			col++
			if ch == ' ' {
				continue
			}
			if s.Flags.Glitch && r.rng.Chance(0.4) {
				ch = glitch[r.rng.Intn(len(glitch))]
				x += r.rng.Intn(3) - 1
			}
			c.SetContent(x, y, ch, nil, st)
		}
	}

	if s.Phrase != "" && (s.Flags.Chaos || s.Flags.Gravity) {
		drawText(c, l.cols/2-len([]rune(s.Phrase))/2, oy+glyphRows+1, s.Phrase, st.Italic(true))
	}
}

func (r *renderer) drawStatus(c canvas, l layout, s *engine.Snapshot, muted bool) {
	y := l.rows - 1
	if y < 0 {
		return
	}
	bar := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	for x := 0; x < l.cols; x++ {
		c.SetContent(x, y, ' ', nil, bar)
	}
	drawText(c, 0, y, statusLine(s, muted), bar)
}

// statusLine formats mood values and active overlays
func statusLine(s *engine.Snapshot, muted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %-10s E:%3.0f H:%3.0f C:%3.0f A:%3.0f",
		s.Mood.Mood, s.Mood.Energy, s.Mood.Happiness, s.Mood.Chaos, s.Mood.Attention)

	var flags []string
	if s.Flags.Screensaver {
		flags = append(flags, "SCREENSAVER")
	}
	if s.Flags.Chaos {
		flags = append(flags, "CHAOS")
	}
	if s.Flags.Gravity {
		flags = append(flags, "GRAVITY")
	}
	if s.Flags.Glitch {
		flags = append(flags, "GLITCH")
	}
	if muted {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		b.WriteString(" | ")
		b.WriteString(strings.Join(flags, " "))
	}
	if s.ClickOrdinal >= 0 {
		fmt.Fprintf(&b, " | click #%d", s.ClickOrdinal)
	}
	return b.String()
}

func drawText(c canvas, x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		c.SetContent(x, y, ch, nil, st)
		x++
	}
}
