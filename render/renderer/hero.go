package renderer

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/holofolio/config"
	"github.com/lixenwraith/holofolio/render"
	"github.com/lixenwraith/holofolio/typewriter"
)

// Caret blink period in seconds
const caretPeriod = 1.0

// TextSource supplies the current cycling line
type TextSource interface {
	Snapshot() (typewriter.State, string)
}

type heroLine struct {
	text     string
	fg       colorful.Color
	gradient bool
	caret    bool
}

// HeroRenderer writes the hero copy inside the card
type HeroRenderer struct {
	hero config.HeroConfig
	text TextSource
}

// NewHeroRenderer creates a hero text renderer
func NewHeroRenderer(hero config.HeroConfig, text TextSource) *HeroRenderer {
	return &HeroRenderer{hero: hero, text: text}
}

// Render lays the hero lines out centred in the card, dropping optional rows when short on space
func (r *HeroRenderer) Render(ctx render.Context, buf *render.Buffer) {
	rect := ctx.Layout.Card
	inner := rect.W - 4
	if inner <= 0 || rect.H <= 2 {
		return
	}

	_, role := r.text.Snapshot()
	lines := r.lines(role, inner, rect.H-2)

	y := rect.Y + (rect.H-len(lines))/2
	for _, l := range lines {
		if l.text == "" && !l.caret {
			y++
			continue
		}
		start := rect.X + 2 + max((inner-render.StringWidth(l.text)-caretWidth(l))/2, 0)
		switch {
		case l.gradient:
			gradientText(buf, start, y, l.text, ctx.Frame.GradientAngle)
		default:
			buf.Text(start, y, l.text, l.fg)
		}
		if l.caret && caretOn(ctx.Frame.Time) {
			buf.Set(start+render.StringWidth(l.text), y, '|', render.Accent)
		}
		y++
	}
}

func (r *HeroRenderer) lines(role string, width, rows int) []heroLine {
	core := []heroLine{
		{text: r.hero.Greeting, fg: render.Muted},
		{text: r.hero.Name, gradient: true},
		{text: role, fg: render.Foreground, caret: true},
	}
	var tagline []heroLine
	for _, s := range Wrap(r.hero.Tagline, width) {
		tagline = append(tagline, heroLine{text: s, fg: render.Muted})
	}
	badge := heroLine{text: "[ " + r.hero.Initials + " ]", fg: render.Accent}

	out := core
	if free := rows - len(out); free > 1 && len(tagline) > 0 {
		n := min(len(tagline), free-1)
		out = append(append(out, heroLine{}), tagline[:n]...)
	}
	if r.hero.Initials != "" && rows-len(out) >= 2 {
		out = append([]heroLine{badge, {}}, out...)
	}
	if len(out) > rows {
		out = out[:rows]
	}
	return out
}

func caretWidth(l heroLine) int {
	if l.caret {
		return 1
	}
	return 0
}

func caretOn(t float64) bool {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return true
	}
	return math.Mod(math.Abs(t), caretPeriod) < caretPeriod/2
}

func gradientText(buf *render.Buffer, x, y int, s string, angle float64) {
	w := render.StringWidth(s)
	col := x
	for _, ch := range s {
		u := 0.5
		if w > 1 {
			u = float64(col-x) / float64(w-1)
		}
		fg := render.Brighten(GradientAt(u, 0.5, angle+90), 0.25)
		col += buf.Text(col, y, string(ch), fg)
	}
}

// Wrap breaks s into lines no wider than width cells at word boundaries
// Words wider than width are hard split
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		if curW > 0 {
			lines = append(lines, cur.String())
		}
		cur.Reset()
		curW = 0
	}
	for _, word := range strings.Fields(s) {
		ww := render.StringWidth(word)
		for ww > width {
			flush()
			head, rest := splitWidth(word, width)
			lines = append(lines, head)
			word, ww = rest, render.StringWidth(rest)
		}
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	flush()
	return lines
}

func splitWidth(s string, width int) (head, rest string) {
	w := 0
	for i, r := range s {
		rw := render.StringWidth(string(r))
		if w+rw > width {
			if i == 0 {
				i += len(string(r))
			}
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
