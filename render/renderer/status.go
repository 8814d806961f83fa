package renderer

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/holofolio/render"
)

const statusHelp = " q quit  space pause  m sound"

// StatusRenderer draws the key help and run state on the bottom row
type StatusRenderer struct{}

// NewStatusRenderer creates the status line renderer
func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

// Render writes help on the left and state flags on the right
func (r *StatusRenderer) Render(ctx render.Context, buf *render.Buffer) {
	rect := ctx.Layout.Status
	if rect.Empty() {
		return
	}
	buf.Text(rect.X, rect.Y, statusHelp, render.Muted)

	right := StatusFlags(ctx)
	w := render.StringWidth(right)
	if rect.W-w > render.StringWidth(statusHelp)+1 {
		buf.Text(rect.X+rect.W-w-1, rect.Y, right, render.Foreground)
	}
}

// StatusFlags formats the right-hand status text
func StatusFlags(ctx render.Context) string {
	var parts []string
	if ctx.Paused {
		parts = append(parts, "paused")
	}
	if ctx.Muted {
		parts = append(parts, "muted")
	}
	if ctx.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%.0f fps", ctx.FPS))
	}
	return strings.Join(parts, " · ")
}
