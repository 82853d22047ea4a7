package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const emptyText = "No events yet."

type styles struct {
	day      lipgloss.Style
	time     lipgloss.Style
	desc     lipgloss.Style
	media    lipgloss.Style
	controls lipgloss.Style
	notice   lipgloss.Style
	err      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		day:      r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#8be9fd"}),
		time:     r.NewStyle().Faint(true),
		desc:     r.NewStyle(),
		media:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#50fa7b"}),
		controls: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}),
		notice:   r.NewStyle().Italic(true),
		err:      r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#ff5555"}),
	}
}

// Renderer writes timelines to a terminal. Colours are dropped when the
// writer is not a terminal.
type Renderer struct {
	w     io.Writer
	style styles
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, style: newStyles(lipgloss.NewRenderer(w))}
}

// Timeline writes a header line followed by the grouped rows.
func (r *Renderer) Timeline(label string, groups []DateGroup) {
	fmt.Fprintln(r.w, r.style.day.Render("Timeline: "+label))
	if len(groups) == 0 {
		fmt.Fprintln(r.w, r.style.notice.Render(emptyText))
		return
	}

	for _, g := range groups {
		fmt.Fprintln(r.w, r.style.day.Render("── "+g.Label+" ──"))
		for _, row := range g.Rows {
			r.row(row)
		}
	}
}

func (r *Renderer) row(row Row) {
	fmt.Fprintf(r.w, "  %s  %s\n", r.style.time.Render(row.Time), r.style.desc.Render(row.Event.Description))
	if m := row.Media; m != nil {
		target := m.URL
		if target == "" {
			target = m.Key
		}
		line := fmt.Sprintf("%s: %s  (view %s)", m.Kind, target, row.Event.EventID)
		fmt.Fprintln(r.w, "    "+r.style.media.Render(line))
	}
	if row.Editable {
		ctl := fmt.Sprintf("[edit %s] [delete %s]", row.Event.EventID, row.Event.EventID)
		fmt.Fprintln(r.w, "    "+r.style.controls.Render(ctl))
	}
}

// Notice writes an informational line such as a prompt to pick a timeline.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.w, r.style.notice.Render(msg))
}

// Error writes the inline error slot, if set.
func (r *Renderer) Error(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	fmt.Fprintln(r.w, r.style.err.Render(msg))
}
