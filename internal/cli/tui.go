package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/treeview/pkg/render/term"
)

// frameInterval is the preview refresh period (about 30 fps).
const frameInterval = 33 * time.Millisecond

// previewChrome is the number of terminal rows used by the header and footer.
const previewChrome = 3

// =============================================================================
// PreviewModel - Animated terminal preview
// =============================================================================

// tickMsg advances the edge animation by one frame.
type tickMsg time.Time

// PreviewModel is the bubbletea model that replays a rendered tree on a
// character grid, growing each edge from its source node.
type PreviewModel struct {
	Title   string
	Canvas  *term.Canvas
	Elapsed time.Duration
}

// NewPreviewModel creates a preview model for a canvas that has already been
// drawn on.
func NewPreviewModel(title string, canvas *term.Canvas) PreviewModel {
	return PreviewModel{Title: title, Canvas: canvas}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Done reports whether the animation has settled.
func (m PreviewModel) Done() bool {
	return m.Elapsed >= m.Canvas.Duration()
}

func (m PreviewModel) Init() tea.Cmd {
	return tick()
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			restart := m.Done()
			m.Elapsed = 0
			if restart {
				return m, tick()
			}
		}
	case tea.WindowSizeMsg:
		m.Canvas.Resize(msg.Width, msg.Height-previewChrome)
	case tickMsg:
		if m.Done() {
			return m, nil
		}
		m.Elapsed = min(m.Elapsed+frameInterval, m.Canvas.Duration())
		if m.Done() {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(colorize(m.Canvas.Frame(m.Elapsed)))
	b.WriteString("\n\n")

	status := fmt.Sprintf("%4dms", m.Elapsed.Milliseconds())
	if m.Done() {
		status = "done"
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%s]  r replay  q quit", status)))

	return b.String()
}

// colorize styles node glyphs and edge strokes; labels keep the default
// foreground.
func colorize(frame string) string {
	var b strings.Builder
	for _, r := range frame {
		switch r {
		case term.NodeRune:
			b.WriteString(styleNodeGlyph.Render(string(r)))
		case '─', '│', '╲', '╱':
			b.WriteString(styleEdgeGlyph.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
