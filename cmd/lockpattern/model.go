package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lockpattern/config"
	"github.com/katalvlaran/lockpattern/pattern"
	"github.com/katalvlaran/lockpattern/render"
	"github.com/katalvlaran/lockpattern/render/ggraster"
	"github.com/katalvlaran/lockpattern/widget"
)

// Mode selects what a finished gesture does.
type Mode int

const (
	// ModeUnlock checks gestures against the secret.
	ModeUnlock Mode = iota
	// ModeEnroll stores the next gesture as the new secret.
	ModeEnroll
)

func (m Mode) String() string {
	if m == ModeEnroll {
		return "ENROLL"
	}

	return "UNLOCK"
}

// statusLines is the number of terminal rows reserved below the grid.
const statusLines = 1

// clearErrorMsg ends the error display of the gesture with the same generation.
type clearErrorMsg struct {
	gen int
}

var (
	modeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0596f6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2e9e44"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ea0945"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	copyToClip  = clipboard.WriteAll
	exportFrame = ggraster.Export
	nowFunc     = time.Now
)

type model struct {
	width, height int
	w             *widget.Widget
	theme         render.Theme
	cfg           config.Config
	log           *slog.Logger

	mode      Mode
	status    string
	statusErr bool
	lastTrace []int
	errorGen  int
}

func newModel(cfg config.Config, mode Mode, logger *slog.Logger) *model {
	return &model{
		w:     widget.New(widget.WithSecret(cfg.Secret), widget.WithLogger(logger)),
		theme: render.DefaultTheme(),
		cfg:   cfg,
		log:   logger,
		mode:  mode,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		sw, sh := surfaceSize(m.width, m.height-statusLines)
		if err := m.w.OnSurfaceResized(sw, sh); err != nil {
			m.setStatus("terminal too small", true)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case clearErrorMsg:
		if msg.gen == m.errorGen {
			m.w.ResetSelection()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := toSurface(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// A new press supersedes any pending error display.
		m.errorGen++
		m.w.OnPointerDown(x, y)
	case msg.Action == tea.MouseActionMotion:
		m.w.OnPointerMove(x, y)
	case msg.Action == tea.MouseActionRelease:
		res := m.w.OnPointerUp(x, y)
		return m.finishGesture(res.Outcome)
	}

	return nil
}

// finishGesture applies the host policy for a completed gesture.
func (m *model) finishGesture(outcome pattern.Outcome) tea.Cmd {
	if outcome == pattern.None {
		return nil
	}
	m.lastTrace = m.w.Selection()

	if m.mode == ModeEnroll {
		s, err := pattern.NewSecret(m.lastTrace...)
		if err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}
		m.w.SetSecret(s)
		m.mode = ModeUnlock
		m.setStatus(fmt.Sprintf("secret set to %s (y: copy)", s), false)
		return nil
	}

	if outcome == pattern.Match {
		m.setStatus("unlocked", false)
		return nil
	}

	m.w.MarkSelectionAsError()
	m.setStatus("wrong pattern", true)
	gen := m.errorGen

	return tea.Tick(m.cfg.ErrorDisplay, func(time.Time) tea.Msg {
		return clearErrorMsg{gen: gen}
	})
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "e":
		m.mode = ModeEnroll
		m.errorGen++
		m.w.ResetSelection()
		m.setStatus("trace the new pattern", false)
	case "r":
		m.errorGen++
		m.w.ResetSelection()
		m.setStatus("", false)
	case "y":
		m.copyTrace()
	case "p":
		m.exportPNG()
	}

	return m, nil
}

func (m *model) copyTrace() {
	if len(m.lastTrace) == 0 {
		m.setStatus("nothing traced yet", true)
		return
	}
	s, err := pattern.NewSecret(m.lastTrace...)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if err := copyToClip(s.String()); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		m.setStatus("clipboard unavailable", true)
		return
	}
	m.setStatus("copied "+s.String(), false)
}

func (m *model) exportPNG() {
	name := fmt.Sprintf("lockpattern-%s.png", nowFunc().Format("20060102-150405"))
	path, err := m.cfg.ExportPath(name)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	opts := ggraster.DefaultOptions()
	opts.Labels = m.cfg.Labels
	if err := exportFrame(m.w.RenderModel(), path, opts); err != nil {
		m.log.Warn("export failed", "path", path, "err", err)
		m.setStatus("export failed: "+err.Error(), true)
		return
	}
	m.setStatus("saved "+path, false)
}

func (m *model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *model) View() string {
	rows := m.height - statusLines
	cv := newCellCanvas(m.width, rows)
	render.Draw(m.w.RenderModel(), cv, m.theme)

	var b strings.Builder
	b.WriteString(cv.String())
	if rows > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(m.statusBar())

	return b.String()
}

func (m *model) statusBar() string {
	parts := []string{modeStyle.Render(m.mode.String())}
	if m.status != "" {
		st := okStyle
		if m.statusErr {
			st = errStyle
		}
		parts = append(parts, st.Render(m.status))
	}
	parts = append(parts, hintStyle.Render("drag to trace · e enroll · r reset · p png · y copy · q quit"))

	return strings.Join(parts, "  ")
}
