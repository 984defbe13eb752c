package ui

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	scanprogress "github.com/cachehound/cachehound/internal/progress"
	"github.com/cachehound/cachehound/internal/scanner"
	"github.com/cachehound/cachehound/internal/ui/styles"
)

// progressMsg carries one progress event into the model
type progressMsg scanprogress.ScanProgress

// progressClosedMsg signals that the subscription was closed
type progressClosedMsg struct{}

// scanDoneMsg carries the scan outcome into the model
type scanDoneMsg struct {
	result *scanner.Result
	err    error
}

// ScanViewModel renders live scan progress: a spinner while walking, then a
// gradient bar counting scanned candidates. The scan itself runs in a
// command; ctrl+c cancels it through the model's context.
type ScanViewModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	scanner *scanner.Scanner
	root    string
	events  <-chan scanprogress.ScanProgress

	spinner spinner.Model
	bar     progress.Model
	current *scanprogress.ScanProgress
	width   int

	result *scanner.Result
	err    error
	done   bool
}

// NewScanViewModel creates a scan view for root, subscribed to the scanner's
// progress reporter
func NewScanViewModel(ctx context.Context, s *scanner.Scanner, root string) *ScanViewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.ScanStyle

	scanCtx, cancel := context.WithCancel(ctx)

	return &ScanViewModel{
		ctx:     scanCtx,
		cancel:  cancel,
		scanner: s,
		root:    root,
		events:  s.ProgressReporter().Subscribe(),
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		width:   terminalWidth(),
	}
}

// Init starts the spinner, the scan, and the progress subscription
func (m *ScanViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.performScan,
		m.waitForProgress,
	)
}

// Update handles messages
func (m *ScanViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// The scan notices the cancel and delivers scanDoneMsg
			m.cancel()
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		p := scanprogress.ScanProgress(msg)
		m.current = &p
		return m, m.waitForProgress

	case progressClosedMsg:
		return m, nil

	case scanDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		m.scanner.ProgressReporter().Unsubscribe(m.events)
		return m, tea.Quit
	}

	return m, nil
}

// View renders the scan view
func (m *ScanViewModel) View() string {
	if m.done {
		// The final output is printed by the reporter once the program exits
		return ""
	}

	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(scanprogress.FormatScanProgress(m.current))
	b.WriteString("\n")

	if m.current != nil && m.current.Phase == scanprogress.PhaseScanning && m.current.Total > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.current.Scanned) / float64(m.current.Total)))
		b.WriteString("\n")
		if m.current.CurrentPath != "" {
			b.WriteString(styles.FilePathStyle.Render(truncatePath(m.current.CurrentPath, m.width-4)))
			b.WriteString("\n")
		}
	}

	b.WriteString(styles.DimStyle.Render("Press ctrl+c to cancel"))

	return b.String()
}

// Result returns the scan outcome once the program has finished
func (m *ScanViewModel) Result() (*scanner.Result, error) {
	return m.result, m.err
}

// performScan runs the scan and reports its outcome
func (m *ScanViewModel) performScan() tea.Msg {
	result, err := m.scanner.Scan(m.ctx, m.root)
	return scanDoneMsg{result: result, err: err}
}

// waitForProgress blocks on the next progress event
func (m *ScanViewModel) waitForProgress() tea.Msg {
	p, ok := <-m.events
	if !ok {
		return progressClosedMsg{}
	}
	return progressMsg(p)
}

// RunScanView runs the live view on out until the scan finishes and returns
// the scan outcome
func RunScanView(ctx context.Context, s *scanner.Scanner, root string, out io.Writer) (*scanner.Result, error) {
	model := NewScanViewModel(ctx, s, root)

	program := tea.NewProgram(model, tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	return final.(*ScanViewModel).Result()
}

func truncatePath(path string, maxLen int) string {
	if maxLen < 8 {
		maxLen = 8
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// terminalWidth reads the width of the terminal the view draws on,
// falling back to 80 columns when it cannot be determined
func terminalWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		width = w
	}
	return width
}
