package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
	"github.com/gwillem/armus/pkg/rpc"
	"github.com/gwillem/armus/pkg/teleop"
)

type MonitorCommand struct {
	Addr string `long:"addr" description:"Address of the control loop (default: listen from the config)"`
}

const (
	headerHeight = 2 // title + blank line
	legendHeight = 2 // legend row + blank
	tableHeight  = 9 // telemetry table
	footerHeight = 7 // log box height
	maxLogs      = 5 // number of log messages to show
	borderSize   = 2 // chart border
)

// Motor colors - distinct colors for each motor
var motorColors = map[robot.MotorName]string{
	robot.Motor1: "196", // red
	robot.Motor2: "208", // orange
	robot.Motor3: "226", // yellow
	robot.Motor4: "46",  // green
	robot.Motor5: "51",  // cyan
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type monitorModel struct {
	source string
	hz     int
	frames <-chan teleop.Frame
	logCh  <-chan string // nil when watching a remote loop

	chart      *streamlinechart.Model
	width      int
	height     int
	logs       []string
	telemetry  *teleop.Telemetry
	lastAngles *motion.Vector5 // freeze the chart when idle
	closed     bool
	quitting   bool
}

func (m *monitorModel) addLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

type frameMsg teleop.Frame
type logMsg string
type feedClosedMsg struct{}

func waitForFrame(frames <-chan teleop.Frame) tea.Cmd {
	return func() tea.Msg {
		fr, ok := <-frames
		if !ok {
			return feedClosedMsg{}
		}
		return frameMsg(fr)
	}
}

func waitForLog(logs <-chan string) tea.Cmd {
	if logs == nil {
		return nil
	}
	return func() tea.Msg {
		return logMsg(<-logs)
	}
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *monitorModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 12 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - legendHeight - tableHeight - footerHeight - borderSize
	if height < 6 {
		height = 6
	}
	return width, height
}

func (m *monitorModel) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(w, h)
}

func newMonitorModel(source string, hz int, frames <-chan teleop.Frame, logs <-chan string) monitorModel {
	chart := streamlinechart.New(80, 12,
		streamlinechart.WithYRange(-360, 720),
	)

	for _, name := range robot.AllMotors() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(motorColors[name]))
		chart.SetDataSetStyles(string(name), runes.ThinLineStyle, style)
	}

	return monitorModel{
		source: source,
		hz:     hz,
		frames: frames,
		logCh:  logs,
		chart:  &chart,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFrame(m.frames),
		waitForLog(m.logCh),
	)
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case frameMsg:
		m.applyFrame(teleop.Frame(msg))
		return m, waitForFrame(m.frames)

	case feedClosedMsg:
		m.closed = true
		m.addLog("Telemetry stream closed")
		return m, nil

	case logMsg:
		m.addLog(string(msg))
		return m, waitForLog(m.logCh)
	}

	return m, nil
}

func (m *monitorModel) applyFrame(fr teleop.Frame) {
	switch {
	case fr.Graph != nil:
		angles := fr.Graph.Angles
		if m.lastAngles != nil && *m.lastAngles == angles {
			return
		}
		for i, name := range robot.AllMotors() {
			m.chart.PushDataSet(string(name), angles[i])
		}
		m.chart.DrawAll()
		m.lastAngles = &angles

	case fr.Telemetry != nil:
		t := *fr.Telemetry
		// A remote loop has no log channel, so report changes seen in
		// telemetry instead.
		if m.logCh == nil && m.telemetry != nil {
			if t.Mode != m.telemetry.Mode {
				m.addLog(t.Mode)
			}
			if t.ActiveJoint != m.telemetry.ActiveJoint {
				m.addLog(fmt.Sprintf("Joint controlled : %d", t.ActiveJoint))
			}
		}
		m.telemetry = &t

	case fr.Command != nil:
		if fr.Command.Stop && m.logCh == nil {
			m.addLog("All motors stopped")
		}
	}
}

func (m monitorModel) View() string {
	if m.quitting {
		return "Monitor stopped.\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(titleStyle.Render("armus"))
	sb.WriteString(" - " + m.source)
	if m.hz > 0 {
		sb.WriteString(fmt.Sprintf(" - %d Hz", m.hz))
	}
	if m.telemetry != nil {
		sb.WriteString(fmt.Sprintf(" - %s, joint %d", m.telemetry.Mode, m.telemetry.ActiveJoint))
	}
	if m.width > 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("  [%dx%d]", m.width, m.height)))
	}
	sb.WriteString("\n\n")

	// Joint angle chart
	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")
	sb.WriteString(renderLegend())
	sb.WriteString("\n")

	sb.WriteString(m.renderTelemetry())
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(max(m.width-4, 20)).
		Foreground(lipgloss.Color("9")) // bright red

	var logLines string
	if len(m.logs) == 0 {
		logLines = statusStyle.Render("Press 'q' to quit")
	} else {
		logLines = strings.Join(m.logs, "\n")
	}
	sb.WriteString(logStyle.Render(logLines))
	sb.WriteString("\n")

	return sb.String()
}

func (m monitorModel) renderTelemetry() string {
	if m.telemetry == nil {
		return statusStyle.Render("Waiting for telemetry...")
	}
	t := m.telemetry

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	goodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1)
	badStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)

	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	var angles motion.Vector5
	if m.lastAngles != nil {
		angles = *m.lastAngles
	}

	rows := make([][]string, 0, motion.NumSlots)
	for i, name := range robot.AllMotors() {
		rows = append(rows, []string{
			string(name),
			fmt.Sprintf("%.1f", t.Position[i]),
			fmt.Sprintf("%.2f", t.Velocity[i]),
			fmt.Sprintf("%.1f", angles[i]),
			yesNo(t.Connected[i]),
			yesNo(t.LimitReached[i]),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(statusStyle).
		Headers("Motor", "Position", "Velocity", "Angle", "Connected", "Limit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= motion.NumSlots {
				return cellStyle
			}
			switch col {
			case 4:
				if t.Connected[row] {
					return goodStyle
				}
				return badStyle
			case 5:
				if t.LimitReached[row] {
					return badStyle
				}
				return goodStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

func renderLegend() string {
	var items []string
	for _, name := range robot.AllMotors() {
		colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(motorColors[name])).Bold(true)
		items = append(items, colorStyle.Render("━━")+" "+string(name))
	}
	return strings.Join(items, "  ")
}

func (c *MonitorCommand) Execute(args []string) error {
	addr := c.Addr
	if addr == "" {
		addr = robot.DefaultConfig().Listen
		if cfg, err := robot.LoadConfigFrom(opts.Config); err == nil {
			addr = cfg.Listen
		}
	}

	conn, err := rpc.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames, err := rpc.NewTeleopClient(conn).Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", addr, err)
	}

	p := tea.NewProgram(newMonitorModel(addr, 0, frames, nil), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
