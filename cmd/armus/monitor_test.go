package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/teleop"
)

func update(t *testing.T, m monitorModel, msg tea.Msg) monitorModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(monitorModel)
	require.True(t, ok)
	return mm
}

func TestMonitor_RemoteLogsFromTelemetry(t *testing.T) {
	m := newMonitorModel("test", 0, make(chan teleop.Frame), nil)

	m = update(t, m, frameMsg{Telemetry: &teleop.Telemetry{Mode: "Joint", ActiveJoint: 1}})
	assert.Empty(t, m.logs)

	m = update(t, m, frameMsg{Telemetry: &teleop.Telemetry{Mode: "Cartesian", ActiveJoint: 2}})
	assert.Equal(t, []string{"Cartesian", "Joint controlled : 2"}, m.logs)

	stop := teleop.StopCommand()
	m = update(t, m, frameMsg{Command: &stop})
	assert.Equal(t, "All motors stopped", m.logs[len(m.logs)-1])
}

func TestMonitor_LocalUsesLogChannel(t *testing.T) {
	logs := make(chan string, 1)
	m := newMonitorModel("test", 50, make(chan teleop.Frame), logs)

	m = update(t, m, frameMsg{Telemetry: &teleop.Telemetry{Mode: "Joint", ActiveJoint: 1}})
	m = update(t, m, frameMsg{Telemetry: &teleop.Telemetry{Mode: "Cartesian", ActiveJoint: 1}})
	assert.Empty(t, m.logs)

	m = update(t, m, logMsg("Cartesian"))
	assert.Equal(t, []string{"Cartesian"}, m.logs)
}

func TestMonitor_KeepsLastLogs(t *testing.T) {
	m := newMonitorModel("test", 0, make(chan teleop.Frame), nil)
	for i := 0; i < maxLogs+3; i++ {
		m.addLog(string(rune('a' + i)))
	}
	require.Len(t, m.logs, maxLogs)
	assert.Equal(t, "d", m.logs[0])
}

func TestMonitor_GraphFreezesWhenIdle(t *testing.T) {
	m := newMonitorModel("test", 0, make(chan teleop.Frame), nil)
	angles := motion.Vector5{10, 20, 30, 40, 50}

	m = update(t, m, frameMsg{Graph: &teleop.Graph{Angles: angles}})
	require.NotNil(t, m.lastAngles)
	first := m.lastAngles

	m = update(t, m, frameMsg{Graph: &teleop.Graph{Angles: angles}})
	assert.Same(t, first, m.lastAngles)

	angles[2] = 31
	m = update(t, m, frameMsg{Graph: &teleop.Graph{Angles: angles}})
	assert.Equal(t, 31.0, m.lastAngles[2])
}

func TestMonitor_View(t *testing.T) {
	m := newMonitorModel("127.0.0.1:50051", 50, make(chan teleop.Frame), nil)
	assert.Contains(t, m.View(), "Waiting for telemetry")

	m = update(t, m, frameMsg{Telemetry: &teleop.Telemetry{
		Mode:        "Joint",
		ActiveJoint: 3,
		Connected:   motion.Flags5{true, true, true, true, true},
	}})
	view := m.View()
	assert.Contains(t, view, "Joint, joint 3")
	assert.Contains(t, view, "motor5")

	m = update(t, m, feedClosedMsg{})
	assert.True(t, m.closed)
}
