package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hipsterbrown/feetech-servo/feetech"
	"go.bug.st/serial"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type SetupCommand struct{}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("armus setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━"))
	fmt.Println()

	config := robot.DefaultConfig()
	if robot.ConfigExists(opts.Config) {
		existing, err := robot.LoadConfigFrom(opts.Config)
		if err != nil {
			return err
		}
		config = existing
		fmt.Printf("Editing %s\n\n", opts.Config)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Control mode").
				Description("Simulation integrates joint commands without hardware").
				Options(
					huh.NewOption("Simulation", robot.ModeSimulation),
					huh.NewOption("Real arm", robot.ModeReal),
				).
				Value(&config.Mode),
			huh.NewInput().
				Title("Listen address").
				Description("Operator input and telemetry are served here").
				Value(&config.Listen),
			huh.NewInput().
				Title("Kinematics solver address").
				Description("Leave empty to run the reference solver in-process").
				Value(&config.Solver),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}

	if config.Mode == robot.ModeReal {
		config.Hardware.Port = selectPort(config.Hardware.Port)
		if config.Hardware.Port != "" {
			cal, err := calibrateArm(config.Hardware.Port)
			if err != nil {
				return fmt.Errorf("calibrate arm on %s: %w", config.Hardware.Port, err)
			}
			config.Hardware.Calibration = cal
		}
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.SaveTo(opts.Config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	fmt.Println(successStyle.Render("Setup complete!"))
	fmt.Printf("Configuration saved to %s\n", opts.Config)
	fmt.Println()
	fmt.Println("Start the control loop with: " + headerStyle.Render("armus run --tui"))

	return nil
}

// selectPort asks for the servo bus port. An empty answer means joint
// states arrive over rpc.
func selectPort(current string) string {
	ports, err := serial.GetPortsList()
	if err != nil {
		fmt.Printf("Error listing ports: %v\n", err)
	}

	options := []huh.Option[string]{
		huh.NewOption("None (joint states over rpc)", ""),
	}
	for _, port := range ports {
		// Skip Bluetooth ports on macOS
		if strings.Contains(port, "Bluetooth") {
			continue
		}
		options = append(options, huh.NewOption(port, port))
	}

	port := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Servo bus port").
				Description(fmt.Sprintf("Found %d serial port(s)", len(options)-1)).
				Options(options...).
				Value(&port),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}
	return port
}

func connectToArm(port string) (*feetech.Bus, []feetech.FoundServo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: 1_000_000,
		Protocol: feetech.ProtocolSTS,
		Timeout:  100 * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	servos, err := bus.Scan(ctx, 1, motion.NumSlots)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}

	if !isFiveAxisArm(servos) {
		bus.Close()
		return nil, nil, fmt.Errorf("expected %d servos with IDs 1-%d, found %d", motion.NumSlots, motion.NumSlots, len(servos))
	}

	return bus, servos, nil
}

func isFiveAxisArm(servos []feetech.FoundServo) bool {
	ids := make(map[int]bool)
	for _, s := range servos {
		ids[s.ID] = true
	}
	for i := 1; i <= motion.NumSlots; i++ {
		if !ids[i] {
			return false
		}
	}
	return true
}

// calibrateArm records the raw position of every servo in the home pose as
// its homing offset.
func calibrateArm(port string) (robot.Calibration, error) {
	fmt.Println()
	fmt.Println(subHeaderStyle.Render("━━━ Calibrating Arm ━━━"))
	fmt.Println()

	bus, servos, err := connectToArm(port)
	if err != nil {
		return nil, err
	}
	defer bus.Close()

	servoMap := make(map[int]*feetech.Servo)
	for _, s := range servos {
		servoMap[s.ID] = feetech.NewServo(bus, s.ID, s.Model)
	}

	// Disable all servos so user can move arm freely
	ctx := context.Background()
	for _, servo := range servoMap {
		servo.Disable(ctx)
	}

	waitForUser("Move every joint to its home pose, then continue.")

	calibration := make(robot.Calibration)
	rows := make([][]string, 0, motion.NumSlots)
	for i, name := range robot.AllMotors() {
		id := i + 1
		raw, err := servoMap[id].Position(ctx)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		calibration[name] = robot.MotorCalibration{ID: id, HomingOffset: raw}
		rows = append(rows, []string{string(name), fmt.Sprintf("%d", id), fmt.Sprintf("%d", raw)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Motor", "ID", "Homing offset").
		Rows(rows...)
	fmt.Println(t.Render())
	fmt.Println(successStyle.Render("Arm calibrated."))

	return calibration, nil
}

func waitForUser(prompt string) {
	fmt.Println(prompt)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("").
				Affirmative("Continue").
				Negative("").
				Value(new(bool)),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		os.Exit(0)
	}
}
