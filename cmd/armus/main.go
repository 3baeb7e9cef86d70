package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Config  string `short:"c" long:"config" default:"armus.json" description:"Configuration file"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug messages"`

	Run     RunCommand     `command:"run" description:"Run the control loop and serve operator input"`
	Monitor MonitorCommand `command:"monitor" alias:"mon" description:"Watch telemetry of a running control loop"`
	Solver  SolverCommand  `command:"solver" description:"Serve the reference kinematics solver"`
	Setup   SetupCommand   `command:"setup" description:"Create or edit the configuration file"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "armus - joystick teleoperation for five-joint robot arms"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
