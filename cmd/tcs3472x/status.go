package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/tcs3472x"
	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/console"
)

type sensorStatus struct {
	ID                string  `yaml:"id"`
	Part              string  `yaml:"part"`
	PowerOn           bool    `yaml:"power_on"`
	RGBCEnabled       bool    `yaml:"rgbc_enabled"`
	WaitEnabled       bool    `yaml:"wait_enabled"`
	InterruptEnabled  bool    `yaml:"interrupt_enabled"`
	IntegrationTimeMs float64 `yaml:"integration_time_ms"`
	CycleValid        bool    `yaml:"cycle_valid"`
	InterruptAsserted bool    `yaml:"interrupt_asserted"`
}

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "dump sensor registers",
	Flags: transportFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		id, err := s.GetID(ctx)
		if err != nil {
			return console.Exit(1, "error reading ID register: %s", console.Red(err))
		}
		flags, err := s.GetEnable(ctx)
		if err != nil {
			return console.Exit(1, "error reading ENABLE register: %s", console.Red(err))
		}
		atime, err := s.GetIntegrationTime(ctx)
		if err != nil {
			return console.Exit(1, "error reading ATIME register: %s", console.Red(err))
		}
		status, err := s.GetStatus(ctx)
		if err != nil {
			return console.Exit(1, "error reading STATUS register: %s", console.Red(err))
		}
		enc := yaml.NewEncoder(os.Stdout)
		err = enc.Encode(sensorStatus{
			ID:                fmt.Sprintf("%#x", id),
			Part:              partName(id),
			PowerOn:           flags.PowerOn(),
			RGBCEnabled:       flags.RGBC(),
			WaitEnabled:       flags.Wait(),
			InterruptEnabled:  flags.Interrupt(),
			IntegrationTimeMs: atime,
			CycleValid:        status.Valid(),
			InterruptAsserted: status.Interrupt(),
		})
		if err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	},
}

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read the device ID register",
	Flags: transportFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		id, err := s.GetID(ctx)
		if err != nil {
			return console.Exit(1, "error reading ID register: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "%s (%s)", console.White(fmt.Sprintf("%#x", id)), partName(id))
		return nil
	},
}

var clearInterruptCmd = cli.Command{
	Name:    "clear-interrupt",
	Aliases: []string{"clri"},
	Usage:   "deassert the clear channel interrupt",
	Flags:   transportFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		if err := s.ClearInterrupt(ctx); err != nil {
			return console.Exit(1, "error clearing interrupt: %s", console.Red(err))
		}
		console.Print("interrupt cleared")
		return nil
	},
}

func partName(id byte) string {
	switch id {
	case tcs3472x.IDTCS34721:
		return "TCS34721/TCS34725"
	case tcs3472x.IDTCS34723:
		return "TCS34723/TCS34727"
	default:
		return "unknown"
	}
}
