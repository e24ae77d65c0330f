package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/console"
)

var readCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Usage:   "read one RGBC sample",
	Flags: append(transportFlags(),
		&cli.Float64Flag{
			Name:  "atime",
			Value: 24,
			Usage: "integration time in ms",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		if err := s.Init(ctx); err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		atime, err := s.SetIntegrationTime(ctx, c.Float64("atime"))
		if err != nil {
			return console.Exit(1, "error setting integration time: %s", console.Red(err))
		}
		// first conversion completes one integration cycle after AEN
		time.Sleep(time.Duration(atime*float64(time.Millisecond)) + 10*time.Millisecond)
		sample, err := s.GetAllColors(ctx)
		if err != nil {
			return console.Exit(1, "error reading colors: %s", console.Red(err))
		}
		console.PInfof(console.PictoRainbow, "C %s  R %s  G %s  B %s",
			console.White(sample.Clear), console.Red(sample.Red),
			console.Green(sample.Green), console.Blue(sample.Blue))
		return nil
	},
}

var watchCmd = cli.Command{
	Name:  "watch",
	Usage: "continuously print single-channel and burst reads",
	Flags: append(transportFlags(),
		&cli.DurationFlag{
			Name:  "interval",
			Value: time.Second,
			Usage: "delay between readouts",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		if err := s.Init(ctx); err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		for {
			// four independent transactions, may straddle ADC cycles
			clear, err := s.GetClear(ctx)
			if err != nil {
				console.Errorf("clear read error: %s", console.Red(err))
			}
			red, err := s.GetRed(ctx)
			if err != nil {
				console.Errorf("red read error: %s", console.Red(err))
			}
			green, err := s.GetGreen(ctx)
			if err != nil {
				console.Errorf("green read error: %s", console.Red(err))
			}
			blue, err := s.GetBlue(ctx)
			if err != nil {
				console.Errorf("blue read error: %s", console.Red(err))
			}
			// one atomic burst for comparison
			all, err := s.GetAllColors(ctx)
			if err != nil {
				console.Errorf("burst read error: %s", console.Red(err))
			}
			console.Printf("SINGLE |    C = %d    |    R = %d    |    G = %d    |    B = %d    |\n", clear, red, green, blue)
			console.Printf("ALL    |    C = %d    |    R = %d    |    G = %d    |    B = %d    |\n", all.Clear, all.Red, all.Green, all.Blue)
			time.Sleep(c.Duration("interval"))
		}
	},
}
