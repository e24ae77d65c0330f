package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tcs3472x"
	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/console"
)

var atimeCmd = cli.Command{
	Name:  "atime",
	Usage: "RGBC integration time",
	Subcommands: []*cli.Command{
		&atimeGetCmd,
		&atimeSetCmd,
	},
}

var atimeGetCmd = cli.Command{
	Name:  "get",
	Flags: transportFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		ms, err := s.GetIntegrationTime(ctx)
		if err != nil {
			return console.Exit(1, "error reading integration time: %s", console.Red(err))
		}
		console.PInfof(console.PictoTimer, "%s ms", console.White(ms))
		return nil
	},
}

var atimeSetCmd = cli.Command{
	Name:      "set",
	ArgsUsage: "<milliseconds>",
	Flags: append(transportFlags(),
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "do not ask for confirmation while the sensor is integrating",
		},
	),
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return console.Exit(1, "missing integration time argument")
		}
		ms, err := strconv.ParseFloat(c.Args().Get(0), 64)
		if err != nil {
			return console.Exit(1, "invalid integration time: %s", console.Red(err))
		}
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		if !c.Bool("yes") {
			flags, err := s.GetEnable(ctx)
			if err != nil {
				return console.Exit(1, "error reading ENABLE register: %s", console.Red(err))
			}
			if flags.RGBC() {
				answer, err := console.YesOrNo("sensor is integrating; changing the time invalidates the current cycle, continue?")
				if err != nil {
					return console.Exit(1, "prompt error: %s", console.Red(err))
				}
				if answer != console.Yes {
					console.Print("aborted")
					return nil
				}
			}
		}
		actual, err := s.SetIntegrationTime(ctx, ms)
		if err != nil {
			return console.Exit(1, "error setting integration time: %s", console.Red(err))
		}
		if actual != ms {
			console.Warnf("requested %g ms, achieved %g ms", ms, actual)
		}
		console.PInfof(console.PictoTimer, "%s ms", console.White(actual))
		return nil
	},
}

var gainCmd = cli.Command{
	Name:      "gain",
	Usage:     "set RGBC gain",
	ArgsUsage: "<1|4|16|60>",
	Flags:     transportFlags(),
	Action: func(c *cli.Context) error {
		var gain tcs3472x.Gain
		switch c.Args().Get(0) {
		case "1":
			gain = tcs3472x.Gain1x
		case "4":
			gain = tcs3472x.Gain4x
		case "16":
			gain = tcs3472x.Gain16x
		case "60":
			gain = tcs3472x.Gain60x
		default:
			return console.Exit(1, "invalid gain %q (expected 1, 4, 16 or 60)", c.Args().Get(0))
		}
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, closer, err := openSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closer()
		if err := s.SetGain(ctx, gain); err != nil {
			return console.Exit(1, "error setting gain: %s", console.Red(err))
		}
		console.Printf("gain set to %s\n", console.White(gain))
		return nil
	},
}
