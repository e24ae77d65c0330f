package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	chlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tcs3472x"
	"github.com/mklimuk/tcs3472x/adapter"
	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/command"
	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/console"
	"github.com/mklimuk/tcs3472x/i2c"
)

var version string
var commit string
var date string

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.NewApp()
	app.Name = "tcs3472x"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "TCS3472x color-light sensor cli"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		charm := chlog.NewWithOptions(os.Stdout, chlog.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		})
		charm.SetColorProfile(termenv.TrueColor)
		charm.SetLevel(chlog.InfoLevel)
		if ctx.Bool("verbose") {
			charm.SetLevel(chlog.DebugLevel)
		}
		slog.SetDefault(slog.New(charm))
		return nil
	}
	app.Commands = cli.Commands{
		&readCmd,
		&watchCmd,
		&statusCmd,
		&idCmd,
		&atimeCmd,
		&gainCmd,
		&clearInterruptCmd,
		&mcp2221Cmd,
		command.ProbeCmd,
	}
	err := app.Run(os.Args)
	if err != nil {
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			log.Printf("unexpected error: %v", err)
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}

func transportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Value:   "mcp2221",
			Usage:   "bus transport: mcp2221, generic or nanopi",
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Value:   "/dev/i2c-1",
			Usage:   "i2c device path (generic/nanopi adapters)",
		},
		&cli.IntFlag{
			Name:  "addr",
			Value: tcs3472x.DefaultAddress,
			Usage: "sensor i2c address",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

// openTransport selects the bus transport from command flags. The returned
// closer is a no-op for transports without an owned file handle.
func openTransport(c *cli.Context) (tcs3472x.I2CBus, func(), error) {
	switch c.String("adapter") {
	case "mcp2221":
		a := adapter.NewMCP2221()
		if err := a.Init(); err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return a, func() {}, nil
	case "generic", "nanopi":
		bus, err := i2c.NewGenericBus(c.String("device"))
		if err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return bus, func() {
			if err := bus.Close(); err != nil {
				console.Errorf("error closing bus: %s", console.Red(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
	}
}

func openSensor(c *cli.Context) (*tcs3472x.TCS3472x, func(), error) {
	bus, closer, err := openTransport(c)
	if err != nil {
		return nil, nil, err
	}
	return tcs3472x.New(bus, tcs3472x.WithAddress(byte(c.Int("addr")))), closer, nil
}
