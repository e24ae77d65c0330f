package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/drivers/i2c"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/tcs3472x"
	"github.com/mklimuk/tcs3472x/cmd/tcs3472x/console"
)

// ProbeCmd checks for a TCS3472x on a board-managed bus through gobot,
// without going through this project's own transports.
var ProbeCmd = &cli.Command{
	Name:  "probe",
	Usage: "look for the sensor on a board i2c bus (gobot)",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "bus", Usage: "i2c bus number", Value: 2},
		&cli.IntFlag{Name: "addr", Usage: "sensor i2c address", Value: tcs3472x.DefaultAddress},
	},
	Action: func(c *cli.Context) error {
		adaptor := nanopi.NewNeoAdaptor()
		err := adaptor.I2cBusAdaptor.Connect()
		if err != nil {
			return fmt.Errorf("adaptor connect error: %w", err)
		}
		defer adaptor.I2cBusAdaptor.Finalize()
		board := i2c.NewGenericDriver(adaptor, "tcs3472x", c.Int("addr"), func(conf i2c.Config) {
			conf.SetBus(c.Int("bus"))
		})
		err = board.Start()
		if err != nil {
			return fmt.Errorf("start error: %w", err)
		}
		defer func() { _ = board.Halt() }()
		err = board.Write([]byte{tcs3472x.Command(tcs3472x.RegID, tcs3472x.Repeat)})
		if err != nil {
			return fmt.Errorf("id register select error: %w", err)
		}
		data := make([]byte, 1)
		err = board.Read(data)
		if err != nil {
			return fmt.Errorf("id read error: %w", err)
		}
		switch data[0] {
		case tcs3472x.IDTCS34721:
			console.Printf("found %s at %s\n", console.White("TCS34721/TCS34725"), console.White(fmt.Sprintf("%#x", c.Int("addr"))))
		case tcs3472x.IDTCS34723:
			console.Printf("found %s at %s\n", console.White("TCS34723/TCS34727"), console.White(fmt.Sprintf("%#x", c.Int("addr"))))
		default:
			console.Warnf("unexpected device id %#x", data[0])
		}
		return nil
	},
}
