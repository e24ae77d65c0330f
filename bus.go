package tcs3472x

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the transport the driver talks through. Implementations live in
// the i2c (Linux user space) and adapter (USB HID) packages; the driver
// assumes exclusive ownership of the bus for its lifetime.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}
