package tcs3472x

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
)

// TCS3472x 7-bit I2C address. The whole family (TCS34721/3/5/7) answers on
// one of two fixed addresses depending on the bus voltage variant.
const DefaultAddress = 0x29

// Device ID values reported by the ID register.
const (
	IDTCS34721 byte = 0x44 // also TCS34725
	IDTCS34723 byte = 0x4D // also TCS34727
)

// Integration and wait time are programmed in 2.4ms steps counted down
// from 256. Raw value 0 is special-cased by the sensor to 700ms (256 cycles
// plus internal overhead), so requests at or above the formula maximum
// saturate to it.
const (
	timeStepMs   = 2.4
	saturationMs = 614.4
	maxTimeMs    = 700.0
)

// ColorSample holds one RGBC readout. Channel values are 16-bit ADC counts;
// their ceiling depends on the configured integration time and gain.
type ColorSample struct {
	Clear uint16 `yaml:"clear"`
	Red   uint16 `yaml:"red"`
	Green uint16 `yaml:"green"`
	Blue  uint16 `yaml:"blue"`
}

// TCS3472x represents an AMS TCS3472x RGBC color-light sensor.
// See: https://ams.com/documents/20143/36005/TCS3472_DS000390_3-00.pdf
//
// Typical usage:
//
//	s := tcs3472x.New(bus)
//	err := s.Init(ctx)
//	sample, err := s.GetAllColors(ctx)
type TCS3472x struct {
	transport I2CBus
	address   byte
	enable    Enable
}

type Config struct {
	Address byte
	Enable  Enable
}

type ConfigOption func(*Config)

func WithAddress(address byte) ConfigOption {
	return func(c *Config) {
		c.Address = address
	}
}

// WithEnableFlags overrides the ENABLE flags written by Init. PON is always
// added; without it no other function of the sensor operates.
func WithEnableFlags(flags Enable) ConfigOption {
	return func(c *Config) {
		c.Enable = flags
	}
}

// New creates a new TCS3472x connector on the given transport. If no
// address option is given the default 0x29 is used.
func New(trans I2CBus, opts ...ConfigOption) *TCS3472x {
	config := &Config{
		Address: DefaultAddress,
		Enable:  EnablePowerOn | EnableRGBC,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &TCS3472x{
		transport: trans,
		address:   config.Address,
		enable:    config.Enable | EnablePowerOn,
	}
}

// Init powers the sensor on and starts RGBC conversion cycles by writing
// the configured ENABLE flags (PON|AEN unless overridden). The sensor keeps
// integrating until the flags are cleared again.
func (s *TCS3472x) Init(ctx context.Context) error {
	err := s.writeRegister(ctx, RegEnable, s.enable.normalize())
	if err != nil {
		return fmt.Errorf("tcs3472x: could not write ENABLE register: %w", err)
	}
	return nil
}

// SetEnable replaces the ENABLE register content. Reserved bits are zeroed.
func (s *TCS3472x) SetEnable(ctx context.Context, flags Enable) error {
	err := s.writeRegister(ctx, RegEnable, flags.normalize())
	if err != nil {
		return fmt.Errorf("tcs3472x: could not write ENABLE register: %w", err)
	}
	return nil
}

// GetEnable reads back the ENABLE register.
func (s *TCS3472x) GetEnable(ctx context.Context) (Enable, error) {
	val, err := s.readRegister(ctx, RegEnable)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not read ENABLE register: %w", err)
	}
	return Enable(val), nil
}

// GetID reads the device ID register (0x44 for TCS34721/TCS34725,
// 0x4D for TCS34723/TCS34727).
func (s *TCS3472x) GetID(ctx context.Context) (byte, error) {
	val, err := s.readRegister(ctx, RegID)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not read ID register: %w", err)
	}
	return val, nil
}

// GetStatus reads the STATUS register.
func (s *TCS3472x) GetStatus(ctx context.Context) (Status, error) {
	val, err := s.readRegister(ctx, RegStatus)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not read STATUS register: %w", err)
	}
	return Status(val), nil
}

// SetIntegrationTime programs the RGBC integration time to the closest
// representable value and returns the time actually achieved, re-derived
// from the stored register value. Requests of 614.4ms and above saturate
// to the 700ms maximum.
func (s *TCS3472x) SetIntegrationTime(ctx context.Context, ms float64) (float64, error) {
	raw := msToRaw(ms)
	err := s.writeRegister(ctx, RegATime, raw)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not write ATIME register: %w", err)
	}
	return rawToMs(raw), nil
}

// GetIntegrationTime reads the ATIME register and converts it to
// milliseconds. Raw value 0 decodes to the 700ms maximum.
func (s *TCS3472x) GetIntegrationTime(ctx context.Context) (float64, error) {
	val, err := s.readRegister(ctx, RegATime)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not read ATIME register: %w", err)
	}
	return rawToMs(val), nil
}

// SetWaitTime programs the wait state inserted between conversion cycles
// when EnableWait is set. Same 2.4ms-step encoding as the integration time
// (WLONG is left clear). Returns the time actually achieved.
func (s *TCS3472x) SetWaitTime(ctx context.Context, ms float64) (float64, error) {
	raw := msToRaw(ms)
	err := s.writeRegister(ctx, RegWTime, raw)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not write WTIME register: %w", err)
	}
	return rawToMs(raw), nil
}

// SetGain programs the RGBC gain (AGAIN field of the CONTROL register).
func (s *TCS3472x) SetGain(ctx context.Context, gain Gain) error {
	err := s.writeRegister(ctx, RegControl, byte(gain)&0b11)
	if err != nil {
		return fmt.Errorf("tcs3472x: could not write CONTROL register: %w", err)
	}
	return nil
}

// SetInterruptThresholds programs the clear channel interrupt window in one
// auto-increment burst over AILTL..AIHTH (little-endian words).
func (s *TCS3472x) SetInterruptThresholds(ctx context.Context, low, high uint16) error {
	buf := make([]byte, 5)
	buf[0] = Command(RegAILTL, AutoIncrement)
	binary.LittleEndian.PutUint16(buf[1:3], low)
	binary.LittleEndian.PutUint16(buf[3:5], high)
	err := s.transport.WriteToAddr(ctx, s.address, buf)
	if err != nil {
		return fmt.Errorf("tcs3472x: could not write interrupt thresholds: %w", err)
	}
	return nil
}

// SetPersistence programs the interrupt persistence filter (PERS register,
// APERS field): how many consecutive out-of-window clear values it takes to
// assert the interrupt.
func (s *TCS3472x) SetPersistence(ctx context.Context, cycles byte) error {
	err := s.writeRegister(ctx, RegPers, cycles&0b1111)
	if err != nil {
		return fmt.Errorf("tcs3472x: could not write PERS register: %w", err)
	}
	return nil
}

// ClearInterrupt deasserts the clear channel interrupt via the special
// function selector. The frame is a command byte only, no payload.
func (s *TCS3472x) ClearInterrupt(ctx context.Context) error {
	err := s.transport.WriteToAddr(ctx, s.address, []byte{Command(SFClearInterrupt, SpecialFunction)})
	if err != nil {
		return fmt.Errorf("tcs3472x: could not clear interrupt: %w", err)
	}
	return nil
}

// GetAllColors reads all four channels in a single 8-byte auto-increment
// burst starting at CDATAL, so every channel comes from the same ADC cycle.
func (s *TCS3472x) GetAllColors(ctx context.Context) (ColorSample, error) {
	err := s.transport.WriteToAddr(ctx, s.address, []byte{Command(RegCDataL, AutoIncrement)})
	if err != nil {
		return ColorSample{}, fmt.Errorf("tcs3472x: could not select color data registers: %w", err)
	}
	buf := make([]byte, 8)
	err = s.transport.ReadFromAddr(ctx, s.address, buf)
	if err != nil {
		return ColorSample{}, fmt.Errorf("tcs3472x: could not read color data: %w", err)
	}
	return decodeColors(buf), nil
}

// GetClear reads the clear channel. Unlike GetAllColors, consecutive
// single-channel reads are separate bus transactions and may observe
// different integration cycles.
func (s *TCS3472x) GetClear(ctx context.Context) (uint16, error) {
	return s.getColorData(ctx, RegCDataL)
}

// GetRed reads the red channel. See GetClear for the cycle caveat.
func (s *TCS3472x) GetRed(ctx context.Context) (uint16, error) {
	return s.getColorData(ctx, RegRDataL)
}

// GetGreen reads the green channel. See GetClear for the cycle caveat.
func (s *TCS3472x) GetGreen(ctx context.Context) (uint16, error) {
	return s.getColorData(ctx, RegGDataL)
}

// GetBlue reads the blue channel. See GetClear for the cycle caveat.
func (s *TCS3472x) GetBlue(ctx context.Context) (uint16, error) {
	return s.getColorData(ctx, RegBDataL)
}

func (s *TCS3472x) getColorData(ctx context.Context, reg byte) (uint16, error) {
	err := s.transport.WriteToAddr(ctx, s.address, []byte{Command(reg, AutoIncrement)})
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not select data register %#x: %w", reg, err)
	}
	buf := make([]byte, 2)
	err = s.transport.ReadFromAddr(ctx, s.address, buf)
	if err != nil {
		return 0, fmt.Errorf("tcs3472x: could not read data register %#x: %w", reg, err)
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// writeRegister frames the register with Repeat addressing and sends the
// command byte followed immediately by the value in one transaction.
func (s *TCS3472x) writeRegister(ctx context.Context, reg byte, value byte) error {
	return s.transport.WriteToAddr(ctx, s.address, []byte{Command(reg, Repeat), value})
}

// readRegister frames the register with Repeat addressing and reads one byte.
func (s *TCS3472x) readRegister(ctx context.Context, reg byte) (byte, error) {
	err := s.transport.WriteToAddr(ctx, s.address, []byte{Command(reg, Repeat)})
	if err != nil {
		return 0, err
	}
	buf := make([]byte, 1)
	err = s.transport.ReadFromAddr(ctx, s.address, buf)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// decodeColors assembles the four channels from an 8-byte burst, each value
// low byte first, in clear, red, green, blue register order.
func decodeColors(buf []byte) ColorSample {
	return ColorSample{
		Clear: binary.LittleEndian.Uint16(buf[0:2]),
		Red:   binary.LittleEndian.Uint16(buf[2:4]),
		Green: binary.LittleEndian.Uint16(buf[4:6]),
		Blue:  binary.LittleEndian.Uint16(buf[6:8]),
	}
}

// msToRaw converts a requested time in milliseconds to the register value
// 256 - ms/2.4, rounded to the nearest step. Values of 614.4ms and above
// saturate to raw 0 (the sensor's 700ms special case); raw 0 is otherwise
// reserved, so shorter requests clamp to the 1..255 range.
func msToRaw(ms float64) byte {
	if ms >= saturationMs {
		return 0
	}
	raw := int(math.Round(256 - ms/timeStepMs))
	if raw < 1 {
		raw = 1
	}
	if raw > 255 {
		raw = 255
	}
	return byte(raw)
}

// rawToMs converts a time register value to milliseconds: (256-raw)*2.4,
// with raw 0 decoding to the 700ms maximum rather than the formula's 614.4.
func rawToMs(raw byte) float64 {
	if raw == 0 {
		return maxTimeMs
	}
	return float64(256-int(raw)) * timeStepMs
}
