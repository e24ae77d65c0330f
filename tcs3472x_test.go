package tcs3472x

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedBus records every addressed write and serves queued responses to
// reads, standing in for a real transport.
type scriptedBus struct {
	addresses      []byte
	writes         [][]byte
	reads          [][]byte
	failNextWrites int
	failNextReads  int
}

func (b *scriptedBus) WriteToAddr(_ context.Context, address byte, buffer []byte) error {
	if b.failNextWrites > 0 {
		b.failNextWrites--
		return fmt.Errorf("scripted write failure")
	}
	b.addresses = append(b.addresses, address)
	out := make([]byte, len(buffer))
	copy(out, buffer)
	b.writes = append(b.writes, out)
	return nil
}

func (b *scriptedBus) ReadFromAddr(_ context.Context, address byte, buffer []byte) error {
	if b.failNextReads > 0 {
		b.failNextReads--
		return fmt.Errorf("scripted read failure")
	}
	b.addresses = append(b.addresses, address)
	if len(b.reads) == 0 {
		return fmt.Errorf("no scripted response left")
	}
	next := b.reads[0]
	b.reads = b.reads[1:]
	if len(next) != len(buffer) {
		return fmt.Errorf("scripted response size mismatch: expected %d, got %d", len(buffer), len(next))
	}
	copy(buffer, next)
	return nil
}

func (b *scriptedBus) Release(context.Context) error { return nil }

func TestTCS3472x_Init(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus)
	require.NoError(t, s.Init(context.Background()))
	require.Len(t, bus.writes, 1)
	assert.Equal(t, []byte{0x80, 0x03}, bus.writes[0], "ENABLE frame with PON|AEN")
	assert.Equal(t, byte(DefaultAddress), bus.addresses[0])
}

func TestTCS3472x_InitCustomFlags(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus, WithEnableFlags(EnableRGBC|EnableWait|EnableInterrupt))
	require.NoError(t, s.Init(context.Background()))
	require.Len(t, bus.writes, 1)
	// PON is always added, reserved bits stay clear
	assert.Equal(t, []byte{0x80, 0x1B}, bus.writes[0])
}

func TestTCS3472x_InitWriteFailureIsNotTerminal(t *testing.T) {
	bus := &scriptedBus{failNextWrites: 1}
	s := New(bus)
	assert.Error(t, s.Init(context.Background()))

	// subsequent calls issue their own transactions on the same bus
	bus.reads = [][]byte{{IDTCS34721}}
	id, err := s.GetID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IDTCS34721, id)
	assert.Equal(t, []byte{0x92}, bus.writes[0])
}

func TestTCS3472x_GetEnable(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{{0x13}}}
	s := New(bus)
	flags, err := s.GetEnable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, bus.writes[0], "ENABLE selector with repeat addressing")
	assert.True(t, flags.PowerOn())
	assert.True(t, flags.RGBC())
	assert.False(t, flags.Wait())
	assert.True(t, flags.Interrupt())
}

func TestTCS3472x_GetEnableReadFailure(t *testing.T) {
	bus := &scriptedBus{failNextReads: 1}
	s := New(bus)
	_, err := s.GetEnable(context.Background())
	assert.Error(t, err, "a failed read must not be mistaken for an all-clear register")
}

func TestTCS3472x_GetAllColors(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{{0x10, 0x00, 0x20, 0x00, 0x30, 0x00, 0x40, 0x00}}}
	s := New(bus)
	sample, err := s.GetAllColors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB4}, bus.writes[0], "CDATAL selector with auto-increment")
	assert.Equal(t, ColorSample{Clear: 16, Red: 32, Green: 48, Blue: 64}, sample)
}

func TestTCS3472x_GetAllColorsOrdering(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}}}
	s := New(bus)
	sample, err := s.GetAllColors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ColorSample{
		Clear: 0x0201,
		Red:   0x0403,
		Green: 0x0605,
		Blue:  0x0807,
	}, sample, "channels assemble low byte first in clear, red, green, blue order")
}

func TestTCS3472x_SingleChannelFrames(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{
		{0x11, 0x00},
		{0x22, 0x00},
		{0x33, 0x00},
		{0x44, 0x01},
	}}
	s := New(bus)
	ctx := context.Background()

	clear, err := s.GetClear(ctx)
	require.NoError(t, err)
	red, err := s.GetRed(ctx)
	require.NoError(t, err)
	green, err := s.GetGreen(ctx)
	require.NoError(t, err)
	blue, err := s.GetBlue(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x11), clear)
	assert.Equal(t, uint16(0x22), red)
	assert.Equal(t, uint16(0x33), green)
	assert.Equal(t, uint16(0x0144), blue)
	assert.Equal(t, [][]byte{{0xB4}, {0xB6}, {0xB8}, {0xBA}}, bus.writes)
}

func TestTCS3472x_SetIntegrationTime(t *testing.T) {
	tests := []struct {
		requested float64
		raw       byte
		actual    float64
	}{
		{2.4, 0xFF, 2.4},
		{24, 0xF6, 24},
		{50, 0xEB, 50.4},
		{100, 0xD6, 100.8},
		{612, 0x01, 612},
		{613.4, 0x01, 612},
		{614.4, 0x00, 700},
		{1000, 0x00, 700},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%.1fms", test.requested), func(t *testing.T) {
			bus := &scriptedBus{}
			s := New(bus)
			actual, err := s.SetIntegrationTime(context.Background(), test.requested)
			require.NoError(t, err)
			require.Len(t, bus.writes, 1)
			assert.Equal(t, []byte{0x81, test.raw}, bus.writes[0], "ATIME frame and value in one transaction")
			assert.InDelta(t, test.actual, actual, 1e-9)
		})
	}
}

func TestTCS3472x_GetIntegrationTime(t *testing.T) {
	tests := []struct {
		raw      byte
		expected float64
	}{
		{0x00, 700},
		{0x01, 612},
		{0xD5, 103.2},
		{0xF6, 24},
		{0xFF, 2.4},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#x", test.raw), func(t *testing.T) {
			bus := &scriptedBus{reads: [][]byte{{test.raw}}}
			s := New(bus)
			ms, err := s.GetIntegrationTime(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []byte{0x81}, bus.writes[0])
			assert.InDelta(t, test.expected, ms, 1e-9)
		})
	}
}

func TestTCS3472x_IntegrationTimeRoundTrip(t *testing.T) {
	ctx := context.Background()
	for ms := 1.0; ms < 614.4; ms += 7.3 {
		bus := &scriptedBus{}
		s := New(bus)
		actual, err := s.SetIntegrationTime(ctx, ms)
		require.NoError(t, err)
		bus.reads = [][]byte{{bus.writes[0][1]}}
		read, err := s.GetIntegrationTime(ctx)
		require.NoError(t, err)
		assert.Equal(t, actual, read)
		assert.InDelta(t, ms, read, timeStepMs, "achieved time within one register step of %f", ms)
	}
}

func TestTCS3472x_SetWaitTime(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus)
	actual, err := s.SetWaitTime(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x83, 0xD6}, bus.writes[0])
	assert.InDelta(t, 100.8, actual, 1e-9)
}

func TestTCS3472x_SetGain(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus)
	require.NoError(t, s.SetGain(context.Background(), Gain16x))
	assert.Equal(t, []byte{0x8F, 0x02}, bus.writes[0])
}

func TestTCS3472x_SetInterruptThresholds(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus)
	require.NoError(t, s.SetInterruptThresholds(context.Background(), 0x0102, 0xA0B0))
	assert.Equal(t, []byte{0xA4, 0x02, 0x01, 0xB0, 0xA0}, bus.writes[0],
		"one auto-increment burst over AILTL..AIHTH, words low byte first")
}

func TestTCS3472x_ClearInterrupt(t *testing.T) {
	bus := &scriptedBus{}
	s := New(bus)
	require.NoError(t, s.ClearInterrupt(context.Background()))
	assert.Equal(t, []byte{0xE6}, bus.writes[0], "special function frame, no payload")
}

func TestTCS3472x_GetStatus(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{{0x11}}}
	s := New(bus)
	status, err := s.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x93}, bus.writes[0])
	assert.True(t, status.Valid())
	assert.True(t, status.Interrupt())
}

func TestTCS3472x_CustomAddress(t *testing.T) {
	bus := &scriptedBus{reads: [][]byte{{IDTCS34723}}}
	s := New(bus, WithAddress(0x39))
	_, err := s.GetID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x39, 0x39}, bus.addresses)
}

func TestConvertTime(t *testing.T) {
	tests := []struct {
		raw byte
		ms  float64
	}{
		{0x00, 700},
		{0x01, 612},
		{0xC0, 153.6},
		{0xD5, 103.2},
		{0xFF, 2.4},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#x", test.raw), func(t *testing.T) {
			assert.InDelta(t, test.ms, rawToMs(test.raw), 1e-9)
		})
	}
}

func TestConvertMs(t *testing.T) {
	tests := []struct {
		ms  float64
		raw byte
	}{
		{-5, 0xFF},
		{0, 0xFF},
		{2.4, 0xFF},
		{103.2, 0xD5},
		{613, 0x01},
		{614.4, 0x00},
		{700, 0x00},
		{10000, 0x00},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%.1f", test.ms), func(t *testing.T) {
			assert.Equal(t, test.raw, msToRaw(test.ms))
		})
	}
}
