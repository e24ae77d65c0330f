package tcs3472x

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_RoundTrip(t *testing.T) {
	types := []TransactionType{Repeat, AutoIncrement, SpecialFunction}
	for addr := byte(0); addr < 32; addr++ {
		for _, typ := range types {
			t.Run(fmt.Sprintf("%#x_%s", addr, typ), func(t *testing.T) {
				cmd := Command(addr, typ)
				assert.NotZero(t, cmd&0x80, "command marker bit must be set")
				gotAddr, gotType, ok := ParseCommand(cmd)
				assert.True(t, ok)
				assert.Equal(t, addr, gotAddr)
				assert.Equal(t, typ, gotType)
			})
		}
	}
}

func TestCommand_KnownFrames(t *testing.T) {
	tests := []struct {
		reg      byte
		typ      TransactionType
		expected byte
	}{
		{RegEnable, Repeat, 0x80},
		{RegATime, Repeat, 0x81},
		{RegID, Repeat, 0x92},
		{RegCDataL, AutoIncrement, 0xB4},
		{RegRDataL, AutoIncrement, 0xB6},
		{RegGDataL, AutoIncrement, 0xB8},
		{RegBDataL, AutoIncrement, 0xBA},
		{SFClearInterrupt, SpecialFunction, 0xE6},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#x", test.expected), func(t *testing.T) {
			assert.Equal(t, test.expected, Command(test.reg, test.typ))
		})
	}
}

func TestParseCommand_NotACommand(t *testing.T) {
	_, _, ok := ParseCommand(0x14)
	assert.False(t, ok)
}

func TestCommand_AddressMasked(t *testing.T) {
	// selectors are 5 bits wide, anything above must not leak into the type field
	assert.Equal(t, Command(0x1F, Repeat), Command(0xFF, Repeat))
}

func TestEnable_Flags(t *testing.T) {
	e := EnablePowerOn | EnableRGBC
	assert.True(t, e.PowerOn())
	assert.True(t, e.RGBC())
	assert.False(t, e.Wait())
	assert.False(t, e.Interrupt())
	assert.Equal(t, byte(0x03), e.normalize())

	e |= EnableWait | EnableInterrupt
	assert.Equal(t, byte(0x1B), e.normalize())

	// reserved bits are dropped
	assert.Equal(t, byte(0x03), Enable(0xE7).normalize())
}
