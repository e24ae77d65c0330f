package tcs3472x

// Enable is the ENABLE register bitfield. Bits 2 and 5..7 are reserved and
// must be written as zero; they are masked out on write.
type Enable byte

const (
	// EnablePowerOn activates the internal oscillator (PON).
	EnablePowerOn Enable = 1 << 0
	// EnableRGBC activates the RGBC ADC (AEN). Conversions start only when
	// both PON and AEN are set.
	EnableRGBC Enable = 1 << 1
	// EnableWait inserts the WTIME wait state between conversions (WEN).
	EnableWait Enable = 1 << 3
	// EnableInterrupt allows the clear channel interrupt (AIEN).
	EnableInterrupt Enable = 1 << 4
)

const enableReservedMask Enable = 0b11100100

func (e Enable) PowerOn() bool   { return e&EnablePowerOn != 0 }
func (e Enable) RGBC() bool      { return e&EnableRGBC != 0 }
func (e Enable) Wait() bool      { return e&EnableWait != 0 }
func (e Enable) Interrupt() bool { return e&EnableInterrupt != 0 }

// normalize zeroes the reserved bits before the byte goes on the wire.
func (e Enable) normalize() byte {
	return byte(e &^ enableReservedMask)
}

// STATUS register bits
const (
	statusAValid byte = 1 << 0
	statusAInt   byte = 1 << 4
)

// Status is the read-only STATUS register.
type Status byte

// Valid reports whether an RGBC integration cycle has completed since
// AEN was set (AVALID).
func (s Status) Valid() bool { return byte(s)&statusAValid != 0 }

// Interrupt reports whether the clear channel interrupt is asserted (AINT).
func (s Status) Interrupt() bool { return byte(s)&statusAInt != 0 }

// Gain is the RGBC gain field of the CONTROL register (AGAIN).
type Gain byte

const (
	Gain1x  Gain = 0b00
	Gain4x  Gain = 0b01
	Gain16x Gain = 0b10
	Gain60x Gain = 0b11
)

func (g Gain) String() string {
	switch g {
	case Gain1x:
		return "1x"
	case Gain4x:
		return "4x"
	case Gain16x:
		return "16x"
	case Gain60x:
		return "60x"
	default:
		return "unknown"
	}
}
