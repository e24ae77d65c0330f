package tcs3472x

// Register map (per datasheet)
const (
	RegEnable  byte = 0x00 // enable states and interrupts (R/W)
	RegATime   byte = 0x01 // RGBC integration time (R/W)
	RegWTime   byte = 0x03 // wait time (R/W)
	RegAILTL   byte = 0x04 // clear interrupt low threshold, low byte (R/W)
	RegAILTH   byte = 0x05 // clear interrupt low threshold, high byte (R/W)
	RegAIHTL   byte = 0x06 // clear interrupt high threshold, low byte (R/W)
	RegAIHTH   byte = 0x07 // clear interrupt high threshold, high byte (R/W)
	RegPers    byte = 0x0C // interrupt persistence filter (R/W)
	RegConfig  byte = 0x0D // configuration (R/W)
	RegControl byte = 0x0F // control, gain (R/W)
	RegID      byte = 0x12 // device ID (R)
	RegStatus  byte = 0x13 // device status (R)
	RegCDataL  byte = 0x14 // clear data low byte (R)
	RegCDataH  byte = 0x15 // clear data high byte (R)
	RegRDataL  byte = 0x16 // red data low byte (R)
	RegRDataH  byte = 0x17 // red data high byte (R)
	RegGDataL  byte = 0x18 // green data low byte (R)
	RegGDataH  byte = 0x19 // green data high byte (R)
	RegBDataL  byte = 0x1A // blue data low byte (R)
	RegBDataH  byte = 0x1B // blue data high byte (R)
)

// TransactionType selects how the sensor advances its register pointer
// during the transaction that follows the command byte.
type TransactionType byte

const (
	// Repeat reads/writes the same register on every byte.
	Repeat TransactionType = 0b00
	// AutoIncrement advances the register pointer after every byte,
	// enabling multi-register burst reads.
	AutoIncrement TransactionType = 0b01
	// SpecialFunction triggers one of the special function selectors
	// instead of addressing a register.
	SpecialFunction TransactionType = 0b11
)

func (t TransactionType) String() string {
	switch t {
	case Repeat:
		return "repeat"
	case AutoIncrement:
		return "auto-increment"
	case SpecialFunction:
		return "special-function"
	default:
		return "unknown"
	}
}

// Special function selectors (used with SpecialFunction transactions)
const (
	// SFClearInterrupt clears the RGBC clear channel interrupt.
	SFClearInterrupt byte = 0b00110
)

const (
	commandMarker byte = 0b10000000
	typeMask      byte = 0b01100000
	typeShift          = 5
	addrMask      byte = 0b00011111
)

// Command frames a command byte selecting a register (or special function)
// and an addressing mode. Every transaction on the bus must start with one.
// The marker bit (bit 7) is always set.
func Command(regOrFunction byte, t TransactionType) byte {
	return commandMarker | byte(t)<<typeShift&typeMask | regOrFunction&addrMask
}

// ParseCommand decodes a command byte back into its register/function
// selector and transaction type. ok is false when the marker bit is not
// set, i.e. the byte is not a command. Useful when inspecting bus traces.
func ParseCommand(cmd byte) (regOrFunction byte, t TransactionType, ok bool) {
	if cmd&commandMarker == 0 {
		return 0, 0, false
	}
	return cmd & addrMask, TransactionType(cmd & typeMask >> typeShift), true
}
