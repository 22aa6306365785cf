package digit

import "fmt"

// Max is the largest value a single Digit can hold.
const Max = ^Digit(0)

// Config describes the digit configuration compiled into the binary.
type Config struct {
	// Name identifies the configuration (e.g. "digit32").
	Name string
	// Bits is the width of a Digit in bits.
	Bits int
	// DecimalChunkSize is the number of decimal characters converted per Digit.
	DecimalChunkSize int
}

// String returns a short human-readable description of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("%s (%d-bit digits, %d decimal chars per chunk)", c.Name, c.Bits, c.DecimalChunkSize)
}

// Describe returns the active configuration.
func Describe() Config {
	return Config{Name: name, Bits: Bits, DecimalChunkSize: DecimalChunkSize}
}
