// Package digit selects the limb width used by the whole arithmetic layer.
//
// Exactly one configuration is compiled into a binary:
//
//   - with the bigmul_wide build tag, a Digit is 64 bits wide and the
//     DoubleDigit accumulator is a two-word struct driven by math/bits;
//   - on 64-bit targets without the tag, a Digit is a uint32 and a
//     DoubleDigit is a uint64;
//   - on 32-bit targets (386, arm, mips, mipsle) without the tag, a Digit is a
//     uint16 and a DoubleDigit is a uint32.
//
// Downstream code only uses the names exported here and never branches on the
// width at run time.
package digit
