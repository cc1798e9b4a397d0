package num

import "strconv"

// Exponent is the arithmetic a Scaled needs from its exponent type. Every
// operation wraps on overflow and underflow, like a native unsigned integer.
// Exp64 and U256 both satisfy it.
type Exponent[E any] interface {
	comparable
	Add(n E) E
	Sub(n E) E
	Inc() E
	Dec() E
	Cmp(n E) int
	IsUint64() bool
	AsUint64() uint64
	String() string
}

// Exp64 is the exponent of a Scaled64: a plain uint64 with the methods
// required by Exponent.
type Exp64 uint64

func (e Exp64) Add(n Exp64) Exp64 { return e + n }
func (e Exp64) Sub(n Exp64) Exp64 { return e - n }
func (e Exp64) Inc() Exp64        { return e + 1 }
func (e Exp64) Dec() Exp64        { return e - 1 }

func (e Exp64) Cmp(n Exp64) int {
	if e > n {
		return 1
	} else if e < n {
		return -1
	}
	return 0
}

func (e Exp64) IsUint64() bool   { return true }
func (e Exp64) AsUint64() uint64 { return uint64(e) }
func (e Exp64) String() string   { return strconv.FormatUint(uint64(e), 10) }
