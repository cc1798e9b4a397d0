package num

import "golang.org/x/exp/constraints"

// Number is satisfied by every native integer and floating point type. It is
// used by the generic constructors and comparisons in place of one function
// per native type.
type Number interface {
	constraints.Integer | constraints.Float
}

