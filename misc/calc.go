package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	num "github.com/idlemath/gamenum"
)

// numcalc evaluates a single operation on two U256 or Scaled values. It is
// mostly useful for checking what an idle-game economy will do with numbers
// too large to eyeball.

const usage = `Number calculator

Usage: numcalc [-v] <type> <a> <op> <b>

Types: u256, scaled64, scaled256
Ops:   + - * / % cmp

U256 operands are decimal or 0x hex. Scaled operands are written as
<mantissa>e<exponent> (i.e. 0.125e40) or as a plain float.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("numcalc", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Dump operands and result")
	fs.Usage = func() { fmt.Fprintln(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	args = fs.Args()
	if len(args) < 4 {
		fs.Usage()
		return fmt.Errorf("missing args")
	}

	numType, aStr, op, bStr := args[0], args[1], args[2], args[3]

	var (
		a, b, result interface{}
		err          error
	)

	switch numType {
	case "u256":
		a, b, result, err = calcU256(aStr, op, bStr)
	case "scaled64":
		a, b, result, err = calcScaled(num.ParseScaled64, aStr, op, bStr)
	case "scaled256":
		a, b, result, err = calcScaled(num.ParseScaled256, aStr, op, bStr)
	default:
		return fmt.Errorf("type must be u256, scaled64, scaled256")
	}
	if err != nil {
		return oops.Trace(err)
	}

	fmt.Printf("%s %s %s == %s\n", a, op, b, result)
	if *verbose {
		spew.Dump(a, b, result)
	}
	return nil
}

func calcU256(aStr, op, bStr string) (a, b, result interface{}, err error) {
	ua, err := num.U256FromString(aStr)
	if err != nil {
		return nil, nil, nil, err
	}
	ub, err := num.U256FromString(bStr)
	if err != nil {
		return nil, nil, nil, err
	}

	var r interface{}
	switch op {
	case "+":
		r = ua.Add(ub)
	case "-":
		r = ua.Sub(ub)
	case "*":
		r = ua.Mul(ub)
	case "/":
		r, err = ua.Quo(ub)
	case "%":
		r, err = ua.Rem(ub)
	case "cmp":
		r = cmpResult(ua.Cmp(ub))
	default:
		return nil, nil, nil, fmt.Errorf("unknown op %q", op)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return ua, ub, r, nil
}

func calcScaled[E num.Exponent[E]](parse func(string) (num.Scaled[E], error), aStr, op, bStr string) (a, b, result interface{}, err error) {
	sa, err := parse(aStr)
	if err != nil {
		return nil, nil, nil, err
	}
	sb, err := parse(bStr)
	if err != nil {
		return nil, nil, nil, err
	}

	var r interface{}
	switch op {
	case "+":
		r = sa.Add(sb)
	case "-":
		r = sa.Sub(sb)
	case "*":
		r = sa.Mul(sb)
	case "/":
		r, err = sa.Quo(sb)
	case "cmp":
		r = cmpResult(sa.Cmp(sb))
	default:
		return nil, nil, nil, fmt.Errorf("unknown op %q for scaled values", op)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return sa, sb, r, nil
}

type cmpResult int

func (c cmpResult) String() string {
	switch {
	case c < 0:
		return "less"
	case c > 0:
		return "greater"
	default:
		return "equal"
	}
}
