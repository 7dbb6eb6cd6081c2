// Command fracdemo prints a tour of the fraction package: the four
// arithmetic operators, exponentiation, ordering and float conversion.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/soypat/fraction"
	"github.com/soypat/fraction/unstable"
)

var (
	flagAutoReduce = pflag.Bool("auto-reduce", true, "keep fractions in lowest terms after every operation")
	flagExp        = pflag.Int("exp", 3, "exponent the first fraction is raised to")
	flagFloats     = pflag.Float32Slice("float", []float32{1.0, 0.000005}, "float32 values to convert to fractions")
	flagLogLevel   = pflag.String("log-level", "info", "log level: debug, info, warn or error")
)

func main() {
	pflag.Parse()
	level, err := logLevel(*flagLogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))

	if err := run(os.Stdout, *flagAutoReduce, *flagExp, *flagFloats); err != nil {
		slog.Error("fracdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, autoReduce bool, exp int, floats []float32) error {
	opt := fraction.WithAutoReduce(autoReduce)
	first, err := fraction.MutableOf[int32](2, 3, opt)
	if err != nil {
		return err
	}
	addend, err := fraction.FromPair(fraction.Pair[int32]{Num: 3, Den: 18}, opt)
	if err != nil {
		return err
	}
	first.AddAssign(addend)
	slog.Debug("accumulated", "addend", addend, "result", first)
	fmt.Fprintln(w, first)
	fmt.Fprintln(w, "negated:", fraction.Negated(fraction.MustOf[int32](2, 3, opt)))

	second := fraction.MustOf[int32](5, 2, opt)
	results := []fraction.Fraction[int32]{
		first.Add(second),
		first.Sub(second),
		first.Mul(second),
		first.Div(second),
	}
	for i, op := range []string{"+", "-", "*", "/"} {
		fmt.Fprintln(w, first, op, second, "=", results[i])
	}

	if _, err := fraction.TryPow(first, exp); err != nil {
		slog.Warn("skipping exponentiation", "base", first, "exp", exp, "err", err)
	} else {
		p := fraction.Exponentiated(first, exp)
		fmt.Fprintf(w, "%s^%d = %s (%g)\n", first, exp, p, p.Float32())
	}

	slices.SortFunc(results, fraction.Compare[int32])
	fmt.Fprintln(w, results)
	fmt.Fprintln(w)

	for _, v := range floats {
		f, err := unstable.FromFloat32[int32](v)
		if err != nil {
			slog.Warn("float not representable", "value", v, "err", err)
			continue
		}
		fmt.Fprintf(w, "%v = %s = %s\n", v, f, fraction.Reduced(f))
	}
	return nil
}

func logLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", s)
	}
}
