package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Moves bool
	Alloc bool
	Codec bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("REDLINE_DEBUG_DIFF")
	d.Moves = boolEnv("REDLINE_DEBUG_MOVES")
	d.Alloc = boolEnv("REDLINE_DEBUG_ALLOC")
	d.Codec = boolEnv("REDLINE_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Moves() bool {
	return d.Moves
}
func Alloc() bool {
	return d.Alloc
}
func Codec() bool {
	return d.Codec
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
