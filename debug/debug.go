package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Query   bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Query = boolEnv("JDOC_DEBUG_QUERY")
	d.Convert = boolEnv("JDOC_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Query() bool {
	return d.Query
}
func Convert() bool {
	return d.Convert
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
