package kernel

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// useFMA selects the fused multiply-add kernels for float64.
// Set once by init.
var useFMA bool

func init() {
	useFMA = !NoFMAEnv() && hasFMA()
}

func hasFMA() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasFMA
	case "arm64":
		// Fused multiply-add is part of the ARMv8 base instruction set.
		return true
	case "ppc64", "ppc64le", "s390x":
		return true
	default:
		return false
	}
}

// NoFMAEnv checks if the DETKIT_NO_FMA environment variable is set.
// When set, the plain kernels are used regardless of CPU capabilities.
func NoFMAEnv() bool {
	val := os.Getenv("DETKIT_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Variant returns the name of the kernel variant in use: "fma" or "scalar".
func Variant() string {
	if useFMA {
		return "fma"
	}
	return "scalar"
}
