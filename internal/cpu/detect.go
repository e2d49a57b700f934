// Package cpu reports the CPU features relevant to kernel tuning.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the vector capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

// Detect returns the feature set of the running CPU.
func Detect() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Summary renders the feature set as a short report line, e.g.
// "amd64: sse2 avx avx2 fma".
func (f Features) Summary() string {
	var caps []string

	if f.HasSSE2 {
		caps = append(caps, "sse2")
	}

	if f.HasAVX {
		caps = append(caps, "avx")
	}

	if f.HasAVX2 {
		caps = append(caps, "avx2")
	}

	if f.HasAVX512 {
		caps = append(caps, "avx512")
	}

	if f.HasFMA {
		caps = append(caps, "fma")
	}

	if f.HasNEON {
		caps = append(caps, "neon")
	}

	if len(caps) == 0 {
		return f.Architecture + ": generic"
	}

	return f.Architecture + ": " + strings.Join(caps, " ")
}
