package libgl

import (
	"log"
	"strings"
	"unsafe"

	"golang.org/x/exp/slices"
)

// InvalidAddress is handed to the binding for vendor extension entry points
// the driver does not export, so their absence does not fail initialization.
const InvalidAddress = ^uintptr(0)

var vendorSuffixes = []string{"3DFX", "PGI", "SGIX", "SGIS", "SGI", "IBM", "HP", "NV", "NVX", "INGR", "ARB", "EXT", "AMD", "ATI", "MESA", "KHR", "INTEL", "GREMEDY", "APPLE", "OES", "SUN", "SUNX"}

func hasVendorSuffix(name string) bool {
	return slices.IndexFunc(vendorSuffixes, func(suffix string) bool {
		return strings.HasSuffix(name, suffix)
	}) >= 0
}

// NewProcLoader wraps a window system proc lookup. Every entry point is
// requested, not only the 3.3 core set. Missing vendor entry points resolve to
// InvalidAddress; any other missing entry point is logged and left nil so the
// binding reports it.
func NewProcLoader(lookup func(name string) unsafe.Pointer) func(name string) unsafe.Pointer {
	return func(name string) unsafe.Pointer {
		addr := lookup(name)
		if addr != nil {
			return addr
		}
		if hasVendorSuffix(name) {
			return unsafe.Pointer(InvalidAddress)
		}
		log.Printf("Proc missing: %v\n", name)
		return nil
	}
}
