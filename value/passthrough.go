package value

import (
	"net/netip"
	"net/url"
	"os"
	"reflect"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Set is a generic set of values. Sets are opaque to the engines: membership
// semantics would not survive restructuring of the elements.
type Set map[any]struct{}

// NewSet builds a Set from its members.
func NewSet(members ...any) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Span is an inclusive range with arbitrary endpoints, covering date ranges
// and numeric ranges alike. Spans are opaque to the engines.
type Span struct {
	Lo any
	Hi any
}

var (
	passthroughMu sync.RWMutex

	// passthrough is the allow-list of types that every engine returns
	// unchanged regardless of target or nested configuration. These values
	// have internal invariants a generic reshaper must not violate.
	passthrough = map[reflect.Type]struct{}{
		reflect.TypeOf(time.Time{}):      {},
		reflect.TypeOf(time.Duration(0)): {},
		reflect.TypeOf(&time.Location{}): {},
		reflect.TypeOf(uuid.UUID{}):      {},
		reflect.TypeOf(&regexp.Regexp{}): {},
		reflect.TypeOf(&url.URL{}):       {},
		reflect.TypeOf(url.URL{}):        {},
		reflect.TypeOf(netip.Addr{}):     {},
		reflect.TypeOf(netip.AddrPort{}): {},
		reflect.TypeOf(netip.Prefix{}):   {},
		reflect.TypeOf(&os.File{}):       {},
		reflect.TypeOf(Set(nil)):         {},
		reflect.TypeOf(Span{}):           {},
	}
)

// IsPassthrough reports whether v belongs to the pass-through allow-list.
// reflect.Type values are always pass-through: they are introspection-only.
func IsPassthrough(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(reflect.Type); ok {
		return true
	}
	passthroughMu.RLock()
	_, ok := passthrough[reflect.TypeOf(v)]
	passthroughMu.RUnlock()
	return ok
}

// RegisterPassthrough adds sample's dynamic type to the pass-through
// allow-list. Safe for concurrent use, but intended to be called once at
// process startup before conversions begin.
func RegisterPassthrough(sample any) {
	if sample == nil {
		return
	}
	passthroughMu.Lock()
	passthrough[reflect.TypeOf(sample)] = struct{}{}
	passthroughMu.Unlock()
}
