package cancellation

import "sync/atomic"

// Flag is a shared boolean cancellation cell. It is set by whichever writer
// requests cancellation and observed by every Cancellation holding a reference
// to it. A Flag only ever transitions from unset to set; there is no reset.
//
// The zero value is an unset flag ready for use. Flags must be shared by
// pointer, never copied.
type Flag struct {
	set atomic.Bool
}

// NewFlag returns a new, unset Flag.
func NewFlag() *Flag {
	return &Flag{}
}

// Set marks the flag as set. Calling Set more than once has no additional
// effect. Safe for concurrent use.
func (f *Flag) Set() {
	f.set.Store(true)
}

// IsSet reports whether the flag has been set. Safe for concurrent use.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}
