package cancellation

// A Canceler is the writer side of a cancellation flag. The constructing code
// keeps the Canceler and passes its Flag to New or Derive; calling Cancel is
// then observed by every Cancellation built from that flag.
type Canceler struct {
	flag *Flag
}

// NewCanceler returns a Canceler with a fresh, unset flag.
func NewCanceler() *Canceler {
	return &Canceler{
		flag: NewFlag(),
	}
}

// Cancel requests cancellation. It is idempotent and safe to call from any
// goroutine.
func (c *Canceler) Cancel() {
	c.flag.Set()
}

// Canceled reports whether Cancel has been called.
func (c *Canceler) Canceled() bool {
	return c.flag.IsSet()
}

// Flag returns the underlying flag, for passing to WithFlags.
func (c *Canceler) Flag() *Flag {
	return c.flag
}
