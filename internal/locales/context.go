package locales

import "sync"

// Context holds the active locale shared by the router and the title/locale
// navigation hook. It is created once at startup and lives for the process.
type Context struct {
	mu          sync.RWMutex
	table       Table
	active      Locale
	nextID      int
	subscribers map[int]func(Locale)
}

// NewContext returns a context whose active locale is initial when supported
// and the table default otherwise.
func NewContext(table Table, initial Locale) *Context {
	if !table.IsSupported(initial) {
		initial = table.DefaultLocale
	}
	return &Context{
		table:       table,
		active:      initial,
		subscribers: map[int]func(Locale){},
	}
}

// Table returns the route table the context validates against.
func (c *Context) Table() Table {
	return c.table
}

// Active returns the current locale.
func (c *Context) Active() Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Set switches the active locale. Unsupported locales are ignored and Set
// reports false. Subscribers are notified only when the value changes.
func (c *Context) Set(locale Locale) bool {
	if !c.table.IsSupported(locale) {
		return false
	}

	c.mu.Lock()
	if c.active == locale {
		c.mu.Unlock()
		return true
	}
	c.active = locale
	subs := make([]func(Locale), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(locale)
	}
	return true
}

// Subscribe registers fn for locale changes and returns a cancel function.
func (c *Context) Subscribe(fn func(Locale)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}
