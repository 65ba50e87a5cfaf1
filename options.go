package getoptions

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Options holds the resolved options in resolution order. Keys are unique; a
// value is true for a plain flag, the captured argument for a value-taking
// option (usually a string, but an opaque token consumed as an argument is
// kept as-is), or an int repeat count for a flag clustered several times in
// one token.
type Options struct {
	store *orderedmap.OrderedMap
}

func newOptions() *Options {
	return &Options{store: orderedmap.New()}
}

// set records a value for name. Duplicate detection happens before set is
// reached, so an existing key is never overwritten in practice.
func (o *Options) set(name string, value interface{}) {
	o.store.Set(name, value)
}

// Called reports whether name was resolved.
func (o *Options) Called(name string) bool {
	_, found := o.store.Get(name)

	return found
}

// Value returns the raw value recorded for name.
func (o *Options) Value(name string) (interface{}, bool) {
	return o.store.Get(name)
}

// Bool reports whether name was resolved as a plain flag.
func (o *Options) Bool(name string) bool {
	value, found := o.store.Get(name)
	if !found {
		return false
	}
	flag, isBool := value.(bool)

	return isBool && flag
}

// String returns the argument captured for name, or the empty string when
// name is absent or carries no string value.
func (o *Options) String(name string) string {
	value, found := o.store.Get(name)
	if !found {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}

	return ""
}

// Count returns how many times name was given: the repeat count for a
// clustered flag, 1 for any other resolved option and 0 when absent.
func (o *Options) Count(name string) int {
	value, found := o.store.Get(name)
	if !found {
		return 0
	}
	if count, isInt := value.(int); isInt {
		return count
	}

	return 1
}

// Len returns the number of resolved options.
func (o *Options) Len() int {
	return o.store.Len()
}

// Keys returns the resolved option names in resolution order.
func (o *Options) Keys() []string {
	keys := make([]string, 0, o.store.Len())
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}

	return keys
}

// Each calls fn for every resolved option in resolution order.
func (o *Options) Each(fn func(name string, value interface{})) {
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key.(string), pair.Value)
	}
}

// Map returns a plain map copy of the resolved options. Resolution order is
// not preserved; use Keys or Each when order matters.
func (o *Options) Map() map[string]interface{} {
	m := make(map[string]interface{}, o.store.Len())
	for pair := o.store.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key.(string)] = pair.Value
	}

	return m
}
