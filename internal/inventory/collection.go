package inventory

import (
	"encoding/json"
	"slices"
)

// Keyed is an element addressable by a stable key.
type Keyed interface {
	Key() string
}

// Collection is an ordered sequence with a key->index lookup. Keys are
// unique. The zero value is an empty collection ready to use.
//
// Elements are pointers, so callers mutate them in place through Find or At;
// structural changes go through Append, Remove and Replace.
type Collection[T Keyed] struct {
	items []T
	index map[string]int
}

// NewCollection builds a collection from items. Later duplicates are dropped.
func NewCollection[T Keyed](items ...T) Collection[T] {
	var c Collection[T]
	for _, item := range items {
		c.Append(item)
	}
	return c
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) At(i int) T { return c.items[i] }

// All returns the elements in order. The slice must not be modified.
func (c *Collection[T]) All() []T { return c.items }

func (c *Collection[T]) IndexOf(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	return -1
}

func (c *Collection[T]) Find(key string) (T, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *Collection[T]) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Append adds item at the end. It reports false, leaving the collection
// unchanged, when an element with the same key exists.
func (c *Collection[T]) Append(item T) bool {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	key := item.Key()
	if _, ok := c.index[key]; ok {
		return false
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// RemoveAt deletes the element at i, shifting later elements down.
func (c *Collection[T]) RemoveAt(i int) T {
	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	delete(c.index, item.Key())
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}
	return item
}

// Remove deletes the element with key, if present.
func (c *Collection[T]) Remove(key string) (T, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.RemoveAt(i), true
}

// Replace swaps the element with item's key in place, or appends it.
func (c *Collection[T]) Replace(item T) {
	if i, ok := c.index[item.Key()]; ok {
		c.items[i] = item
		return
	}
	c.Append(item)
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = NewCollection(items...)
	return nil
}
