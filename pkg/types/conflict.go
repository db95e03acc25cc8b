package types

import "strings"

// ConflictEntry is one key/value pair from a mod's conflict-file.
// Value is opaque and may span several lines.
type ConflictEntry struct {
	Key   string
	Value string
}

// MergedDocument is the result of merging conflict-files across mods.
// Keys keeps first-appearance order; Values holds the last written value.
type MergedDocument struct {
	// Order is the mod order the merge was run with
	Order []string

	// Sources lists the mods whose files were actually read, in order
	Sources []string

	keys   []string
	values map[string]string
}

// NewMergedDocument returns an empty document for the given order.
func NewMergedDocument(order []string) *MergedDocument {
	return &MergedDocument{
		Order:  append([]string(nil), order...),
		values: make(map[string]string),
	}
}

// Set records value for key. A new key is appended to the key order;
// an existing key keeps its position and takes the new value.
func (d *MergedDocument) Set(key, value string) {
	if _, seen := d.values[key]; !seen {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value recorded for key.
func (d *MergedDocument) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in first-appearance order.
func (d *MergedDocument) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Entries returns the merged pairs in key order.
func (d *MergedDocument) Entries() []ConflictEntry {
	entries := make([]ConflictEntry, 0, len(d.keys))
	for _, k := range d.keys {
		entries = append(entries, ConflictEntry{Key: k, Value: d.values[k]})
	}
	return entries
}

// Len returns the number of unique keys.
func (d *MergedDocument) Len() int {
	return len(d.keys)
}

// Render serializes the document as key=value lines. Multi-line values are
// written verbatim.
func (d *MergedDocument) Render() string {
	var b strings.Builder
	for _, k := range d.keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(d.values[k])
		b.WriteByte('\n')
	}
	return b.String()
}
