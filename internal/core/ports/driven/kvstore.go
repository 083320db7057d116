package driven

// KeyValueStore persists one serialised record per logical key. It is the
// single storage boundary of the domain store; implementations own
// serialisation and must not let storage or serialisation failures escape
// as errors. A failed Save reports false, a failed or absent Load reports
// false, and the failure is logged inside the adapter. Callers therefore
// degrade to "no data" instead of handling storage errors.
type KeyValueStore interface {
	// Save serialises value under key. Returns false if the value could
	// not be serialised or written.
	Save(key string, value any) bool

	// Load deserialises the record at key into dest (a pointer). Returns
	// false if the key is absent or the record could not be read, leaving
	// dest untouched. Absence is distinguishable from an empty record.
	Load(key string, dest any) bool

	// Remove deletes the record at key. Returns false only when the
	// delete itself failed; removing an absent key succeeds.
	Remove(key string) bool

	// ClearAll removes the records for the given keys.
	ClearAll(keys ...string)
}
