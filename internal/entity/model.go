package entity

// Record is implemented by every kind held in a Service. Implementations use
// value receivers so records can be copied freely between layers.
type Record[T any] interface {
	// Identity returns the record identifier.
	Identity() string
	// WithIdentity returns a copy of the record carrying id.
	WithIdentity(id string) T
	// Clone returns a deep copy with nameSuffix appended to the display name.
	Clone(nameSuffix string) T
}

// DuplicateSuffix is appended to the display name of duplicated records.
const DuplicateSuffix = " (Copy)"
