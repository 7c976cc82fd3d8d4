package entity

import "context"

// Repository provides ordered persistence for one record kind.
type Repository[T Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, rec T) error
	Replace(ctx context.Context, rec T) error
	Remove(ctx context.Context, id string) error
}

// IDGenerator hands out record identifiers.
type IDGenerator interface {
	NewID() string
}

// MutationObserver is told about every successful store mutation.
type MutationObserver interface {
	ObserveMutation(kind, op string)
}
