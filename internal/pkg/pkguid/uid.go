package pkguid

import "github.com/google/uuid"

// StringID generates correlation IDs for HTTP requests.
type StringID interface {
	Generate() string
}

// NumberID generates load IDs.
type NumberID interface {
	Generate() int64
}

// UUID is a StringID producing time-ordered version 7 UUIDs.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (*UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
