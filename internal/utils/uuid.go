package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque record identifiers for users and todo items.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4 when
// v7 generation fails (entropy exhaustion).
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is syntactically a valid record identifier.
//
// Shape validation only: a well-formed id that matches no record is a
// different condition (not found) and is decided by the storage layer.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
