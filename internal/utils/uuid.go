package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque record identifiers.
// UUIDv7 is preferred because the timestamp prefix keeps btree inserts
// roughly append-only.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
