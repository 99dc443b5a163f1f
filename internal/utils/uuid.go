// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers (UUIDv7, falling back to
// v4). Used for request trace ids.
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

// PasswordGenerator produces random alphanumeric strings of a fixed length
// from the hex digits of random UUIDs. It is not a cryptographic secret
// generator.
type PasswordGenerator struct {
	length int
}

// NewPasswordGenerator returns a generator of length-character strings.
func NewPasswordGenerator(length int) *PasswordGenerator {
	return &PasswordGenerator{length: length}
}

func (g *PasswordGenerator) Generate() string {
	var b strings.Builder
	b.Grow(g.length + 32)

	for b.Len() < g.length {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}

	return b.String()[:g.length]
}
