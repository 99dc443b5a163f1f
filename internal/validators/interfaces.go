// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the field-level rules for cards and authors.
//
// Rules are expressed with ozzo-validation and surfaced as package sentinel
// errors so the service layer can classify them with errors.Is. A caller may
// restrict validation to named fields (see the Field* constants), which lets
// the same validator serve create, update and registration flows.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
