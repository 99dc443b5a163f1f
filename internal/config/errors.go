// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN
	// for a driver that needs one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidClientConfigs is returned by [GetClientConfig].
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
