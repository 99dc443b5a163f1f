// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the server configuration.
//
// Sources are read in this order:
//  1. an optional .env file (loaded into the process environment)
//  2. environment variables
//  3. command-line flags
//  4. an optional JSON file named by CONFIG or -c/-config
//
// Sources are merged with mergo: a field already set by an earlier source is
// kept, so environment variables win over flags and flags win over JSON.
// Defaults are applied to whatever is still empty after the merge.
//
// The entry point is [GetStructuredConfig].
package config
