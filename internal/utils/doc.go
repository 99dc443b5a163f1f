// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the client:
// JSON request/response codecs, a preconfigured resty HTTP client and
// uuid-based identifier and password generators.
package utils
