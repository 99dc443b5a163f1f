// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the mini-blog HTTP server.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
