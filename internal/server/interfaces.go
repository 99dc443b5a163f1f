// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport server.
//
// RunServer blocks until shutdown is requested; Shutdown releases the
// listener.
type Server interface {
	RunServer()
	Shutdown()
}
