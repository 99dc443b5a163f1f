// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON REST API of the mini-blog.
//
// It wires chi routes for cards, authors and the version endpoint and
// carries the cross-cutting middleware: CORS, request tracing, access
// logging, panic recovery, request timeouts and compression. Handlers only
// decode input, call the service layer and encode the result; every rule
// about cards and authors lives in the service package.
package http
