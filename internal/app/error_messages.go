// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level constants shared by the HTTP
// handlers and the command-line client.
//
// All Msg* constants are human-readable messages written into HTTP response
// bodies. They are intentionally generic: details stay in the server log.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredential is returned when an author username/password
	// pair does not match. It never says which of the two was wrong.
	MsgInvalidCredential = "invalid credential"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgCardNotFound is returned when a card id does not exist.
	MsgCardNotFound = "card not found"

	// MsgAuthorNotFound is returned when an author id or username does not
	// exist.
	MsgAuthorNotFound = "author not found"

	// MsgUsernameAlreadyExists is returned when registration is rejected
	// because the username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidPageRequest is returned when page, size or sort query
	// parameters are malformed.
	MsgInvalidPageRequest = "invalid page request"
)

// Entity names used in alert headers.
const (
	EntityCard   = "miniBlogCard"
	EntityAuthor = "miniBlogAuthor"
)
