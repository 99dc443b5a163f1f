// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Author is an identity that owns cards. Authors are either registered
// explicitly or provisioned on the fly the first time a card references an
// unknown username.
type Author struct {
	// ID is the server-assigned identifier. Zero until persisted.
	ID int64 `json:"id"`

	// Username is unique across all authors.
	Username string `json:"username"`

	// Password is compared verbatim by the credential check. It is accepted
	// on input and never written back in responses.
	Password string `json:"password,omitempty"`
}

// Public returns a copy of the author without the password so it can be
// safely serialized in a response.
func (a Author) Public() Author {
	a.Password = ""
	return a
}

// TableName returns the name of the database table
// associated with the Author model.
func (a Author) TableName() string {
	return "author"
}
