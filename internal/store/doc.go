// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for authors, cards and categories.
//
// Two families of implementations exist behind the same repository
// interfaces: SQL repositories (PostgreSQL through pgx, or SQLite through
// go-sqlite3) built with squirrel, and an in-memory store used for local
// runs and tests. Both enforce username uniqueness and report it as
// [ErrUsernameAlreadyExists], which the service layer relies on to resolve
// concurrent author provisioning.
package store
