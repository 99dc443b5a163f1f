// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category groups cards. It is managed outside this service; only its
// identifier and name are ever read.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "category"
}
