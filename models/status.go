// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is a free-form publication tag attached to a card. No transition
// rules exist between values.
type Status string

const (
	StatusUnset     Status = ""
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// AllowedStatuses lists every status a card may carry.
var AllowedStatuses = []Status{
	StatusUnset,
	StatusDraft,
	StatusPublished,
	StatusArchived,
}

// IsValid reports whether s is one of [AllowedStatuses].
func (s Status) IsValid() bool {
	for _, allowed := range AllowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
