// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"errors"
)

var (
	// ErrInvalidRequest covers malformed input: missing fields, bad
	// email syntax, unknown role or action.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDuplicateMembership is returned when the invited account
	// already holds a role in the school.
	ErrDuplicateMembership = errors.New("user already has a role in this school")
	// ErrProtectedRole is returned on attempts to change or remove a
	// super_admin membership.
	ErrProtectedRole = errors.New("super admin role cannot be modified")
	// ErrMembershipNotFound is returned when the target membership does
	// not exist in the given school.
	ErrMembershipNotFound = errors.New("membership not found in this school")
)
