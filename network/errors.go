// SPDX-License-Identifier: MIT
// Package network: sentinel errors.
//
// Matrix-level failures (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrBorrowed, ...) are wrapped, not translated; match them with errors.Is
// against the matrix sentinels.

package network

import "errors"

var (
	// ErrInvalidArchitecture is returned by New for an empty architecture.
	ErrInvalidArchitecture = errors.New("network: architecture must have at least one layer")

	// ErrNilNetwork indicates a nil *Network receiver.
	ErrNilNetwork = errors.New("network: nil network")

	// ErrReleased is returned by every operation on a released network,
	// including a second Release.
	ErrReleased = errors.New("network: network already released")
)
