// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Errors returned by the engine. They are usually wrapped with some context;
// use errors.Cause to compare.
//
var (
	// ErrConfiguration is returned when a chip cannot be built because its
	// pin counts are inconsistent.
	ErrConfiguration = errors.New("invalid chip configuration")

	// ErrInvalidConnection is returned when a proposed wire breaks the
	// topology rules or references pins that do not exist.
	ErrInvalidConnection = errors.New("invalid connection")

	// ErrOscillation is returned when a cascade goes deeper than the network
	// allows, which happens with feedback loops that never settle.
	ErrOscillation = errors.New("oscillation detected")

	// ErrNotConnected is returned by Emitter.Disconnect for a receiver that is
	// not subscribed.
	ErrNotConnected = errors.New("receiver not connected")

	// ErrDuplicatePart is returned by Library.Register when a part with the
	// same name is already registered.
	ErrDuplicatePart = errors.New("duplicate part name")
)
