// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"

	"github.com/pkg/errors"
)

// A Library is a set of parts indexed by name.
//
type Library struct {
	m map[string]*PartSpec
}

// NewLibrary returns a library holding the built-in gates.
//
func NewLibrary() *Library {
	l := &Library{m: make(map[string]*PartSpec)}
	for k := GateAnd; k < gateCount; k++ {
		l.m[k.String()] = GatePart(k)
	}
	return l
}

// Register adds p to the library.
//
func (l *Library) Register(p *PartSpec) error {
	if p.Name == "" {
		return errors.Wrap(ErrConfiguration, "part has no name")
	}
	if _, ok := l.m[p.Name]; ok {
		return errors.Wrap(ErrDuplicatePart, p.Name)
	}
	l.m[p.Name] = p
	return nil
}

// Put adds p to the library, replacing any part with the same name.
//
func (l *Library) Put(p *PartSpec) {
	l.m[p.Name] = p
}

// Clone returns a copy of l.
//
func (l *Library) Clone() *Library {
	c := &Library{m: make(map[string]*PartSpec, len(l.m))}
	for k, p := range l.m {
		c.m[k] = p
	}
	return c
}

// Lookup returns the part with the given name.
//
func (l *Library) Lookup(name string) (*PartSpec, bool) {
	p, ok := l.m[name]
	return p, ok
}

// Names returns the names of all parts in the library, sorted.
//
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.m))
	for n := range l.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
