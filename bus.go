// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// SetBus drives the bits input terminals starting at first with the bits of
// v. Terminal first gets the least significant bit.
//
func (b *Board) SetBus(first, bits int, v uint64) error {
	if first < 0 || bits < 0 || bits > 64 || first+bits > len(b.inputs) {
		return errors.Errorf("invalid input bus %d[%d]", first, bits)
	}
	for bit := 0; bit < bits; bit++ {
		if err := b.inputs[first+bit].Receive(v&(1<<uint(bit)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// Bus returns the states of the bits output terminals starting at first as an
// integer. Terminal first is the least significant bit.
//
func (b *Board) Bus(first, bits int) (uint64, error) {
	if first < 0 || bits < 0 || bits > 64 || first+bits > len(b.outputs) {
		return 0, errors.Errorf("invalid output bus %d[%d]", first, bits)
	}
	var v uint64
	for bit := 0; bit < bits; bit++ {
		if b.outputs[first+bit].State() {
			v |= 1 << uint(bit)
		}
	}
	return v, nil
}
