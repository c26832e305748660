// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// pref is implemented by all preference types.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	pref
	value    atomic.Value // bool
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" is interpreted as false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated.
func (p *Bool) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system. String values are parsed
// with Go literal syntax so hexadecimal values (0x40) are allowed. Values
// outside of the range of int64 are not supported.
type Int struct {
	pref
	value    atomic.Value // int
	hex      bool
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *Int) String() string {
	if p.hex {
		return fmt.Sprintf("%#x", p.Get().(int))
	}
	return fmt.Sprintf("%d", p.Get().(int))
}

// SetHex changes how the value is represented by String(). It does not
// change how string values are parsed by Set().
func (p *Int) SetHex(hex bool) {
	p.hex = hex
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case uint32:
		nv = int(v)
	case uint16:
		nv = int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. A hook that returns an error prevents the update.
func (p *Int) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
