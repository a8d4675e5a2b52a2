// This file is part of Pocketcore.
//
// Pocketcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pocketcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pocketcore.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/jetsetilly/pocketcore/errors"
)

// Value represents the actual Go preference value.
type Value any

// pref is the interface every preference type satisfies. It is used by the
// Disk type when loading and saving.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Bool implements a boolean preference.
type Bool struct {
	value atomic.Value
}

// Set value of Bool preference. Strings that do not parse as a boolean set
// the preference to false without error.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.value.Store(false)
		} else {
			p.value.Store(b)
		}
	default:
		return errors.Errorf(errors.Prefs, fmt.Sprintf("cannot convert %T to bool", v))
	}
	return nil
}

// Get returns the raw preference value.
func (p *Bool) Get() Value {
	if v, ok := p.value.Load().(bool); ok {
		return v
	}
	return false
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// String implements a string preference.
type String struct {
	value  atomic.Value
	maxLen int
}

// SetMaxLen sets the maximum length of the string. Calling the function with
// a value of zero removes the limit on future Set() calls; information
// already cropped is not restored.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	v := p.String()
	if p.maxLen > 0 && len(v) > p.maxLen {
		p.value.Store(v[:p.maxLen])
	}
}

// Set value of String preference. Any value type is accepted; the stored
// string is the value formatted with the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(s) > p.maxLen {
		s = s[:p.maxLen]
	}
	p.value.Store(s)
	return nil
}

// Get returns the raw preference value.
func (p *String) Get() Value {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

func (p *String) String() string {
	return p.Get().(string)
}

// Int implements an integer preference.
type Int struct {
	value atomic.Value
}

// Set value of Int preference. Strings are parsed as integers; any other
// non-integer type is an error.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		p.value.Store(v)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
		p.value.Store(i)
	default:
		return errors.Errorf(errors.Prefs, fmt.Sprintf("cannot convert %T to int", v))
	}
	return nil
}

// Get returns the raw preference value.
func (p *Int) Get() Value {
	if v, ok := p.value.Load().(int); ok {
		return v
	}
	return 0
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Float implements a floating point preference.
type Float struct {
	value atomic.Value
}

// Set value of Float preference. Strings are parsed as floats; integers are
// widened.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		p.value.Store(v)
	case float32:
		p.value.Store(float64(v))
	case int:
		p.value.Store(float64(v))
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
		p.value.Store(f)
	default:
		return errors.Errorf(errors.Prefs, fmt.Sprintf("cannot convert %T to float", v))
	}
	return nil
}

// Get returns the raw preference value.
func (p *Float) Get() Value {
	if v, ok := p.value.Load().(float64); ok {
		return v
	}
	return 0.0
}

func (p *Float) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Generic implements a preference of a type not covered by the other
// preference types. The set and get functions supplied to NewGeneric define
// how the preference converts to and from its string representation.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

// Set value of Generic preference.
func (p *Generic) Set(v Value) error {
	return p.set(v)
}

// Get returns the raw preference value.
func (p *Generic) Get() Value {
	return p.get()
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.get())
}
