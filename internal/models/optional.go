package models

import "fmt"

// OptionalID is an explicitly optional numeric identifier.
//
// Reference data in the source system uses 0 as a legitimate id in some
// tables, so "absent" must be a distinct state rather than a zero check.
type OptionalID struct {
	Value int64
	Set   bool
}

// ID returns a present OptionalID.
func ID(v int64) OptionalID {
	return OptionalID{Value: v, Set: true}
}

// NoID returns an absent OptionalID.
func NoID() OptionalID {
	return OptionalID{}
}

func (o OptionalID) String() string {
	if !o.Set {
		return "<none>"
	}
	return fmt.Sprintf("%d", o.Value)
}

// UnmarshalYAML reads either a bare integer or nothing at all, so yaml
// fixtures can simply omit the field for "absent".
func (o *OptionalID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v int64
	if err := unmarshal(&v); err != nil {
		return err
	}
	o.Value = v
	o.Set = true
	return nil
}
