package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files carry "60s" or "24h"
// instead of raw nanosecond integers. Bare integers are still accepted
// on load for files generated by older releases.
type Duration time.Duration

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalYAML renders the duration in time.ParseDuration syntax
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML accepts duration strings and bare nanosecond integers.
// The integer form is tried first: yaml decodes an integer scalar into a
// string without complaint, which would shadow it.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := node.Decode(&s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", s, perr)
		}
		*d = Duration(parsed)
		return nil
	}

	return fmt.Errorf("line %d: cannot parse %q as a duration", node.Line, node.Value)
}
