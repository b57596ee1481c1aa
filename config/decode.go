package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeTuning overlays data onto t. Unknown keys are rejected so typos in
// hand-edited files do not silently fall back to defaults.
func decodeTuning(data []byte, t *Tuning) error {
	next := *t
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", TuningFile, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*t = next
	return nil
}

// ReloadTuning re-reads tuning.yaml into t in place. On error t is left
// untouched.
func ReloadTuning(t *Tuning) error {
	if t == nil {
		return errors.New("config: nil tuning")
	}
	fresh, err := LoadTuning()
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}
