package main

import (
	"fmt"
	"io"

	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/input"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/sim"
)

// runHeadless steps the simulation n times with scripted input and writes the
// final snapshot as YAML.
func runHeadless(out io.Writer, lvl *levels.Level, tuning *config.Tuning, script string, n int, debug bool) error {
	var src input.Source = input.None{}
	if script != "" {
		s, err := input.ParseScript(script)
		if err != nil {
			return err
		}
		src = s
	}

	session, err := sim.NewSession(lvl, tuning, src, debug)
	if err != nil {
		return err
	}
	session.Run(n)

	data, err := session.Snapshot().YAML()
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("headless: write snapshot: %w", err)
	}
	return nil
}
