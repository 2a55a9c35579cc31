package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for session loading.
var (
	// ErrAmbiguousAngles is returned when both angle and sweep are set.
	ErrAmbiguousAngles = errors.New("config: angle and sweep are mutually exclusive")

	// ErrBadWorkers is returned for a negative worker count.
	ErrBadWorkers = errors.New("config: workers must be ≥ 0")

	// ErrEmptyDocument is returned when the YAML input holds no document.
	ErrEmptyDocument = errors.New("config: empty document")
)

// File mirrors the YAML document.
type File struct {
	Links   Links    `yaml:"links"`
	Angle   *float64 `yaml:"angle,omitempty"`
	Sweep   *Range   `yaml:"sweep,omitempty"`
	Output  Output   `yaml:"output"`
	Workers int      `yaml:"workers,omitempty"`
	Verbose bool     `yaml:"verbose,omitempty"`
}

// Links holds the raw link lengths.
type Links struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// Range is an inclusive sweep in degrees.
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// Output names the optional result destinations; empty disables one.
type Output struct {
	CSV   string `yaml:"csv,omitempty"`
	XLSX  string `yaml:"xlsx,omitempty"`
	Plots string `yaml:"plots,omitempty"`
}

// Session is a validated File ready to run.
type Session struct {
	Links   linkage.LinkSet
	Plan    sweep.Plan
	Output  Output
	Workers int
	Verbose bool
}

// Options converts the session's engine settings into sweep options.
func (s Session) Options() []sweep.Option {
	opts := []sweep.Option{sweep.WithVerbose(s.Verbose)}
	if s.Workers > 0 {
		opts = append(opts, sweep.WithWorkers(s.Workers))
	}

	return opts
}

// Load reads and validates the session file at path.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML session and validates it.
func Parse(data []byte) (Session, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Session{}, ErrEmptyDocument
		}

		return Session{}, fmt.Errorf("config: %w", err)
	}

	return f.Session()
}

// Session validates f: link lengths through linkage.New, the angle plan
// through sweep.Plan.Angles, and the worker count.
func (f File) Session() (Session, error) {
	ls, err := linkage.New(f.Links.A, f.Links.B, f.Links.C, f.Links.D)
	if err != nil {
		return Session{}, fmt.Errorf("config: %w", err)
	}

	plan := sweep.DefaultRange()
	switch {
	case f.Angle != nil && f.Sweep != nil:
		return Session{}, ErrAmbiguousAngles
	case f.Angle != nil:
		plan = sweep.Single(*f.Angle)
	case f.Sweep != nil:
		plan = sweep.Range(f.Sweep.Start, f.Sweep.Stop, f.Sweep.Step)
	}
	if _, err = plan.Angles(); err != nil {
		return Session{}, fmt.Errorf("config: %w", err)
	}

	if f.Workers < 0 {
		return Session{}, ErrBadWorkers
	}

	return Session{
		Links:   ls,
		Plan:    plan,
		Output:  f.Output,
		Workers: f.Workers,
		Verbose: f.Verbose,
	}, nil
}

// Marshal renders f back to YAML.
func (f File) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return out, nil
}
