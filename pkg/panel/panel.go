// Package panel implements the identifier display panel: a selected UUID
// version plus the batch of identifiers generated for it.
//
// A Panel is driven by one event at a time and is not safe for concurrent
// use. Callers that share a panel between goroutines must serialise access
// (see package session).
package panel

import (
	"errors"
	"fmt"

	"github.com/shamikhz/UUID-Generator/pkg/generator"
)

// ErrNoSelection is returned by Generate while no version is selected.
var ErrNoSelection = errors.New("no UUID version selected")

// Trigger says why a batch was produced.
type Trigger string

// Batch triggers.
const (
	TriggerSelect   Trigger = "select"
	TriggerGenerate Trigger = "generate"
)

// Observer is told about every batch a panel produces.
type Observer func(v generator.Version, trigger Trigger, batch []string)

// State is a read-only snapshot of a panel.
type State struct {
	Version       generator.Version `json:"version"`
	Label         string            `json:"label,omitempty"`
	GenerateLabel string            `json:"generateLabel,omitempty"`
	Identifiers   []string          `json:"identifiers"`
	Description   string            `json:"description"`
}

// Selected reports whether the snapshot has a version selected.
func (s State) Selected() bool {
	return s.Version != generator.Unset
}

// Panel holds the active version and its current batch.
type Panel struct {
	gen      *generator.Generator
	observer Observer

	active      generator.Version
	identifiers []string
}

// Option configures a Panel.
type Option func(*Panel)

// WithObserver registers fn to be called after each batch.
func WithObserver(fn Observer) Option {
	return func(p *Panel) {
		p.observer = fn
	}
}

// New returns an unset panel. A nil generator uses generator.New().
func New(gen *generator.Generator, opts ...Option) *Panel {
	if gen == nil {
		gen = generator.New()
	}
	p := &Panel{gen: gen}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select makes v the active version, drops the current batch and generates
// a new one for v.
func (p *Panel) Select(v generator.Version) error {
	if !v.Valid() {
		return fmt.Errorf("select %q: %w", string(v), generator.ErrUnknownVersion)
	}
	p.active = v
	p.identifiers = nil
	p.regenerate(TriggerSelect)
	return nil
}

// Generate replaces the batch for the active version.
func (p *Panel) Generate() error {
	if p.active == generator.Unset {
		return ErrNoSelection
	}
	p.regenerate(TriggerGenerate)
	return nil
}

func (p *Panel) regenerate(trigger Trigger) {
	p.identifiers = p.gen.Generate(p.active)
	if p.observer != nil {
		p.observer(p.active, trigger, p.Identifiers())
	}
}

// Active returns the selected version, or generator.Unset.
func (p *Panel) Active() generator.Version {
	return p.active
}

// Identifiers returns a copy of the current batch.
func (p *Panel) Identifiers() []string {
	out := make([]string, len(p.identifiers))
	copy(out, p.identifiers)
	return out
}

// Description returns the text for the active version.
func (p *Panel) Description() string {
	return generator.Describe(p.active)
}

// State returns a snapshot of the panel.
func (p *Panel) State() State {
	return State{
		Version:       p.active,
		Label:         p.active.Label(),
		GenerateLabel: p.active.GenerateLabel(),
		Identifiers:   p.Identifiers(),
		Description:   p.Description(),
	}
}
