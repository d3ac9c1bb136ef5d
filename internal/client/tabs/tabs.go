// Package tabs keeps the selection state of the CLI tabs: an ordered set of
// tabs of which exactly one is active at any time.
package tabs

import (
	"errors"
	"fmt"
)

var (
	ErrNoTabs     = errors.New("no tabs")
	ErrUnknownTab = errors.New("unknown tab")
)

type Tab struct {
	ID    string
	Title string
}

// Selector is not safe for concurrent use; the REPL drives it from a
// single goroutine.
type Selector struct {
	tabs   []Tab
	active int
}

// NewSelector returns a selector over tabs with the first one active.
func NewSelector(tabs ...Tab) (*Selector, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}

	seen := make(map[string]struct{}, len(tabs))
	for _, t := range tabs {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tab id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	return &Selector{tabs: append([]Tab(nil), tabs...)}, nil
}

// Activate makes the tab with the given id the only active one. An unknown
// id leaves the selection unchanged.
func (s *Selector) Activate(id string) error {
	for i, t := range s.tabs {
		if t.ID == id {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, id)
}

func (s *Selector) Active() Tab {
	return s.tabs[s.active]
}

func (s *Selector) IsActive(id string) bool {
	return s.tabs[s.active].ID == id
}

// Tabs returns the tabs in their original order.
func (s *Selector) Tabs() []Tab {
	return append([]Tab(nil), s.tabs...)
}
