package vdom

import (
	"fmt"
	"log/slog"

	domtest "github.com/huuff/dom-test-lib"
	"github.com/huuff/dom-test-lib/dom"
)

// Framework mounts components for domtest. Settling a chain started with
// it re-renders the component, so state changed by a handler shows up in
// the tree after the interaction's settle point.
type Framework struct {
	Logger *slog.Logger
}

var _ domtest.Framework[Component] = Framework{}

func (f Framework) Mount(doc dom.Document, container dom.Element, view Component) (domtest.Context, error) {
	root, err := Render(doc, container, view)
	if err != nil {
		return nil, err
	}

	log := f.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &mounted{Root: root, log: log}, nil
}

type mounted struct {
	*Root
	log *slog.Logger
}

var (
	_ domtest.Context = (*mounted)(nil)
	_ dom.Ticker      = (*mounted)(nil)
)

func (m *mounted) NextTick() {
	m.Update()
	m.log.Debug("re-rendered", "component", fmt.Sprintf("%T", m.component))
}

// Mount is domtest.Mount with this package's Framework
func Mount(t domtest.TestingT, doc dom.Document, c Component, opts ...domtest.Option) domtest.Empty {
	t.Helper()
	return domtest.Mount[Component](t, doc, Framework{}, c, opts...)
}
