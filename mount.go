package domtest

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/huuff/dom-test-lib/dom"
	"github.com/huuff/dom-test-lib/dom/goquery"
)

type (
	// Framework turns a view of type V into live nodes under container
	Framework[V any] interface {
		Mount(doc dom.Document, container dom.Element, view V) (Context, error)
	}

	// Context is what a framework keeps alive for a mounted view. If it also
	// implements dom.Ticker, settling waits on it as well.
	Context interface {
		Unmount()
	}

	noopContext struct{}
)

func (noopContext) Unmount() {}

// Mount creates a fresh container under the document's body, mounts view
// into it and starts a chain rooted at the container. The view is
// unmounted and the container removed when the test ends.
func Mount[V any](t TestingT, doc dom.Document, fw Framework[V], view V, opts ...Option) Empty {
	t.Helper()
	o := newOptions(opts)

	container := doc.CreateElement(o.containerTag)
	doc.Body().AppendChild(container)

	ctx, err := fw.Mount(doc, container, view)
	if err != nil {
		container.Remove()
	}
	require.NoError(t, err, "mounting %T", view)

	var tickers []dom.Ticker
	if tk, ok := doc.(dom.Ticker); ok {
		tickers = append(tickers, tk)
	}

	tc := newTestContext(t, ctx, o, tickers...)
	tc.log.Debug("mounted", "container", dom.DebugInfo(container))

	t.Cleanup(func() {
		ctx.Unmount()
		container.Remove()
		tc.log.Debug("unmounted", "container", o.containerTag)
	})

	return Empty{wrapper[empty]{root: container, ctx: tc}}
}

// MountHTML mounts an html fragment into a new in-memory document
func MountHTML(t TestingT, src string, opts ...Option) Empty {
	t.Helper()
	return Mount[string](t, goquery.NewDocument(), HTML{}, src, opts...)
}

// HTML is the Framework for static markup: the view is an html fragment
// set as the container's inner html.
type HTML struct{}

type htmlContext struct {
	container dom.Element
}

func (HTML) Mount(_ dom.Document, container dom.Element, src string) (Context, error) {
	if container == nil {
		return nil, fmt.Errorf("mounting html: %w", dom.ErrorNoElementSelected)
	}

	container.SetInnerHTML(src)
	return htmlContext{container}, nil
}

func (c htmlContext) Unmount() {
	for _, n := range c.container.ChildNodes() {
		c.container.RemoveChild(n)
	}
}
