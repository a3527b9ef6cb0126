package domtest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	domtest "github.com/huuff/dom-test-lib"
	"github.com/huuff/dom-test-lib/dom"
	"github.com/huuff/dom-test-lib/dom/goquery"
	"github.com/huuff/dom-test-lib/utils/testutils"
)

// failing runs chain against src mounted on a Recorder, requires that it
// failed the test and returns the failure message.
func failing(t *testing.T, src string, chain func(e domtest.Empty)) string {
	t.Helper()
	rec := testutils.NewRecorder(t)
	completed := rec.Run(func() {
		chain(domtest.MountHTML(rec, src))
	})

	require.False(t, completed, "chain should have failed")
	require.True(t, rec.Failed())
	return rec.Message()
}

type WrapperTestSuite struct {
	suite.Suite
}

func TestWrapper(t *testing.T) {
	suite.Run(t, new(WrapperTestSuite))
}

func (s *WrapperTestSuite) TestQueryText() {
	e := domtest.MountHTML(s.T(), `<span id="e">hi</span>`)
	e.Query("#e").AssertExists().AssertTextIs("hi")

	msg := failing(s.T(), `<span id="e">hi</span>`, func(e domtest.Empty) {
		e.Query("#missing").AssertExists()
	})
	s.Contains(msg, "#missing")
	s.Contains(msg, "element with selector `#missing` does not exist")
}

func (s *WrapperTestSuite) TestNotExists() {
	e := domtest.MountHTML(s.T(), `<p class="a">x</p>`)
	e.Query(".b").AssertNotExists()

	msg := failing(s.T(), `<p class="a">x</p>`, func(e domtest.Empty) {
		e.Query(".a").AssertNotExists()
	})
	s.Contains(msg, "element with selector `.a` actually exists")
}

func (s *WrapperTestSuite) TestQueryIsRepeatable() {
	e := domtest.MountHTML(s.T(), `<p id="a">one</p><p id="b">two</p>`)
	a := e.Query("#a")
	b := e.Query("#b")

	s.Equal("#a", a.Criterion())
	s.Equal("#b", b.Criterion())
	a.AssertExists().AssertTextIs("one")
	b.AssertExists().AssertTextIs("two")
	e.MustQuery("#a").AssertTextIs("one")
}

func (s *WrapperTestSuite) TestSelectOpt() {
	const src = `<select><option value="">none</option><option value="2">second</option></select>`

	e := domtest.MountHTML(s.T(), src)
	sel := domtest.QueryAs[dom.SelectEl](e, "select").AssertExists().SelectOpt("2")
	s.Equal("2", sel.Elem().Value())
	sel.AssertValueIs("2")

	msg := failing(s.T(), src, func(e domtest.Empty) {
		e.MustQuerySelect("select").SelectOpt("9")
	})
	s.Contains(msg, "9")
	s.Contains(msg, "option with value `9` not found")
}

func (s *WrapperTestSuite) TestSelectOptKeepsValue() {
	const src = `<select><option value="a">A</option><option value="b" selected>B</option></select>`

	rec := testutils.NewRecorder(s.T())
	var sel dom.SelectEl
	completed := rec.Run(func() {
		single := domtest.MountHTML(rec, src).MustQuerySelect("select")
		sel = single.Elem()
		single.SelectOpt("c")
	})

	s.False(completed)
	s.Equal("b", sel.Value())
}

func (s *WrapperTestSuite) TestSelectOptFiresChange() {
	e := domtest.MountHTML(s.T(), `<div><select><option>x</option><option>y</option></select></div>`)

	var changes []string
	e.MustQuery("div").On("change", func(evt *dom.Event) {
		changes = append(changes, evt.Target().(dom.SelectEl).Value())
	})
	e.MustQuerySelect("select").SelectOpt("y")

	s.Equal([]string{"y"}, changes)
}

func (s *WrapperTestSuite) TestChangeValue() {
	e := domtest.MountHTML(s.T(), `<form><input id="name"></form>`)

	var events []string
	record := func(evt *dom.Event) {
		events = append(events, evt.Type())
	}
	e.MustQuery("form").On("change", record).On("input", record)

	e.MustQueryInput("#name").ChangeValue("Ada").AssertValueIs("Ada")
	s.Equal([]string{"change", "input"}, events)
}

func (s *WrapperTestSuite) TestClickSettles() {
	doc := goquery.NewDocument()
	e := domtest.Mount(s.T(), doc, domtest.HTML{}, `<button type="button">go</button>`)

	flag := false
	btn := domtest.QueryAs[dom.ButtonEl](e, "button").AssertExists()
	btn.On("click", func(*dom.Event) {
		doc.Defer(func() { flag = true })
	})

	btn.Click()
	s.False(flag)
	btn.Settle()
	s.True(flag)
}

func (s *WrapperTestSuite) TestAutoSettle() {
	doc := goquery.NewDocument()
	e := domtest.Mount(s.T(), doc, domtest.HTML{}, `<button>go</button><p id="out"></p>`, domtest.WithAutoSettle())

	e.MustQueryButton("button").On("click", func(*dom.Event) {
		doc.Defer(func() {
			out, err := e.Root().QuerySelector("#out")
			if err == nil && out != nil {
				out.SetInnerHTML("clicked")
			}
		})
	}).Click()

	e.MustQuery("#out").AssertTextIs("clicked")
}

func (s *WrapperTestSuite) TestClickCheckbox() {
	e := domtest.MountHTML(s.T(), `<label for="c">check</label><input type="checkbox" id="c">`)

	e.MustQueryLabel("label").Click()
	s.True(e.MustQueryInput("#c").Elem().Checked())
	e.MustQueryInput("#c").Click()
	s.False(e.MustQueryInput("#c").Elem().Checked())
}

func (s *WrapperTestSuite) TestShapeMismatch() {
	msg := failing(s.T(), `<div id="d"></div>`, func(e domtest.Empty) {
		domtest.QueryAs[dom.InputEl](e, "#d")
	})
	s.Contains(msg, "#d")
	s.Contains(msg, "dom.InputEl")

	msg = failing(s.T(), `<div id="d"></div>`, func(e domtest.Empty) {
		e.MustQuery("#d").ChangeValue("x")
	})
	s.Contains(msg, "div#d")
	s.Contains(msg, "dom.InputEl")

	msg = failing(s.T(), `<p>a</p><input>`, func(e domtest.Empty) {
		domtest.QueryAllAs[dom.InputEl](e, "p, input")
	})
	s.Contains(msg, "dom.InputEl")
	s.Contains(msg, "<p>")
}

func (s *WrapperTestSuite) TestInvalidSelector() {
	msg := failing(s.T(), `<p></p>`, func(e domtest.Empty) {
		e.Query("p[")
	})
	s.Contains(msg, "invalid selector `p[`")
}

func (s *WrapperTestSuite) TestFindByTextExact() {
	const src = `<div id="c"><b>ab</b><i>cd</i></div><p id="x">X</p>`
	e := domtest.MountHTML(s.T(), src)

	e.FindByTextExact("abcd").AssertNotExists()
	e.FindByTextExact("ab").AssertExists().AssertTextIs("ab").NextElem().AssertExists().AssertTextIs("cd")
	e.FindByTextExact("X").AssertExists().AssertAttrIs("id", "x")

	msg := failing(s.T(), src, func(e domtest.Empty) {
		e.FindByTextExact("nope").AssertExists()
	})
	s.Contains(msg, "<text=nope>")
}

func (s *WrapperTestSuite) TestFindByTextExactIncludesRoot() {
	e := domtest.MountHTML(s.T(), `<p>in</p>`)
	root := e.MustQuery("p")

	root.FindByTextExact("in").AssertExists().AssertTextIs("in")
	domtest.FindByTextExactAs[dom.ButtonEl](e, "in").AssertNotExists()
}

func (s *WrapperTestSuite) TestClassAssertions() {
	e := domtest.MountHTML(s.T(), `<a class="btn btn-primary">x</a><b>y</b>`)

	e.MustQuery("a").
		AssertClassContains("btn-primary").
		AssertClassContains("primary").
		AssertClassNotContains("danger")
	e.MustQuery("b").AssertClassNotContains("btn")

	msg := failing(s.T(), `<a class="btn">x</a>`, func(e domtest.Empty) {
		e.MustQuery("a").AssertClassNotContains("btn")
	})
	s.Contains(msg, "which contains `btn`")

	msg = failing(s.T(), `<a class="btn">x</a>`, func(e domtest.Empty) {
		e.MustQuery("a").AssertClassContains("danger")
	})
	s.Contains(msg, "which does not contain `danger`")
}

func (s *WrapperTestSuite) TestTextAssertions() {
	e := domtest.MountHTML(s.T(), `<p>Hello <b>world</b></p>`)
	e.MustQuery("p").AssertTextIs("Hello world").AssertTextContains("lo wo")

	msg := failing(s.T(), `<p>Hello</p>`, func(e domtest.Empty) {
		e.MustQuery("p").AssertTextIs("Bye")
	})
	s.Contains(msg, "`Hello`")
	s.Contains(msg, "`Bye`")
}

func (s *WrapperTestSuite) TestTraversal() {
	e := domtest.MountHTML(s.T(), `<ul><li id="1">a</li> <li id="2">b</li></ul>`)

	first := e.MustQuery("li")
	first.NextElem().AssertExists().AssertTextIs("b").PrevElem().AssertExists().AssertAttrIs("id", "1")
	e.MustQuery("li").PrevElem().AssertNotExists()
	container := e.MustQuery("li").Parent().AssertExists().Parent().AssertExists()
	s.Equal("section", container.Elem().TagName())

	msg := failing(s.T(), `<p>a</p>`, func(e domtest.Empty) {
		e.MustQuery("p").NextElem().AssertExists()
	})
	s.Contains(msg, "<next-sibling>")
}

func (s *WrapperTestSuite) TestScopedQuery() {
	e := domtest.MountHTML(s.T(), `<p class="x">out</p><div><p class="x">in</p></div>`)

	div := e.MustQuery("div")
	div.Query(".x").AssertExists().AssertTextIs("in")
	div.QueryAll("p").AssertLen(1)
	e.QueryAll(".x").AssertLen(2)
}

func (s *WrapperTestSuite) TestMany() {
	e := domtest.MountHTML(s.T(), `<i id="a"></i><i id="b"></i><i id="c"></i>`)

	items := e.QueryAll("i").AssertLen(3)
	var ids []string
	for _, el := range items.All() {
		id, _ := el.Attr("id")
		ids = append(ids, id)
	}
	s.Equal([]string{"a", "b", "c"}, ids)
	s.Equal("i", items.Criterion())
	s.Len(items.Elems(), 3)

	s.Equal(0, e.QueryAll("span").Len())

	msg := failing(s.T(), `<i></i>`, func(e domtest.Empty) {
		e.QueryAll("i").AssertLen(2)
	})
	s.Contains(msg, "found 1 elements with selector `i`, expected 2")
}

func (s *WrapperTestSuite) TestAttr() {
	e := domtest.MountHTML(s.T(), `<a href="/x">x</a>`)
	e.MustQuery("a").AssertAttrIs("href", "/x")

	msg := failing(s.T(), `<a>x</a>`, func(e domtest.Empty) {
		e.MustQuery("a").AssertAttrIs("href", "/x")
	})
	s.Contains(msg, "attribute `href`")
	s.Contains(msg, "missing")
}

func (s *WrapperTestSuite) TestContainer() {
	doc := goquery.NewDocument()

	var inner domtest.Empty
	s.Run("mounted", func() {
		inner = domtest.Mount(s.T(), doc, domtest.HTML{}, `<b>x</b>`, domtest.WithContainerTag("main"))
		s.Equal("main", inner.Root().TagName())
		s.Equal("body", inner.Root().ParentElement().TagName())
	})

	// cleanup of the subtest unmounted the view and removed the container
	found, err := doc.Body().QuerySelector("main")
	s.NoError(err)
	s.Nil(found)
}

func (s *WrapperTestSuite) TestWithRoot() {
	doc := goquery.NewDocument()
	doc.Body().SetInnerHTML(`<div id="app"><p>x</p></div>`)
	root, err := doc.Body().QuerySelector("#app")
	s.Require().NoError(err)

	e := domtest.WithRoot(s.T(), root, nil, domtest.WithTicker(doc))
	e.MustQuery("p").AssertTextIs("x")
}

func (s *WrapperTestSuite) TestZeroValuePanics() {
	s.Panics(func() {
		var e domtest.Empty
		e.Query("p")
	})
	s.Panics(func() {
		var m domtest.Maybe[dom.Element]
		m.AssertExists()
	})
}

func TestFailureKinds(t *testing.T) {
	f := &domtest.Failure{Kind: domtest.NotFound, Criterion: "#a"}

	require.ErrorIs(t, f, domtest.ErrNotFound)
	require.False(t, errors.Is(f, domtest.ErrShapeMismatch))
	require.Equal(t, "not found", f.Kind.String())
	require.Equal(t, "Kind(99)", domtest.Kind(99).String())

	inner := errors.New("bad")
	sel := &domtest.Failure{Kind: domtest.InvalidSelector, Criterion: "[", Err: inner}
	require.ErrorIs(t, sel, inner)
	require.ErrorIs(t, sel, domtest.ErrInvalidSelector)
}

func TestCollect(t *testing.T) {
	doc := goquery.NewDocument()
	doc.Body().SetInnerHTML(`<option value="1">a</option><option value="2">b</option><p>c</p>`)

	nodes, err := doc.Body().QuerySelectorAll("option")
	require.NoError(t, err)

	opts, err := domtest.Collect[dom.OptionEl](nodes)
	require.NoError(t, err)
	require.Len(t, opts, 2)
	require.Equal(t, "1", opts[0].Value())
	require.Equal(t, "2", opts[1].Value())

	nodes, err = doc.Body().QuerySelectorAll("option, p")
	require.NoError(t, err)

	opts, err = domtest.Collect[dom.OptionEl](nodes)
	require.ErrorIs(t, err, domtest.ErrShapeMismatch)
	require.Nil(t, opts)
	require.Contains(t, err.Error(), "dom.OptionEl")
}
