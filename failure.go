package domtest

import (
	"fmt"
	"reflect"
)

// Kind classifies a Failure
type Kind int

const (
	NotFound Kind = iota + 1
	UnexpectedlyFound
	ShapeMismatch
	ValueNotFound
	TextMismatch
	ClassAssertionFailed
	InvalidSelector
	ValueMismatch
	AttrMismatch
	CountMismatch
)

var kindNames = map[Kind]string{
	NotFound:             "not found",
	UnexpectedlyFound:    "unexpectedly found",
	ShapeMismatch:        "shape mismatch",
	ValueNotFound:        "value not found",
	TextMismatch:         "text mismatch",
	ClassAssertionFailed: "class assertion failed",
	InvalidSelector:      "invalid selector",
	ValueMismatch:        "value mismatch",
	AttrMismatch:         "attribute mismatch",
	CountMismatch:        "count mismatch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is
var (
	ErrNotFound             = &Failure{Kind: NotFound}
	ErrUnexpectedlyFound    = &Failure{Kind: UnexpectedlyFound}
	ErrShapeMismatch        = &Failure{Kind: ShapeMismatch}
	ErrValueNotFound        = &Failure{Kind: ValueNotFound}
	ErrTextMismatch         = &Failure{Kind: TextMismatch}
	ErrClassAssertionFailed = &Failure{Kind: ClassAssertionFailed}
	ErrInvalidSelector      = &Failure{Kind: InvalidSelector}
	ErrValueMismatch        = &Failure{Kind: ValueMismatch}
	ErrAttrMismatch         = &Failure{Kind: AttrMismatch}
	ErrCountMismatch        = &Failure{Kind: CountMismatch}
)

// Failure describes why an operation failed the test. Criterion is the
// selector or text pattern involved, Element the debug info of the element
// the operation ran on.
type Failure struct {
	Kind      Kind
	Criterion string
	Element   string
	// Negated is set for "does not contain" style assertions
	Negated  bool
	Expected string
	Actual   string
	Err      error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NotFound:
		return fmt.Sprintf("element with selector `%s` does not exist", f.Criterion)

	case UnexpectedlyFound:
		return fmt.Sprintf("element with selector `%s` actually exists: %s", f.Criterion, f.Actual)

	case ShapeMismatch:
		if f.Criterion != "" {
			return fmt.Sprintf("element with selector `%s` is not an instance of %s (got %s)", f.Criterion, f.Expected, f.Actual)
		}
		if f.Element != "" {
			return fmt.Sprintf("element {%s} is not an instance of %s", f.Element, f.Expected)
		}
		return fmt.Sprintf("some node was not an instance of %s (got %s)", f.Expected, f.Actual)

	case ValueNotFound:
		return fmt.Sprintf("option with value `%s` not found", f.Expected)

	case TextMismatch:
		if f.Negated {
			return fmt.Sprintf("text of {%s} is `%s`, which does not contain `%s`", f.Element, f.Actual, f.Expected)
		}
		return fmt.Sprintf("text of {%s} is `%s`, expected `%s`", f.Element, f.Actual, f.Expected)

	case ClassAssertionFailed:
		if f.Negated {
			return fmt.Sprintf("class of {%s} is `%s`, which contains `%s`", f.Element, f.Actual, f.Expected)
		}
		return fmt.Sprintf("class of {%s} is `%s`, which does not contain `%s`", f.Element, f.Actual, f.Expected)

	case InvalidSelector:
		return fmt.Sprintf("invalid selector `%s`: %v", f.Criterion, f.Err)

	case ValueMismatch:
		return fmt.Sprintf("value of {%s} is `%s`, expected `%s`", f.Element, f.Actual, f.Expected)

	case AttrMismatch:
		return fmt.Sprintf("attribute `%s` of {%s} is %s, expected `%s`", f.Criterion, f.Element, f.Actual, f.Expected)

	case CountMismatch:
		return fmt.Sprintf("found %s elements with selector `%s`, expected %s", f.Actual, f.Criterion, f.Expected)
	}

	return f.Kind.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is matches failures of the same kind, so errors.Is(err, ErrNotFound)
// works for any not-found failure.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Kind == f.Kind
}

func shapeOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
