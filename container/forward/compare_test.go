package forward

import (
	"bytes"
	"strings"
	"testing"
	"testing/quick"

	"github.com/containerkit/datastructures/compare"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		scenario string
		a, b     *List[int]
		equal    bool
	}{
		{
			scenario: "two empty lists are equal",
			a:        New[int](),
			b:        New[int](),
			equal:    true,
		},

		{
			scenario: "lists holding the same elements in the same order are equal",
			a:        New(1, 2, 3),
			b:        New(1, 2, 3),
			equal:    true,
		},

		{
			scenario: "lists holding the same elements in a different order are not equal",
			a:        New(1, 2, 3),
			b:        New(3, 2, 1),
			equal:    false,
		},

		{
			scenario: "lists of different lengths are not equal",
			a:        New(1, 2),
			b:        New(1, 2, 3),
			equal:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if equal := Equal(test.a, test.b); equal != test.equal {
				t.Errorf("wrong comparison of the lists: got=%t want=%t", equal, test.equal)
			}
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := New("go", "GO")
	b := New("GO", "go")

	if Equal(a, b) {
		t.Error("case-sensitive comparison of the lists reported equality")
	}
	if !EqualFunc(a, b, strings.EqualFold) {
		t.Error("case-insensitive comparison of the lists reported inequality")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		scenario string
		a, b     *List[int]
		cmp      int
	}{
		{
			scenario: "equal lists compare to zero",
			a:        New(1, 2, 3),
			b:        New(1, 2, 3),
			cmp:      0,
		},

		{
			scenario: "the first differing element decides the ordering",
			a:        New(1, 2, 3),
			b:        New(1, 2, 4),
			cmp:      -1,
		},

		{
			scenario: "a list compares less than a longer list it is a prefix of",
			a:        New(1, 2),
			b:        New(1, 2, 3),
			cmp:      -1,
		},

		{
			scenario: "an empty list compares less than any non-empty list",
			a:        New[int](),
			b:        New(1),
			cmp:      -1,
		},

		{
			scenario: "a differing element outweighs a length difference",
			a:        New(2),
			b:        New(1, 2, 3),
			cmp:      +1,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if cmp := Compare(test.a, test.b); cmp != test.cmp {
				t.Errorf("wrong comparison of the lists: got=%d want=%d", cmp, test.cmp)
			}
			if cmp := Compare(test.b, test.a); cmp != -test.cmp {
				t.Errorf("wrong comparison of the swapped lists: got=%d want=%d", cmp, -test.cmp)
			}
		})
	}
}

func TestCompareMatchesBytes(t *testing.T) {
	f := func(a, b []byte) bool {
		return Compare(New(a...), New(b...)) == bytes.Compare(a, b)
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCompareFunc(t *testing.T) {
	a := New(1, 2)
	b := New(1, 3)

	if cmp := CompareFunc(a, b, compare.Function[int]); cmp != -1 {
		t.Errorf("wrong comparison of the lists: got=%d want=-1", cmp)
	}
	if cmp := CompareFunc(a, b, compare.Reverse(compare.Function[int])); cmp != +1 {
		t.Errorf("wrong reversed comparison of the lists: got=%d want=+1", cmp)
	}
}

func TestRelationalConsistency(t *testing.T) {
	lists := []*List[int]{
		New[int](),
		New(1),
		New(1, 2),
		New(1, 2, 3),
		New(1, 2, 4),
		New(2),
	}

	for _, a := range lists {
		for _, b := range lists {
			cmp := Compare(a, b)

			if less := Less(a, b); less != (cmp < 0) {
				t.Errorf("Less(%v, %v) disagrees with Compare: got=%t cmp=%d", values(a), values(b), less, cmp)
			}
			if le := LessOrEqual(a, b); le != (cmp <= 0) {
				t.Errorf("LessOrEqual(%v, %v) disagrees with Compare: got=%t cmp=%d", values(a), values(b), le, cmp)
			}
			if greater := Greater(a, b); greater != (cmp > 0) {
				t.Errorf("Greater(%v, %v) disagrees with Compare: got=%t cmp=%d", values(a), values(b), greater, cmp)
			}
			if ge := GreaterOrEqual(a, b); ge != (cmp >= 0) {
				t.Errorf("GreaterOrEqual(%v, %v) disagrees with Compare: got=%t cmp=%d", values(a), values(b), ge, cmp)
			}
			if equal := Equal(a, b); equal != (cmp == 0) {
				t.Errorf("Equal(%v, %v) disagrees with Compare: got=%t cmp=%d", values(a), values(b), equal, cmp)
			}
		}
	}
}

func values[T any](l *List[T]) []T {
	v := make([]T, 0, l.Len())
	l.Range(func(x T) bool {
		v = append(v, x)
		return true
	})
	return v
}
