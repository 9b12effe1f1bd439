package ber

import "errors"

// SkipChildren is used as a return value from a WalkFunc to indicate that the
// contents of the visited constructed element are not to be walked. It is not
// returned as an error by any function.
var SkipChildren = errors.New("skip children")

// Visit describes one element reached by a Walker.
type Visit struct {
	Kind    Kind
	Depth   int     // nesting depth, 0 for the elements of the walked cursor
	Index   int     // position among its siblings
	Element Element // framing of the element
	// Contents spans the element contents for constructed kinds. Its Tag
	// method reports the tag number of a KindApplication element.
	Contents Cursor
}

// WalkFunc is called by Walk for every element, parents before children.
type WalkFunc func(v Visit) error

// Walker walks the element tree remaining to a cursor.
type Walker struct {
	// MaxDepth bounds the nesting depth. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Walk walks c with the default limits.
func Walk(c Cursor, fn WalkFunc) error {
	return Walker{}.Walk(c, fn)
}

// Walk calls fn for every element remaining to c, descending into
// application, SEQUENCE and SET elements. Each position is probed with the
// extractors in turn (Constructed, Sequence, Set, OID, OctetString); elements
// none of them match are reported as KindOther and not descended into.
//
// Errors are wrapped with the index path of the failing element.
func (w Walker) Walk(c Cursor, fn WalkFunc) error {
	return walk(c, fn, 0, w.limit())
}

func (w Walker) limit() int {
	if w.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return w.MaxDepth
}

func walk(c Cursor, fn WalkFunc, depth, limit int) error {
	if depth >= limit && !c.Empty() {
		return ErrMaxDepthExceeded
	}
	for i := 0; !c.Empty(); i++ {
		v, err := classify(c)
		if err != nil {
			return WrapError(err, i)
		}
		v.Depth, v.Index = depth, i

		err = fn(v)
		switch {
		case err == SkipChildren:
		case err != nil:
			return WrapError(err, i)
		case v.Kind.Constructed():
			if err := walk(v.Contents, fn, depth+1, limit); err != nil {
				return WrapError(err, i)
			}
		}

		if err := c.Next(); err != nil {
			return WrapError(err, i)
		}
	}
	return nil
}

// classify probes the element at the cursor position with every extractor,
// stopping at the first match.
func classify(c Cursor) (Visit, error) {
	el, err := c.Element()
	if err != nil {
		return Visit{}, err
	}
	v := Visit{Kind: KindOther, Element: el}
	if child, err := c.Constructed(); err == nil {
		v.Kind, v.Contents = KindApplication, child
	} else if child, err := c.Sequence(); err == nil {
		v.Kind, v.Contents = KindSequence, child
	} else if child, err := c.Set(); err == nil {
		v.Kind, v.Contents = KindSet, child
	} else if _, err := c.OID(); err == nil {
		v.Kind = KindOID
	} else if _, err := c.OctetString(); err == nil {
		v.Kind = KindOctetString
	}
	return v, nil
}
