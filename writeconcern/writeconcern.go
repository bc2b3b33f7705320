// Package writeconcern defines write concerns: the level of acknowledgement
// requested from a replicated document store before a write operation is
// considered complete.
package writeconcern

import (
	"fmt"
	"strings"

	"github.com/ikmak/concern/document"
)

// WriteConcern describes how durably and how widely a write must be applied
// before the store reports success. Instances are immutable once constructed
// and safe for unsynchronized concurrent use.
type WriteConcern struct {
	doc           document.Doc
	acknowledged  bool
	serverDefault bool
}

// Default is the shared server-default write concern. Its document is empty,
// leaving the acknowledgement level entirely to the cluster configuration.
var Default = &WriteConcern{acknowledged: true, serverDefault: true}

// settings collects the raw option values prior to validation. A nil field
// means the option was not supplied.
type settings struct {
	w        interface{}
	wTimeout interface{}
	journal  interface{}
	fsync    interface{}
}

// Option is a value to supply to New.
type Option func(*settings)

// W requests acknowledgement that the write has propagated to the specified
// number of nodes (an integer, counting the primary) or to the named tagged
// node set (a string). Any other type fails validation.
func W(w interface{}) Option {
	return func(s *settings) {
		s.w = w
	}
}

// WMajority requests acknowledgement from a majority of nodes.
func WMajority() Option {
	return W("majority")
}

// WTagSet requests acknowledgement from the named tagged node set.
func WTagSet(name string) Option {
	return W(name)
}

// WTimeout specifies how many milliseconds to wait for the requested
// propagation before the network layer reports a timeout. The value is
// stored and surfaced only; it must be a non-negative integer.
func WTimeout(wtimeout interface{}) Option {
	return func(s *settings) {
		s.wTimeout = wtimeout
	}
}

// J requests that the write be durable in the node's on-disk journal before
// acknowledgement. The value must be a boolean.
func J(j interface{}) Option {
	return func(s *settings) {
		s.journal = j
	}
}

// FSync requests that, on nodes running without a journal, data files be
// flushed to disk before acknowledgement. On journaling nodes this behaves
// like J. The value must be a boolean and cannot be combined with j=true.
func FSync(fsync interface{}) Option {
	return func(s *settings) {
		s.fsync = fsync
	}
}

// New constructs an immutable WriteConcern from the supplied options.
//
// Validation is strict and fails fast: options are checked in a fixed order
// (wtimeout, j, fsync, the w/j conflict, then w) and the first violation
// aborts construction. Each failure is one of this package's sentinel
// errors, classified by Kind.
func New(opts ...Option) (*WriteConcern, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var doc document.Doc
	acknowledged := true

	if s.wTimeout != nil {
		t, ok := s.wTimeout.(int)
		if !ok {
			return nil, ErrWTimeoutType
		}
		if t < 0 {
			return nil, ErrNegativeWTimeout
		}
		doc = append(doc, document.Elem{Key: "wtimeout", Value: t})
	}

	var journal bool
	if s.journal != nil {
		j, ok := s.journal.(bool)
		if !ok {
			return nil, ErrJournalType
		}
		journal = j
		doc = append(doc, document.Elem{Key: "j", Value: j})
	}

	if s.fsync != nil {
		f, ok := s.fsync.(bool)
		if !ok {
			return nil, ErrFSyncType
		}
		if journal && f {
			return nil, ErrJournalAndFSync
		}
		doc = append(doc, document.Elem{Key: "fsync", Value: f})
	}

	// The w=0/j=true conflict is checked against the supplied values before
	// w itself is validated, so it takes precedence over a bad w.
	if w, ok := s.w.(int); ok && w == 0 && journal {
		return nil, ErrInconsistent
	}

	if s.w != nil {
		switch w := s.w.(type) {
		case int:
			if w < 0 {
				return nil, ErrNegativeW
			}
			acknowledged = w > 0
			doc = append(doc, document.Elem{Key: "w", Value: w})
		case string:
			doc = append(doc, document.Elem{Key: "w", Value: w})
		default:
			return nil, ErrWType
		}
	}

	return &WriteConcern{
		doc:           doc,
		acknowledged:  acknowledged,
		serverDefault: len(doc) == 0,
	}, nil
}

// Unacknowledged returns a WriteConcern that requests no acknowledgement of
// write operations.
func Unacknowledged() *WriteConcern {
	wc, _ := New(W(0))
	return wc
}

// W1 returns a WriteConcern that requests acknowledgement from the primary
// alone.
func W1() *WriteConcern {
	wc, _ := New(W(1))
	return wc
}

// Majority returns a WriteConcern that requests acknowledgement from a
// majority of nodes.
func Majority() *WriteConcern {
	wc, _ := New(WMajority())
	return wc
}

// Journaled returns a WriteConcern that requests journal durability on the
// default number of nodes.
func Journaled() *WriteConcern {
	wc, _ := New(J(true))
	return wc
}

// Document returns the canonical document: exactly the fields that were
// supplied, under their canonical keys, in validation order. Each call
// returns an independent copy; mutating it never affects the WriteConcern.
func (wc *WriteConcern) Document() document.Doc {
	if wc == nil {
		return nil
	}

	return wc.doc.Copy()
}

// Acknowledged indicates whether a write with this concern waits for
// acknowledgement. It is false only when w was supplied as the integer 0.
func (wc *WriteConcern) Acknowledged() bool {
	if wc == nil {
		return true
	}

	return wc.acknowledged
}

// IsServerDefault indicates whether every field was left to the cluster
// default, i.e. the canonical document is empty.
func (wc *WriteConcern) IsServerDefault() bool {
	if wc == nil {
		return true
	}

	return wc.serverDefault
}

// Equal reports whether the two write concerns have equal canonical
// documents. Insertion order does not participate. A nil WriteConcern
// compares as the server default.
func (wc *WriteConcern) Equal(other *WriteConcern) bool {
	return wc.Document().Equal(other.Document())
}

// String renders the recorded fields in insertion order, for diagnostics
// only.
func (wc *WriteConcern) String() string {
	if wc == nil {
		return "WriteConcern()"
	}

	parts := make([]string, 0, len(wc.doc))
	for _, e := range wc.doc {
		parts = append(parts, fmt.Sprintf("%s=%v", e.Key, e.Value))
	}

	return "WriteConcern(" + strings.Join(parts, ", ") + ")"
}
