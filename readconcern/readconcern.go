// Package readconcern defines read concerns: the consistency and isolation
// level requested for read operations against a replicated document store.
package readconcern

import "github.com/ikmak/concern/document"

// ReadConcern holds an optional read concern level. Instances are immutable
// once constructed and safe for unsynchronized concurrent use.
type ReadConcern struct {
	level string
}

// Default is the shared server-default read concern. Its document is empty,
// leaving the level entirely to the cluster configuration.
var Default = &ReadConcern{}

// New constructs a ReadConcern with the given level. An empty level yields
// the server default.
func New(level string) *ReadConcern {
	return &ReadConcern{level: level}
}

// Local returns a ReadConcern that requests the node's most recent data,
// with no guarantee the data has been majority-acknowledged.
func Local() *ReadConcern {
	return &ReadConcern{level: "local"}
}

// Majority returns a ReadConcern that requests data acknowledged by a
// majority of nodes.
func Majority() *ReadConcern {
	return &ReadConcern{level: "majority"}
}

// Linearizable returns a ReadConcern that requests data reflecting all
// majority-acknowledged writes completed before the read started.
func Linearizable() *ReadConcern {
	return &ReadConcern{level: "linearizable"}
}

// Available returns a ReadConcern that requests data with no consistency
// guarantee, favoring availability.
func Available() *ReadConcern {
	return &ReadConcern{level: "available"}
}

// Snapshot returns a ReadConcern that requests majority-committed data from
// a single point in time.
func Snapshot() *ReadConcern {
	return &ReadConcern{level: "snapshot"}
}

// Level returns the requested level, or the empty string for the server
// default.
func (rc *ReadConcern) Level() string {
	if rc == nil {
		return ""
	}

	return rc.level
}

// Document returns the canonical document: {level: <level>} when a level was
// supplied, empty otherwise. Each call returns an independent copy.
func (rc *ReadConcern) Document() document.Doc {
	if rc == nil || rc.level == "" {
		return nil
	}

	return document.Doc{{Key: "level", Value: rc.level}}
}

// IsServerDefault indicates whether the level was left to the cluster
// default.
func (rc *ReadConcern) IsServerDefault() bool {
	return rc == nil || rc.level == ""
}

// Equal reports whether the two read concerns have equal canonical
// documents. A nil ReadConcern compares as the server default.
func (rc *ReadConcern) Equal(other *ReadConcern) bool {
	return rc.Document().Equal(other.Document())
}

// String renders the concern for diagnostics only.
func (rc *ReadConcern) String() string {
	if rc.IsServerDefault() {
		return "ReadConcern()"
	}

	return "ReadConcern(level=" + rc.level + ")"
}
