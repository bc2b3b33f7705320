// Package connstring parses the concern-related options of a connection
// string query fragment and feeds them, as raw values, into the validating
// concern constructors.
package connstring

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ikmak/concern/readconcern"
	"github.com/ikmak/concern/writeconcern"
)

var log = logrus.StandardLogger()

// SetLogger replaces the logger used for unknown-option warnings.
func SetLogger(l *logrus.Logger) {
	log = l
}

// ConnString holds the concern options recognized in a query fragment. A
// *Set field records whether the corresponding option appeared at all, so
// absent options stay absent in the produced concerns.
type ConnString struct {
	W           interface{}
	WSet        bool
	WTimeout    int
	WTimeoutSet bool
	Journal     bool
	JournalSet  bool
	FSync       bool
	FSyncSet    bool

	ReadConcernLevel    string
	ReadConcernLevelSet bool
}

// Parse reads a query fragment of the form "k=v&k=v". Option names are
// case-insensitive. Unrecognized options are logged and skipped; malformed
// values for recognized options are fatal.
func Parse(query string) (*ConnString, error) {
	cs := &ConnString{}

	if query == "" {
		return cs, nil
	}

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf("invalid option %q: missing '='", pair)
		}

		if err := cs.apply(key, value); err != nil {
			return nil, err
		}
	}

	return cs, nil
}

func (cs *ConnString) apply(key, value string) error {
	switch strings.ToLower(key) {
	case "w":
		// An integer if it parses as one, otherwise the name of a tagged
		// node set.
		if n, err := strconv.Atoi(value); err == nil {
			cs.W = n
		} else {
			cs.W = value
		}
		cs.WSet = true
	case "wtimeoutms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q for %q", value, key)
		}
		cs.WTimeout = n
		cs.WTimeoutSet = true
	case "journal":
		b, err := parseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q for %q", value, key)
		}
		cs.Journal = b
		cs.JournalSet = true
	case "fsync":
		b, err := parseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q for %q", value, key)
		}
		cs.FSync = b
		cs.FSyncSet = true
	case "readconcernlevel":
		cs.ReadConcernLevel = value
		cs.ReadConcernLevelSet = true
	default:
		log.WithField("option", key).Warn("unknown concern option, ignoring")
	}

	return nil
}

// parseBool accepts exactly "true" and "false".
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, errors.New("must be \"true\" or \"false\"")
}

// WriteConcern builds a WriteConcern from the recorded options. It returns
// (nil, nil) when no write concern option appeared, so callers can fall
// back to the server default. Validation failures from the constructor are
// returned with context and remain classifiable via writeconcern.KindOf.
func (cs *ConnString) WriteConcern() (*writeconcern.WriteConcern, error) {
	if !cs.WSet && !cs.WTimeoutSet && !cs.JournalSet && !cs.FSyncSet {
		return nil, nil
	}

	var opts []writeconcern.Option
	if cs.WSet {
		opts = append(opts, writeconcern.W(cs.W))
	}
	if cs.WTimeoutSet {
		opts = append(opts, writeconcern.WTimeout(cs.WTimeout))
	}
	if cs.JournalSet {
		opts = append(opts, writeconcern.J(cs.Journal))
	}
	if cs.FSyncSet {
		opts = append(opts, writeconcern.FSync(cs.FSync))
	}

	wc, err := writeconcern.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid write concern")
	}

	return wc, nil
}

// ReadConcern builds a ReadConcern from the recorded options, or nil when no
// read concern option appeared.
func (cs *ConnString) ReadConcern() *readconcern.ReadConcern {
	if !cs.ReadConcernLevelSet {
		return nil
	}

	return readconcern.New(cs.ReadConcernLevel)
}
