package document_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikmak/concern/document"
)

func TestCopy(t *testing.T) {
	t.Parallel()

	orig := document.Doc{
		{Key: "w", Value: 3},
		{Key: "wtimeout", Value: 500},
	}

	cp := orig.Copy()
	require.Empty(t, cmp.Diff(orig, cp))

	cp[0] = document.Elem{Key: "w", Value: 99}
	v, ok := orig.Lookup("w")
	require.True(t, ok)
	assert.Equal(t, 3, v, "mutating a copy must not affect the original")

	var nilDoc document.Doc
	assert.Nil(t, nilDoc.Copy())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	doc := document.Doc{
		{Key: "j", Value: true},
		{Key: "w", Value: "majority"},
	}

	v, ok := doc.Lookup("w")
	assert.True(t, ok)
	assert.Equal(t, "majority", v)

	_, ok = doc.Lookup("wtimeout")
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a    document.Doc
		b    document.Doc
		want bool
	}{
		{
			name: "both empty",
			a:    nil,
			b:    document.Doc{},
			want: true,
		},
		{
			name: "same order",
			a:    document.Doc{{Key: "w", Value: 3}, {Key: "j", Value: true}},
			b:    document.Doc{{Key: "w", Value: 3}, {Key: "j", Value: true}},
			want: true,
		},
		{
			name: "different order",
			a:    document.Doc{{Key: "w", Value: 3}, {Key: "j", Value: true}},
			b:    document.Doc{{Key: "j", Value: true}, {Key: "w", Value: 3}},
			want: true,
		},
		{
			name: "different value",
			a:    document.Doc{{Key: "w", Value: 3}},
			b:    document.Doc{{Key: "w", Value: 4}},
			want: false,
		},
		{
			name: "different value type",
			a:    document.Doc{{Key: "w", Value: 1}},
			b:    document.Doc{{Key: "w", Value: "1"}},
			want: false,
		},
		{
			name: "different key set",
			a:    document.Doc{{Key: "w", Value: 3}},
			b:    document.Doc{{Key: "wtimeout", Value: 3}},
			want: false,
		},
		{
			name: "subset",
			a:    document.Doc{{Key: "w", Value: 3}},
			b:    document.Doc{{Key: "w", Value: 3}, {Key: "j", Value: true}},
			want: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // Capture range variable.

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "equality must be symmetric")
		})
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	doc := document.Doc{
		{Key: "wtimeout", Value: 500},
		{Key: "j", Value: false},
		{Key: "w", Value: 2},
	}

	assert.Equal(t, []string{"wtimeout", "j", "w"}, doc.Keys())
}

func TestString(t *testing.T) {
	t.Parallel()

	doc := document.Doc{
		{Key: "wtimeout", Value: 500},
		{Key: "w", Value: "majority"},
	}

	assert.Equal(t, "{wtimeout: 500, w: majority}", doc.String())
	assert.Equal(t, "{}", document.Doc{}.String())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	doc := document.Doc{
		{Key: "wtimeout", Value: 500},
		{Key: "j", Value: true},
		{Key: "w", Value: "majority"},
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	// Insertion order is preserved.
	assert.Equal(t, `{"wtimeout":500,"j":true,"w":"majority"}`, string(b))

	b, err = json.Marshal(document.Doc{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}
