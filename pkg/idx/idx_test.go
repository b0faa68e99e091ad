package idx_test

import (
	"testing"
	"time"

	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid, in)
		require.False(t, idx.Valid(in))
	}
}

func TestSameMillisecondStillSorts(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	// Lexical order doubles as creation order within the store.
	require.Less(t, a.String(), b.String())
	require.WithinDuration(t, at, a.Time(), time.Millisecond)
}
