package index_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/entities/alog"
	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/index"
	"github.com/go-arrower/entities/internal/testdata"
)

func TestUnique_Insert(t *testing.T) {
	t.Parallel()

	t.Run("insert", func(t *testing.T) {
		t.Parallel()

		idx := index.NewUnique[string, testdata.User]()
		u := testdata.NewUser()

		prev, replaced := idx.Insert(u.Login, u.UID)
		assert.False(t, replaced)
		assert.True(t, prev.IsZero())

		id, found := idx.Get(u.Login)
		assert.True(t, found)
		assert.Equal(t, u.UID, id)
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("insert same key again", func(t *testing.T) {
		t.Parallel()

		idx := index.NewUnique[string, testdata.User]()
		id1, id2 := eid.New[testdata.User](1), eid.New[testdata.User](2)

		idx.Insert("key", id1)

		prev, replaced := idx.Insert("key", id2)
		assert.True(t, replaced)
		assert.Equal(t, id1, prev)

		id, _ := idx.Get("key")
		assert.Equal(t, id2, id)
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("does not validate ids", func(t *testing.T) {
		t.Parallel()

		idx := index.NewUnique[int, testdata.User]()

		_, replaced := idx.Insert(1, eid.ID[testdata.User]{})
		assert.False(t, replaced)
		assert.True(t, idx.Has(1))
	})

	t.Run("log remapped key", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		idx := index.NewUnique[string, testdata.User](index.WithLogger(logger))

		idx.Insert("key", eid.New[testdata.User](1))
		idx.Insert("key", eid.New[testdata.User](1))
		logger.Empty("same id is no remapping")

		idx.Insert("key", eid.New[testdata.User](2))
		logger.Total(1)
		logger.Contains(`msg="unique key remapped" key=key prev=User:1 id=User:2`)
	})
}

func TestUnique_Get(t *testing.T) {
	t.Parallel()

	idx := index.NewUnique[string, testdata.User]()

	id, found := idx.Get("unknown")
	assert.False(t, found)
	assert.True(t, id.IsZero())
	assert.False(t, idx.Has("unknown"))
}

func TestNewUniqueFunc(t *testing.T) {
	t.Parallel()

	idx := index.NewUniqueFunc[string, testdata.User](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	idx.Insert("Hello@arrower.org", eid.New[testdata.User](1))

	id, found := idx.Get("hello@ARROWER.org")
	assert.True(t, found)
	assert.Equal(t, eid.New[testdata.User](1), id)
}
