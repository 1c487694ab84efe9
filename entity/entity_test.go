package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/entity"
	"github.com/go-arrower/entities/internal/testdata"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	alice := testdata.User{UID: eid.New[testdata.User](1), Name: "alice"}
	bob := testdata.User{UID: eid.New[testdata.User](2), Name: "bob"}

	assert.Equal(t, -1, entity.Compare(alice, bob))
	assert.Equal(t, 0, entity.Compare(alice, alice))
	assert.Equal(t, 1, entity.Compare(bob, alice))

	assert.True(t, entity.Less(alice, bob))
	assert.False(t, entity.Less(bob, alice))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	alice := testdata.User{UID: eid.New[testdata.User](1), Name: "alice"}

	assert.True(t, entity.Equal(alice, alice))
	assert.True(t, entity.Equal(alice, testdata.User{UID: alice.UID, Name: "renamed"}), "only the id counts")
	assert.False(t, entity.Equal(alice, testdata.User{UID: eid.New[testdata.User](2), Name: "alice"}))
}

func TestSort(t *testing.T) {
	t.Parallel()

	users := []testdata.User{
		{UID: eid.New[testdata.User](3)},
		{UID: eid.New[testdata.User](1)},
		{UID: eid.New[testdata.User](2)},
	}

	entity.Sort(users)

	assert.Equal(t, []testdata.User{
		{UID: eid.New[testdata.User](1)},
		{UID: eid.New[testdata.User](2)},
		{UID: eid.New[testdata.User](3)},
	}, users)
}
