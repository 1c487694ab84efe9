package index_test

import (
	"fmt"

	"github.com/go-arrower/entities/eid"
	"github.com/go-arrower/entities/entity"
	"github.com/go-arrower/entities/index"
)

func Example_collectionWithIndexes() {
	users := NewUserDirectory("admins", "guests")

	users.Add(User{ID: 1, Login: "hello@arrower.org", Group: "admins"})
	users.Add(User{ID: 2, Login: "guest@arrower.org", Group: "guests"})
	users.Add(User{ID: 3, Login: "root@arrower.org", Group: "admins"})

	u, _ := users.FindByLogin("root@arrower.org")
	fmt.Println(u)

	fmt.Println(users.FindByGroup("admins"))
	fmt.Println(users.FindByGroup("unknown"))

	// Output:
	// {3 root@arrower.org admins}
	// [{1 hello@arrower.org admins} {3 root@arrower.org admins}]
	// []
}

type UserID = eid.ID[User]

type User struct {
	ID    uint64
	Login string
	Group string
}

func (u User) EntityID() UserID { return eid.New[User](u.ID) }

// UserDirectory keeps the collection of users and its indexes in sync.
type UserDirectory struct {
	*entity.Collection[User]

	byLogin *index.Unique[string, User]
	byGroup *index.Reverse[string, User]
}

func NewUserDirectory(groups ...string) *UserDirectory {
	dir := &UserDirectory{
		Collection: entity.NewCollection[User](),
		byLogin:    index.NewUnique[string, User](),
		byGroup:    index.NewReverse[string, User](),
	}

	for _, g := range groups {
		dir.byGroup.Seed(g)
	}

	return dir
}

func (dir *UserDirectory) Add(u User) {
	dir.Insert(u)
	dir.byLogin.Insert(u.Login, u.EntityID())
	dir.byGroup.Insert(u.Group, u.EntityID())
}

func (dir *UserDirectory) FindByLogin(login string) (User, bool) {
	id, found := dir.byLogin.Get(login)
	if !found {
		return User{}, false
	}

	return dir.Get(id)
}

func (dir *UserDirectory) FindByGroup(group string) []User {
	ids, _ := dir.byGroup.IDs(group)

	users := []User{}

	for _, id := range ids {
		if u, found := dir.Get(id); found {
			users = append(users, u)
		}
	}

	return users
}
