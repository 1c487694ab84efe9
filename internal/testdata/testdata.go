// Package testdata holds entities used in the tests of the other packages.
package testdata

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/entities/eid"
)

type User struct {
	UID   eid.ID[User]
	Login string
	Name  string
	Team  string
}

func (u User) EntityID() eid.ID[User] {
	return u.UID
}

type Order struct {
	OID    eid.ID[Order]
	Buyer  eid.ID[User]
	Amount int
}

func (o Order) EntityID() eid.ID[Order] {
	return o.OID
}

var userIDs eid.Generator[User] //nolint:gochecknoglobals // unique ids across all tests of a package

// NewUser returns a User with a new, unique ID and fake data.
func NewUser() User {
	return User{
		UID:   userIDs.Next(),
		Login: gofakeit.Email(),
		Name:  gofakeit.Name(),
		Team:  gofakeit.RandomString([]string{"red", "green", "blue"}),
	}
}

// NewOrder returns an Order with the given ID, placed by buyer.
func NewOrder(id uint64, buyer eid.ID[User]) Order {
	return Order{
		OID:    eid.New[Order](id),
		Buyer:  buyer,
		Amount: gofakeit.Number(1, 1000),
	}
}
