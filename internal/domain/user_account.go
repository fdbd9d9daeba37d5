package domain

import (
	"github.com/google/uuid"
)

type UserAccount struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	BirthDate string

	ShoppingCart *ShoppingCart
}

func NewUserAccount(firstName, lastName, birthDate string) *UserAccount {
	return &UserAccount{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		BirthDate:    birthDate,
		ShoppingCart: NewShoppingCart(),
	}
}

func (u *UserAccount) FullName() string {
	return u.FirstName + " " + u.LastName
}
