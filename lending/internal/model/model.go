package model

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindBook Kind = "BOOK"
	KindCD   Kind = "CD"
)

// Policy holds the lending terms shared by every item of a kind.
type Policy struct {
	BorrowingPeriodDays int `json:"borrowingPeriodDays"`
	FinePerDay          int `json:"finePerDay"`
}

var policies = map[Kind]Policy{
	KindBook: {BorrowingPeriodDays: 28, FinePerDay: 10},
	KindCD:   {BorrowingPeriodDays: 7, FinePerDay: 20},
}

func (k Kind) Policy() Policy {
	return policies[k]
}

func (k Kind) Valid() bool {
	_, ok := policies[k]
	return ok
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown media kind %q", s)
	}
	return k, nil
}

type MediaItem struct {
	Kind       Kind   `json:"kind" db:"kind"`
	Identifier string `json:"identifier" db:"identifier"`
	Title      string `json:"title" db:"title"`
	Author     string `json:"author" db:"author"`
	Available  bool   `json:"available" db:"available"`
}

func (m MediaItem) BorrowingPeriodDays() int {
	return m.Kind.Policy().BorrowingPeriodDays
}

func (m MediaItem) FinePerDay() int {
	return m.Kind.Policy().FinePerDay
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleCustomer  Role = "customer"
)

// CanManage reports whether the role may change the catalog or see other users' loans.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleLibrarian
}

type User struct {
	Username      string `json:"username" db:"username"`
	Password      string `json:"-" db:"password"`
	Role          Role   `json:"role" db:"role"`
	Email         string `json:"email" db:"email"`
	LastLoginDate string `json:"lastLoginDate" db:"last_login_date"`
}

type AddMediaItemRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=BOOK CD book cd"`
	Identifier string `json:"identifier" validate:"required,singleline"`
	Title      string `json:"title" validate:"required,singleline"`
	Author     string `json:"author" validate:"required,singleline"`
	Copies     int    `json:"copies" validate:"gte=0,lte=1000"`
}

type AddCopiesRequest struct {
	Count     int   `json:"count" validate:"required,gt=0,lte=1000"`
	Available *bool `json:"available"`
}

type SetCopyAvailableRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type BorrowRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type SearchField string

const (
	SearchByTitle      SearchField = "title"
	SearchByAuthor     SearchField = "author"
	SearchByIdentifier SearchField = "identifier"
)

type ItemAvailableMessage struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}
