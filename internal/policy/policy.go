// Package policy decides which User and Item fields a caller may see.
//
// Restricted fields are visible to authenticated superusers only. For everyone
// else they are replaced with nil before a record leaves the service
// boundary, so public fields of the same record stay readable.
package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/itemgraph/internal/model"
)

// Kind names a record type that carries restrictable fields.
type Kind string

// Field names a restrictable field of a Kind, as exposed to clients.
type Field string

const (
	KindUser Kind = "User"
	KindItem Kind = "Item"
)

const (
	FieldUserName           Field = "name"
	FieldUserEmail          Field = "email"
	FieldUserHashedPassword Field = "hashedPassword"
	FieldUserIsActive       Field = "isActive"
	FieldUserIsSuperuser    Field = "isSuperuser"

	FieldItemTitle       Field = "title"
	FieldItemDescription Field = "description"
	FieldItemPostedOn    Field = "postedOn"
	FieldItemOwner       Field = "owner"
)

var knownFields = map[Kind][]Field{
	KindUser: {FieldUserName, FieldUserEmail, FieldUserHashedPassword, FieldUserIsActive, FieldUserIsSuperuser},
	KindItem: {FieldItemTitle, FieldItemDescription, FieldItemPostedOn, FieldItemOwner},
}

// DefaultRestrictions hides credentials and contact data of users.
func DefaultRestrictions() map[Kind][]Field {
	return map[Kind][]Field{
		KindUser: {FieldUserEmail, FieldUserHashedPassword},
	}
}

// Policy holds the superuser-only fields per Kind. It is immutable after New.
type Policy struct {
	restricted map[Kind]map[Field]struct{}
}

// New validates restricted against the known fields of each kind.
func New(restricted map[Kind][]Field) (*Policy, error) {
	p := &Policy{restricted: make(map[Kind]map[Field]struct{}, len(restricted))}
	for kind, fields := range restricted {
		known, ok := knownFields[kind]
		if !ok {
			return nil, fmt.Errorf("unknown record kind %q", kind)
		}
		set := make(map[Field]struct{}, len(fields))
		for _, f := range fields {
			if !contains(known, f) {
				return nil, fmt.Errorf("unknown field %q for kind %s", f, kind)
			}
			set[f] = struct{}{}
		}
		p.restricted[kind] = set
	}
	return p, nil
}

// Default returns a Policy with DefaultRestrictions.
func Default() *Policy {
	p, err := New(DefaultRestrictions())
	if err != nil {
		panic(err)
	}
	return p
}

// FromNames builds a Policy from field names as they appear in configuration.
// Blank names are ignored.
func FromNames(userFields, itemFields []string) (*Policy, error) {
	return New(map[Kind][]Field{
		KindUser: toFields(userFields),
		KindItem: toFields(itemFields),
	})
}

func toFields(names []string) []Field {
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			fields = append(fields, Field(n))
		}
	}
	return fields
}

// Restricted reports whether field of kind is superuser-only.
func (p *Policy) Restricted(kind Kind, field Field) bool {
	_, ok := p.restricted[kind][field]
	return ok
}

// Visible reports whether the caller may see field of kind.
func (p *Policy) Visible(auth model.Auth, kind Kind, field Field) bool {
	return auth.IsSuperuser() || !p.Restricted(kind, field)
}

// UserView is a User as exposed to a caller. Nil means "no value".
type UserView struct {
	ID             int64
	Name           *string
	Email          *string
	HashedPassword *string
	IsActive       *bool
	IsSuperuser    *bool
}

// ItemView is an Item as exposed to a caller. Nil means "no value".
// A nil OwnerID hides the owner relation.
type ItemView struct {
	ID          int64
	Title       *string
	Description *string
	PostedOn    *time.Time
	OwnerID     *int64
}

// RedactUser builds the caller's view of u.
func (p *Policy) RedactUser(auth model.Auth, u model.User) UserView {
	v := UserView{ID: u.ID}
	if p.Visible(auth, KindUser, FieldUserName) {
		v.Name = ptr(u.Name)
	}
	if p.Visible(auth, KindUser, FieldUserEmail) {
		v.Email = ptr(u.Email)
	}
	if p.Visible(auth, KindUser, FieldUserHashedPassword) {
		v.HashedPassword = ptr(u.HashedPassword)
	}
	if p.Visible(auth, KindUser, FieldUserIsActive) {
		v.IsActive = ptr(u.IsActive)
	}
	if p.Visible(auth, KindUser, FieldUserIsSuperuser) {
		v.IsSuperuser = ptr(u.IsSuperuser)
	}
	return v
}

// RedactItem builds the caller's view of it.
func (p *Policy) RedactItem(auth model.Auth, it model.Item) ItemView {
	v := ItemView{ID: it.ID}
	if p.Visible(auth, KindItem, FieldItemTitle) && it.Title != nil {
		v.Title = ptr(*it.Title)
	}
	if p.Visible(auth, KindItem, FieldItemDescription) && it.Description != nil {
		v.Description = ptr(*it.Description)
	}
	if p.Visible(auth, KindItem, FieldItemPostedOn) {
		v.PostedOn = ptr(it.PostedOn)
	}
	if p.Visible(auth, KindItem, FieldItemOwner) {
		v.OwnerID = ptr(it.OwnerID)
	}
	return v
}

// RedactUsers applies RedactUser to every user.
func (p *Policy) RedactUsers(auth model.Auth, users []model.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, p.RedactUser(auth, u))
	}
	return views
}

// RedactItems applies RedactItem to every item.
func (p *Policy) RedactItems(auth model.Auth, items []model.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, p.RedactItem(auth, it))
	}
	return views
}

func ptr[T any](v T) *T {
	return &v
}

func contains(fields []Field, f Field) bool {
	for _, known := range fields {
		if known == f {
			return true
		}
	}
	return false
}
