// Package resolver binds the GraphQL schema to the user, item and auth services.
//
// Every User and Item object is built from a policy view of the record, so
// restricted fields come back as null for non-superusers on direct queries,
// relations and mutation payloads alike.
package resolver

import (
	"context"
	_ "embed"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/policy"
)

//go:embed schema.graphql
var schemaSDL string

// maxQueryDepth bounds nested user/item traversals.
const maxQueryDepth = 12

// LoginObserver counts login results.
type LoginObserver interface {
	ObserveLogin(result string)
}

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	authService    model.AuthService
	userService    model.UserService
	itemService    model.ItemService
	policy         *policy.Policy
	contextManager model.ContextManager
	observer       LoginObserver
	logger         *logger.Logger
}

func New(
	authService model.AuthService,
	userService model.UserService,
	itemService model.ItemService,
	policy *policy.Policy,
	contextManager model.ContextManager,
	observer LoginObserver,
	logger *logger.Logger,
) *Resolver {
	return &Resolver{
		authService:    authService,
		userService:    userService,
		itemService:    itemService,
		policy:         policy,
		contextManager: contextManager,
		observer:       observer,
		logger:         logger,
	}
}

// Schema parses the schema against r. It panics if resolver and schema disagree.
func (r *Resolver) Schema() *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, r,
		graphql.MaxDepth(maxQueryDepth),
	)
}

func (r *Resolver) auth(ctx context.Context) model.Auth {
	return r.contextManager.GetAuthFromContext(ctx)
}

func (r *Resolver) newUser(auth model.Auth, u model.User) *userResolver {
	return &userResolver{root: r, auth: auth, view: r.policy.RedactUser(auth, u)}
}

func (r *Resolver) newItem(auth model.Auth, it model.Item) *itemResolver {
	return &itemResolver{root: r, auth: auth, view: r.policy.RedactItem(auth, it)}
}

func (r *Resolver) newUsers(auth model.Auth, users []model.User) []*userResolver {
	out := make([]*userResolver, 0, len(users))
	for _, view := range r.policy.RedactUsers(auth, users) {
		out = append(out, &userResolver{root: r, auth: auth, view: view})
	}
	return out
}

func (r *Resolver) newItems(auth model.Auth, items []model.Item) []*itemResolver {
	out := make([]*itemResolver, 0, len(items))
	for _, view := range r.policy.RedactItems(auth, items) {
		out = append(out, &itemResolver{root: r, auth: auth, view: view})
	}
	return out
}
