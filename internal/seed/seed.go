// Package seed loads the demo dataset: three users with different roles and four items.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
)

type demoItem struct {
	title       string
	description string
	postedOn    time.Time
}

type demoUser struct {
	name        string
	email       string
	password    string
	isActive    bool
	isSuperuser bool
	items       []demoItem
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var demoUsers = []demoUser{
	{
		name: "Active Harry", email: "active.harry@example.com", password: "asdf1",
		isActive: true,
		items: []demoItem{
			{title: "Harry's shampoo", description: "Smells good", postedOn: date(2000, time.January, 1)},
			{title: "Harry's hairbrush", description: "For hairy situations", postedOn: date(2000, time.December, 11)},
		},
	},
	{
		name: "Inactive Joe", email: "inactive.joe@example.com", password: "asdf2",
		items: []demoItem{
			{title: "Joe's pen", description: "Long forgotten", postedOn: date(2001, time.July, 1)},
		},
	},
	{
		name: "Super Susi", email: "super.susi@example.com", password: "asdf3",
		isActive: true, isSuperuser: true,
		items: []demoItem{
			{title: "Susi's apple", description: "Shouldn't eat anymore", postedOn: date(2001, time.September, 1)},
		},
	},
}

// Result counts the records created by Run.
type Result struct {
	Users int
	Items int
}

// Run creates every demo user that does not exist yet, together with its items,
// in one transaction. Running it again is a no-op.
func Run(ctx context.Context, store model.Store, hasher model.Hasher, logger *logger.Logger) (Result, error) {
	var res Result

	err := store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		for _, du := range demoUsers {
			_, err := tx.Users().GetByEmail(ctx, du.email)
			if err == nil {
				logger.Debug("Seed: user exists, skipping", "email", du.email)
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("failed to get user by email: %w", err)
			}

			hash, err := hasher.Hash(du.password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			user, err := tx.Users().Create(ctx, model.User{
				Name:           du.name,
				Email:          du.email,
				HashedPassword: hash,
				IsActive:       du.isActive,
				IsSuperuser:    du.isSuperuser,
			})
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", du.email, err)
			}
			res.Users++

			for _, di := range du.items {
				title, description := di.title, di.description
				if _, err := tx.Items().Create(ctx, model.Item{
					Title:       &title,
					Description: &description,
					PostedOn:    di.postedOn,
					OwnerID:     user.ID,
				}); err != nil {
					return fmt.Errorf("failed to create item %q: %w", di.title, err)
				}
				res.Items++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("Seed: demo data loaded",
		"users", res.Users,
		"items", res.Items)

	return res, nil
}
