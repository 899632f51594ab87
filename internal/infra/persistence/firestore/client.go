// Package firestore implements the store gateways on Cloud Firestore. The
// conditional writes run inside Firestore transactions and the watches ride
// on Firestore snapshot listeners.
package firestore

import (
	"context"

	"quickbite/config"
	"quickbite/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	ordersCollection     = "orders"
	menuItemsCollection  = "menu_items"
	usersCollection      = "users"
	challengesCollection = "phone_challenges"
)

// NewClient connects to the configured Firestore project.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if cfg.Firestore == nil {
		return nil, errors.New("firestore config is required")
	}

	opts := make([]option.ClientOption, 0, 1)
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}

	return client, nil
}
