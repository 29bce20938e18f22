package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type StoreOptions struct {
	URL       string
	Database  string
	ConnectTO time.Duration
	PingTO    time.Duration
}

func OpenStore(ctx context.Context, opt StoreOptions) (*store.Mongo, error) {
	if opt.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().
		ApplyURI(opt.URL).
		SetServerSelectionTimeout(opt.ConnectTO))
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store ping: %w", err)
	}

	return store.NewMongo(client, opt.Database), nil
}
