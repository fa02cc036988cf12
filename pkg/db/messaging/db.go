package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/e5hapiro/chevra-guest-form/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_SENT_EMAILS = "sent-emails"
)

type MessagingDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewMessagingDBService(configs db.DBConfig) (*MessagingDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	messagingDBSc := &MessagingDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := messagingDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for messaging DB: ", slog.String("error", err.Error()))
		}
	}

	return messagingDBSc, nil
}

func (dbService *MessagingDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_messageDB"
}

func (dbService *MessagingDBService) collectionSentEmails(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SENT_EMAILS)
}

func (dbService *MessagingDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *MessagingDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for messaging DB")
	for _, instanceID := range dbService.InstanceIDs {
		dbService.CreateDefaultIndexesForSentEmailsCollection(instanceID)
	}
	return nil
}

func (dbService *MessagingDBService) Close() {
	ctx, cancel := dbService.getContext()
	defer cancel()
	if err := dbService.DBClient.Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting messaging DB", slog.String("error", err.Error()))
	}
}
