package messaging

import (
	"log/slog"
	"time"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var indexesForSentEmailsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "messageType", Value: 1},
			{Key: "sentAt", Value: 1},
		},
		Options: options.Index().SetName("messageType_sentAt_1"),
	},
}

func (dbService *MessagingDBService) CreateDefaultIndexesForSentEmailsCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSentEmails(instanceID).Indexes().CreateMany(ctx, indexesForSentEmailsCollection)
	if err != nil {
		slog.Error("Error creating index for sent emails", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
	}
}

// AddToSentEmails stores an audit entry of a delivered email. Content and
// recipients are not kept.
func (dbService *MessagingDBService) AddToSentEmails(instanceID string, email messagingTypes.OutgoingEmail) (messagingTypes.OutgoingEmail, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()
	email.Content = ""
	email.SentAt = time.Now().UTC()
	email.To = []string{}

	email.ID = primitive.NilObjectID
	res, err := dbService.collectionSentEmails(instanceID).InsertOne(ctx, email)
	if err != nil {
		return email, err
	}
	email.ID = res.InsertedID.(primitive.ObjectID)
	return email, nil
}
