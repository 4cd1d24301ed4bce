package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// ConsumptionLogDocument is the stored form of an audit entry.
type ConsumptionLogDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"request_id,omitempty"`
	PantryID   string                 `bson:"pantry_id,omitempty"`
	ActionType string                 `bson:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

// ConsumptionLogsRepository stores completion audit entries.
type ConsumptionLogsRepository struct {
	collection *mongo.Collection
}

// NewConsumptionLogsRepository creates a new audit log repository.
func NewConsumptionLogsRepository(db *MongoDB) *ConsumptionLogsRepository {
	return &ConsumptionLogsRepository{collection: db.ConsumptionLogs}
}

// Create stores a single audit entry.
func (r *ConsumptionLogsRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	doc := toDocument(entry)
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Query retrieves audit entries matching the options, newest first.
func (r *ConsumptionLogsRepository) Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error) {
	filter := buildAuditFilter(opts)

	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []ConsumptionLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = model.AuditEntry{
			ID:         doc.ID,
			Timestamp:  doc.Timestamp,
			Level:      doc.Level,
			Message:    doc.Message,
			RequestID:  doc.RequestID,
			PantryID:   doc.PantryID,
			ActionType: doc.ActionType,
			Fields:     doc.Fields,
		}
	}
	return entries, nil
}

// Count returns the number of audit entries matching the options.
func (r *ConsumptionLogsRepository) Count(ctx context.Context, opts model.AuditQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildAuditFilter(opts))
}

func toDocument(entry *model.AuditEntry) *ConsumptionLogDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return &ConsumptionLogDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		PantryID:   entry.PantryID,
		ActionType: entry.ActionType,
		Fields:     entry.Fields,
	}
}

func buildAuditFilter(opts model.AuditQueryOptions) bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.PantryID != "" {
		filter["pantry_id"] = opts.PantryID
	}
	if opts.ActionType != "" {
		filter["action_type"] = opts.ActionType
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}
