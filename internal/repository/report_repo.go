package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vantageassess/internal/model"
)

// ReportRepo archives finished assessments
type ReportRepo interface {
	Save(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id string) (*model.Report, error)
	GetBySession(ctx context.Context, sessionID string) (*model.Report, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.Report, error)
}

type reportRepo struct {
	reports *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	repo := &reportRepo{
		reports: db.Collection("reports"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *reportRepo) ensureIndexes(ctx context.Context) {
	r.createIndex(ctx, bson.D{{Key: "sessionId", Value: 1}}, false)
	r.createIndex(ctx, bson.D{{Key: "createdAt", Value: -1}}, false)
}

func (r *reportRepo) createIndex(ctx context.Context, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := r.reports.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		log.Printf("Warning: failed to create index on %s: %v", r.reports.Name(), err)
	}
}

func (r *reportRepo) Save(ctx context.Context, report *model.Report) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.reports.ReplaceOne(ctx, bson.M{"_id": report.ID}, report, opts)
	return err
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *reportRepo) GetBySession(ctx context.Context, sessionID string) (*model.Report, error) {
	return r.findOne(ctx, bson.M{"sessionId": sessionID})
}

func (r *reportRepo) findOne(ctx context.Context, filter bson.M) (*model.Report, error) {
	var report model.Report
	err := r.reports.FindOne(ctx, filter).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.reports.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
