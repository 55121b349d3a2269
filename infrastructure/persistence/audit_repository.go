package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"swishview/domain/model"
)

// AuditRepository records privileged admin actions into a MongoDB capped-ish
// collection. A nil client disables auditing without failing callers.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	if client == nil {
		return &AuditRepository{}
	}
	if dbName == "" {
		dbName = "swishview"
	}
	return &AuditRepository{coll: client.Database(dbName).Collection("admin_audit")}
}

func (r *AuditRepository) Record(ctx context.Context, audit *model.AdminAudit) error {
	if r.coll == nil {
		return nil
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, audit)
	return err
}
