package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

const roleAssignmentsCollection = "role_assignments"

// RoleAssignmentRepository stores one row per user. Reassigning a role
// replaces the existing row rather than adding another.
type RoleAssignmentRepository struct {
	coll *mongo.Collection
}

func NewRoleAssignmentRepository(db *mongo.Database) *RoleAssignmentRepository {
	return &RoleAssignmentRepository{coll: db.Collection(roleAssignmentsCollection)}
}

type roleAssignmentDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"user_id"`
	Username string             `bson:"username"`
	RoleID   string             `bson:"role_id"`
}

func (d roleAssignmentDoc) toDomain() *domain.RoleAssignment {
	return &domain.RoleAssignment{
		ID:       d.ID.Hex(),
		UserID:   d.UserID,
		Username: d.Username,
		RoleID:   d.RoleID,
	}
}

func (r *RoleAssignmentRepository) Upsert(ctx context.Context, userID, username, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		roleAssignmentDoc{UserID: userID, Username: username, RoleID: roleID},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert role assignment: %w", err)
	}
	return nil
}

func (r *RoleAssignmentRepository) FindByUsername(ctx context.Context, username string) (*domain.RoleAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roleAssignmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role assignment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoleAssignmentRepository) DeleteByUsername(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("delete role assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

// EnsureIndexes keeps the one-assignment-per-user invariant at the store
// level and backs the username lookup used on every login.
func (r *RoleAssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
		},
	})
	return err
}
