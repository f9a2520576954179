package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// AssociationRepository is a generic many-to-many join store. Each instance
// is bound to one collection and one pair of field names, so the same code
// backs both the applicant-benefit and the application-benefit relations.
type AssociationRepository struct {
	coll       *mongo.Collection
	leftField  string
	rightField string
}

func NewAssociationRepository(db *mongo.Database, collection, leftField, rightField string) *AssociationRepository {
	return &AssociationRepository{
		coll:       db.Collection(collection),
		leftField:  leftField,
		rightField: rightField,
	}
}

// NewApplicantBenefitRepository links applicants to benefits.
func NewApplicantBenefitRepository(db *mongo.Database) *AssociationRepository {
	return NewAssociationRepository(db, "applicant_benefits", "applicant_id", "benefit_id")
}

// NewApplicationBenefitRepository links applications to benefits.
func NewApplicationBenefitRepository(db *mongo.Database) *AssociationRepository {
	return NewAssociationRepository(db, "application_benefits", "application_id", "benefit_id")
}

var _ ports.AssociationRepository = (*AssociationRepository)(nil)

func (r *AssociationRepository) Insert(ctx context.Context, leftID, rightID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, bson.M{r.leftField: leftID, r.rightField: rightID})
	if err != nil {
		return fmt.Errorf("insert %s row: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *AssociationRepository) DeleteOnePair(ctx context.Context, leftID, rightID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// DeleteOne on purpose: duplicate pairs are legal and each call removes
	// a single row. Deleting an absent pair is not an error.
	_, err := r.coll.DeleteOne(ctx, bson.M{r.leftField: leftID, r.rightField: rightID})
	if err != nil {
		return fmt.Errorf("delete %s pair: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *AssociationRepository) DeleteByLeft(ctx context.Context, leftID string) error {
	return r.deleteAll(ctx, bson.M{r.leftField: leftID})
}

func (r *AssociationRepository) DeleteByRight(ctx context.Context, rightID string) error {
	return r.deleteAll(ctx, bson.M{r.rightField: rightID})
}

func (r *AssociationRepository) deleteAll(ctx context.Context, filter bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("delete %s rows: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *AssociationRepository) ListRightIDs(ctx context.Context, leftID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{r.leftField: leftID})
	if err != nil {
		return nil, fmt.Errorf("list %s rows: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", r.coll.Name(), err)
		}
		if id, ok := doc[r.rightField].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, cursor.Err()
}
