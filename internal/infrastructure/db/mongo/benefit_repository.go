package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

const benefitsCollection = "benefits"

type BenefitRepository struct {
	coll *mongo.Collection
}

func NewBenefitRepository(db *mongo.Database) *BenefitRepository {
	return &BenefitRepository{coll: db.Collection(benefitsCollection)}
}

type benefitDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Code int64              `bson:"code"`
}

func (d benefitDoc) toDomain() *domain.Benefit {
	return &domain.Benefit{ID: d.ID.Hex(), Name: d.Name, Code: d.Code}
}

func (r *BenefitRepository) Create(ctx context.Context, b *domain.Benefit) (*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := benefitDoc{Name: b.Name, Code: b.Code}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBenefitExists
		}
		return nil, fmt.Errorf("insert benefit: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BenefitRepository) FindByID(ctx context.Context, id string) (*domain.Benefit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBenefitNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BenefitRepository) FindByName(ctx context.Context, name string) (*domain.Benefit, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *BenefitRepository) findOne(ctx context.Context, filter bson.M) (*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc benefitDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBenefitNotFound
		}
		return nil, fmt.Errorf("find benefit: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BenefitRepository) Update(ctx context.Context, b *domain.Benefit) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return domain.ErrBenefitNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": b.Name, "code": b.Code}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBenefitExists
		}
		return fmt.Errorf("update benefit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBenefitNotFound
	}
	return nil
}

func (r *BenefitRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBenefitNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete benefit: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBenefitNotFound
	}
	return nil
}

func (r *BenefitRepository) List(ctx context.Context) ([]*domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	defer cursor.Close(ctx)

	var benefits []*domain.Benefit
	for cursor.Next(ctx) {
		var doc benefitDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode benefit: %w", err)
		}
		benefits = append(benefits, doc.toDomain())
	}
	return benefits, cursor.Err()
}

// EnsureIndexes enforces the unique benefit name.
func (r *BenefitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
