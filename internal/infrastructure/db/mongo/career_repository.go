package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

const careersCollection = "careers"

type CareerRepository struct {
	coll *mongo.Collection
}

func NewCareerRepository(db *mongo.Database) *CareerRepository {
	return &CareerRepository{coll: db.Collection(careersCollection)}
}

type careerDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Faculty string             `bson:"faculty"`
	Code    int64              `bson:"code"`
}

func (d careerDoc) toDomain() *domain.Career {
	return &domain.Career{ID: d.ID.Hex(), Name: d.Name, Faculty: d.Faculty, Code: d.Code}
}

func (r *CareerRepository) Create(ctx context.Context, c *domain.Career) (*domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := careerDoc{Name: c.Name, Faculty: c.Faculty, Code: c.Code}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert career: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CareerRepository) FindByID(ctx context.Context, id string) (*domain.Career, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc careerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, fmt.Errorf("find career: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CareerRepository) Update(ctx context.Context, c *domain.Career) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":    c.Name,
		"faculty": c.Faculty,
		"code":    c.Code,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update career: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCareerNotFound
	}
	return nil
}

func (r *CareerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCareerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCareerNotFound
	}
	return nil
}

func (r *CareerRepository) List(ctx context.Context) ([]*domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer cursor.Close(ctx)

	var careers []*domain.Career
	for cursor.Next(ctx) {
		var doc careerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode career: %w", err)
		}
		careers = append(careers, doc.toDomain())
	}
	return careers, cursor.Err()
}
