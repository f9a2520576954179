package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

const applicantsCollection = "applicants"

type ApplicantRepository struct {
	coll *mongo.Collection
}

func NewApplicantRepository(db *mongo.Database) *ApplicantRepository {
	return &ApplicantRepository{coll: db.Collection(applicantsCollection)}
}

type applicantDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Name      string             `bson:"name"`
	RUT       string             `bson:"rut"`
	CareerID  string             `bson:"career_id"`
	Address   string             `bson:"address,omitempty"`
	NEM       float64            `bson:"nem"`
	Ranking   float64            `bson:"ranking"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (d applicantDoc) toDomain() *domain.Applicant {
	return &domain.Applicant{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		RUT:       d.RUT,
		CareerID:  d.CareerID,
		Address:   d.Address,
		NEM:       d.NEM,
		Ranking:   d.Ranking,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *ApplicantRepository) Create(ctx context.Context, a *domain.Applicant) (*domain.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Unix()
	doc := applicantDoc{
		UserID:    a.UserID,
		Name:      a.Name,
		RUT:       a.RUT,
		CareerID:  a.CareerID,
		Address:   a.Address,
		NEM:       a.NEM,
		Ranking:   a.Ranking,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert applicant: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ApplicantRepository) FindByID(ctx context.Context, id string) (*domain.Applicant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicantDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicantRepository) Update(ctx context.Context, a *domain.Applicant) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       a.Name,
		"rut":        a.RUT,
		"career_id":  a.CareerID,
		"address":    a.Address,
		"nem":        a.NEM,
		"ranking":    a.Ranking,
		"updated_at": time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update applicant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicantNotFound
	}
	return nil
}

func (r *ApplicantRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete applicant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicantNotFound
	}
	return nil
}

// ListByName matches the name case-insensitively; an empty name lists all.
func (r *ApplicantRepository) ListByName(ctx context.Context, name string) ([]*domain.Applicant, error) {
	query := bson.M{}
	if name != "" {
		query["name"] = primitive.Regex{Pattern: name, Options: "i"}
	}
	return r.list(ctx, query)
}

func (r *ApplicantRepository) ListByRUT(ctx context.Context, rut string) ([]*domain.Applicant, error) {
	return r.list(ctx, bson.M{"rut": rut})
}

func (r *ApplicantRepository) list(ctx context.Context, filter bson.M) ([]*domain.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer cursor.Close(ctx)

	var applicants []*domain.Applicant
	for cursor.Next(ctx) {
		var doc applicantDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode applicant: %w", err)
		}
		applicants = append(applicants, doc.toDomain())
	}
	return applicants, cursor.Err()
}
