// Package mongo stores quiz results in MongoDB. Results are self-contained
// documents, so they can live apart from the relational user data.
package mongo

import (
	"context"
	"fmt"
	"time"

	"fitplan/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quizCollection = "quiz_results"

// Store implements domain.QuizResultRepository on a MongoDB database.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ domain.QuizResultRepository = (*Store)(nil)

// Connect dials MongoDB, pings it and ensures the lookup index exists.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(database).Collection(quizCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Store{client: client, coll: coll}, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type quizDoc struct {
	ID                string      `bson:"_id"`
	UserID            int64       `bson:"user_id"`
	FitnessLevel      string      `bson:"fitness_level"`
	WorkoutPreference string      `bson:"workout_preference"`
	DietPreference    string      `bson:"diet_preference"`
	AvailableDays     int         `bson:"available_days"`
	DailyCalories     int         `bson:"daily_calories"`
	Plan              domain.Plan `bson:"recommended_plan"`
	CreatedAt         time.Time   `bson:"created_at"`
}

func toDoc(r domain.QuizResult) quizDoc {
	return quizDoc{
		ID:                r.ID,
		UserID:            r.UserID,
		FitnessLevel:      string(r.FitnessLevel),
		WorkoutPreference: string(r.WorkoutPreference),
		DietPreference:    string(r.DietPreference),
		AvailableDays:     r.AvailableDays,
		DailyCalories:     r.DailyCalories,
		Plan:              r.Plan,
		CreatedAt:         r.CreatedAt.UTC(),
	}
}

func (d quizDoc) toDomain() domain.QuizResult {
	return domain.QuizResult{
		ID:                d.ID,
		UserID:            d.UserID,
		FitnessLevel:      domain.FitnessLevel(d.FitnessLevel),
		WorkoutPreference: domain.WorkoutPreference(d.WorkoutPreference),
		DietPreference:    domain.DietPreference(d.DietPreference),
		AvailableDays:     d.AvailableDays,
		DailyCalories:     d.DailyCalories,
		Plan:              d.Plan,
		CreatedAt:         d.CreatedAt,
	}
}

// SaveQuizResult inserts a quiz result document.
func (s *Store) SaveQuizResult(ctx context.Context, r domain.QuizResult) error {
	_, err := s.coll.InsertOne(ctx, toDoc(r))
	return err
}

// LatestQuizResult returns the newest result for the user, or nil.
func (s *Store) LatestQuizResult(ctx context.Context, userID int64) (*domain.QuizResult, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var d quizDoc
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r := d.toDomain()
	return &r, nil
}

// ListQuizResults returns up to limit results, newest first.
func (s *Store) ListQuizResults(ctx context.Context, userID int64, limit int) ([]domain.QuizResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []quizDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.QuizResult, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
