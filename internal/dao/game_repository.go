package dao

import (
	"context"
	"time"

	"github.com/bkuzmin/chess-game-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GameRecord is the archived form of a finished game session.
type GameRecord struct {
	GameID        string             `bson:"game_id" json:"game_id"`
	Winner        string             `bson:"winner" json:"winner"`
	Status        string             `bson:"status" json:"status"`
	Moves         []string           `bson:"moves" json:"moves"`
	MoveCount     int                `bson:"move_count" json:"move_count"`
	CapturedCount int                `bson:"captured_count" json:"captured_count"`
	StartedAt     primitive.DateTime `bson:"started_at" json:"started_at"`
	FinishedAt    primitive.DateTime `bson:"finished_at" json:"finished_at"`
}

type GameRepository interface {
	InsertGame(record GameRecord) error

	GetRecentGames(limit int64) ([]GameRecord, error)

	GetGamesBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]GameRecord, error)
}

type gameRepository struct {
	dbClient *db.GameDbClient
}

func NewGameRepository(dbClient *db.GameDbClient) GameRepository {
	return &gameRepository{dbClient}
}

func (g *gameRepository) InsertGame(record GameRecord) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	_, err := g.dbClient.GameCollection.InsertOne(ctx, record)
	return err
}

func (g *gameRepository) GetRecentGames(limit int64) ([]GameRecord, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "finished_at", Value: -1}})
	opts.SetLimit(limit)

	cur, err := g.dbClient.GameCollection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var records []GameRecord
	if err = cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *gameRepository) GetGamesBetweenDates(startTime primitive.DateTime, endTime primitive.DateTime) ([]GameRecord, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	filter := bson.D{
		{
			Key: "finished_at", Value: bson.D{
				{Key: "$gte", Value: startTime},
				{Key: "$lte", Value: endTime},
			},
		},
	}

	cur, err := g.dbClient.GameCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var records []GameRecord
	if err = cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
