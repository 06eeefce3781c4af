package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/vanesatov/HotelesApi/internal/database"
	"github.com/vanesatov/HotelesApi/internal/hotels"
	"github.com/vanesatov/HotelesApi/internal/models"
	"github.com/vanesatov/HotelesApi/pkg/logger"
)

// seed loads hotel documents from a JSON array file into the "hoteles"
// collection. Existing ids are overwritten (Save is an upsert), so the
// command can be re-run safely.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	var file string
	flag.StringVar(&file, "file", "hoteles.json", "path to a JSON array of hotel documents")
	flag.Parse()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		logger.Fatalf("MONGODB_URI is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "hoteles"
	}

	b, err := os.ReadFile(file)
	if err != nil {
		logger.Fatalf("read %s: %v", file, err)
	}
	var hs []models.Hotel
	if err := json.Unmarshal(b, &hs); err != nil {
		logger.Fatalf("parse %s: %v", file, err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 10*time.Second)
	if err != nil {
		logger.Fatalf("connect: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := hotels.NewMongoRepository(client.Database(dbName).Collection("hoteles"))
	for i := range hs {
		if err := repo.Save(ctx, &hs[i]); err != nil {
			logger.Fatalf("save hotel %q: %v", hs[i].Name, err)
		}
	}
	logger.Infof("seeded %d hotels into %s", len(hs), dbName)
}
