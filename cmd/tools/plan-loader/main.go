// cmd/tools/plan-loader/main.go
//
// Development seeder: loads plan documents from a JSON file into the plan
// collection so a local server has something to match against.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insurance-mcp/internal/common/config"
)

func main() {
	var (
		plansPath = flag.String("plans", "configs/plans.json", "Path to a JSON array of plan documents")
		drop      = flag.Bool("drop", false, "Drop the collection before loading")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	docs, err := readPlans(*plansPath)
	if err != nil {
		fmt.Printf("Error reading plans: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		fmt.Println("No plan documents to load.")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoCfg := cfg.Database.MongoDB
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoCfg.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		fmt.Printf("Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	collection := client.Database(mongoCfg.Database).Collection(mongoCfg.Collection)

	if *drop {
		if err := collection.Drop(ctx); err != nil {
			fmt.Printf("Error dropping collection: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Dropped collection %s.%s\n", mongoCfg.Database, mongoCfg.Collection)
	}

	inserts := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		inserts = append(inserts, bson.M(doc))
	}

	result, err := collection.InsertMany(ctx, inserts)
	if err != nil {
		fmt.Printf("Error inserting plans: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d plan documents into %s.%s\n",
		len(result.InsertedIDs), mongoCfg.Database, mongoCfg.Collection)
}

func readPlans(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []map[string]interface{}
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("plans file must be a JSON array of objects: %w", err)
	}
	return docs, nil
}
