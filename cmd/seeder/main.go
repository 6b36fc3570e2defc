package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/mahjong-rating/internal/database"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/spf13/cobra"
)

var (
	numGames   int
	numPlayers int
	batchSize  int
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Fill a database with random but valid games",
	Long: `Inserts random games whose scores sum to 100000. Connects to Turso when
TURSO_PRIMARY_URL is set, otherwise to the local DB_NAME file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVar(&numGames, "games", 1000, "Number of games to insert")
	rootCmd.Flags().IntVar(&numPlayers, "players", 8, "Number of distinct players, at least 4")
	rootCmd.Flags().IntVar(&batchSize, "batch", 100, "Games per transaction")
	rootCmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
}

// Simplified config loading for the script
func loadConfig() (dbName, primaryURL, authToken string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	primaryURL = os.Getenv("TURSO_PRIMARY_URL")
	authToken = os.Getenv("TURSO_AUTH_TOKEN")
	dbName = os.Getenv("DB_NAME")
	if primaryURL == "" && dbName == "" {
		log.Fatalf("Error: set TURSO_PRIMARY_URL or DB_NAME")
	}
	return dbName, primaryURL, authToken
}

func run(ctx context.Context) error {
	if numPlayers < 4 {
		return fmt.Errorf("need at least 4 players, got %d", numPlayers)
	}
	if batchSize < 1 {
		batchSize = 1
	}
	log.Info("Starting database seeder...")
	dbName, primaryURL, authToken := loadConfig()

	db, teardown, err := database.InitDB(dbName, primaryURL, authToken)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer teardown()
	store := records.New(db)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	players := playerNames(numPlayers)

	log.Info("Preparing to insert games...", "total", numGames, "batch_size", batchSize, "players", len(players))
	startTime := time.Now()
	base := time.Now().UTC()

	batch := make([]records.Game, 0, batchSize)
	for i := 0; i < numGames; i++ {
		playedAt := base.Add(-time.Duration(numGames-i) * time.Hour)
		batch = append(batch, randomGame(rng, players, playedAt))

		if len(batch) == batchSize || i+1 == numGames {
			if _, err := store.CreateGames(ctx, batch); err != nil {
				return fmt.Errorf("failed to insert batch: %w", err)
			}
			batch = batch[:0]
			log.Info("Inserted batch", "completed", i+1, "total", numGames)
		}
	}

	log.Info("Successfully inserted all games.", "duration", time.Since(startTime))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal("Seeder failed", "error", err)
	}
}
