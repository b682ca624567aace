package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"golang.org/x/crypto/bcrypt"

	"github.com/altplay/altplay/internal/insights"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

type seedUser struct {
	id    string
	name  string
	email string
	role  string
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	// All demo accounts share one password so the hash is computed once.
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %s", err)
	}

	players := []seedUser{
		{id: "seed-player-1", name: "Seeder Player A", email: "player-a@seed.local", role: "player"},
		{id: "seed-player-2", name: "Seeder Player B", email: "player-b@seed.local", role: "player"},
		{id: "seed-player-3", name: "Seeder Player C", email: "player-c@seed.local", role: "player"},
	}
	investors := []seedUser{
		{id: "seed-investor-1", name: "Seeder Investor X", email: "investor-x@seed.local", role: "investor"},
		{id: "seed-investor-2", name: "Seeder Investor Y", email: "investor-y@seed.local", role: "investor"},
	}
	admin := seedUser{id: "seed-admin-1", name: "Seeder Admin", email: "admin@seed.local", role: "admin"}

	now := time.Now().UnixMilli()
	for _, u := range append(append(players, investors...), admin) {
		_, err := db.Exec("INSERT OR IGNORE INTO users (id, name, email, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			u.id, u.name, u.email, u.role, string(hash), now)
		if err != nil {
			log.Fatalf("Failed to insert dummy user %s: %s", u.name, err)
		}
	}
	log.Info("Ensured dummy users exist.")

	profileIDs := make(map[string]string, len(players))
	positions := []string{"Forward", "Midfielder", "Defender"}
	for i, p := range players {
		profileID := fmt.Sprintf("seed-profile-%d", i+1)
		profileIDs[p.id] = profileID
		_, err := db.Exec(`INSERT OR IGNORE INTO players (id, user_id, full_name, dob, nationality, city, phone, email, gender,
			primary_position, secondary_position, height, weight, current_club, experience, jersey_number,
			upi_link, youtube_url, investment_purpose, profile_photo, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			profileID, p.id, p.name, "2000-01-15", "India", "Bengaluru", "", p.email, "",
			positions[i%len(positions)], "", "178", "72", "Seeded FC", "5 years", fmt.Sprintf("%d", 7+i),
			p.name+"@upi", "", "Training and travel costs", "", now)
		if err != nil {
			log.Fatalf("Failed to insert dummy player profile %s: %s", p.name, err)
		}
	}
	log.Info("Ensured dummy player profiles exist.")

	const batchSize = 100
	const numInvestments = 5000

	log.Info("Preparing to insert dummy investments...", "total", numInvestments, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*6)

	for i := 0; i < numInvestments; i++ {
		investor := investors[rand.Intn(len(investors))]
		player := players[rand.Intn(len(players))]
		investedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			investor.id,
			profileIDs[player.id],
			player.name,
			float64(rand.Intn(49)+1)*100,
			investedAt.UnixMilli(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numInvestments {
			stmt := fmt.Sprintf(`
				INSERT INTO investments (id, investor_id, player_id, player_name, amount, invested_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*6)
			log.Info("Inserted batch", "completed", i+1, "total", numInvestments)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	// A short snapshot history per player so charts have something to draw.
	for _, p := range players {
		goals := float64(rand.Intn(5))
		assists := float64(rand.Intn(5))
		for month := 0; month < 6; month++ {
			createdAt := time.Now().AddDate(0, month-6, 0).UnixMilli()
			var changesJSON any
			if month > 0 {
				changes := map[string]insights.FieldChange{
					"goalsScored": {Old: goals, New: goals + 1, Timestamp: createdAt},
				}
				raw, _ := json.Marshal(changes)
				changesJSON = string(raw)
				goals++
			}
			_, err := db.Exec(`INSERT INTO performance_insights
				(id, user_id, season_year, club_team, league_tournament, goals_scored, assists, changes_json, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), p.id, "2025", "Seeded FC", "Seeded League", goals, assists, changesJSON, createdAt, createdAt)
			if err != nil {
				log.Fatalf("Failed to insert dummy snapshot for %s: %s", p.name, err)
			}
		}
	}
	log.Info("Inserted dummy performance snapshots.")

	duration := time.Since(startTime)
	log.Info("Successfully seeded the database.", "duration", duration)
}
