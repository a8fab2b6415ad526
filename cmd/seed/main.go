package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"time"

	"github.com/projecthelena/lottostats/internal/config"
	"github.com/projecthelena/lottostats/internal/db"
	"github.com/projecthelena/lottostats/internal/logging"
)

// seed fills a development database with synthetic weekly draws so the API
// has something to serve. It never runs against production data.
func main() {
	count := flag.Int("count", 104, "number of draws to generate")
	until := flag.String("until", time.Now().UTC().Format("2006-01-02"), "date of the most recent draw")
	seed := flag.Uint64("seed", 1, "random seed, for reproducible fixtures")
	flag.Parse()

	logger := logging.New("seed")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	last, err := db.ParseDate(*until)
	if err != nil {
		logger.Fatalf("invalid -until date: %v", err)
	}

	store, err := db.NewStore(db.ConfigFrom(cfg))
	if err != nil {
		logger.Fatalf("Failed to init database: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	draws := generateDraws(rand.New(rand.NewPCG(*seed, *seed)), last, *count)
	if err := store.InsertDraws(ctx, draws...); err != nil {
		logger.Fatalf("Failed to insert draws: %v", err)
	}
	logger.WithField("count", len(draws)).Info("Seeded draws")
}

// generateDraws returns n draws one week apart ending at last. Each draw has
// eight distinct numbers, the last of which is the bonus.
func generateDraws(r *rand.Rand, last db.Date, n int) []db.Draw {
	draws := make([]db.Draw, 0, n)
	for i := n - 1; i >= 0; i-- {
		perm := r.Perm(db.MaxNumber)
		nums := [7]int{}
		for j := range nums {
			nums[j] = perm[j] + db.MinNumber
		}
		date := db.Date{Time: last.AddDate(0, 0, -7*i)}
		draws = append(draws, db.Draw{
			DrawDate:    date,
			Number1:     nums[0],
			Number2:     nums[1],
			Number3:     nums[2],
			Number4:     nums[3],
			Number5:     nums[4],
			Number6:     nums[5],
			Number7:     nums[6],
			BonusNumber: perm[7] + db.MinNumber,
		})
	}
	return draws
}
