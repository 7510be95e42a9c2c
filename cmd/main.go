package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/goserg/leaguesim/internal/config"
	"github.com/goserg/leaguesim/internal/csvload"
	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/logger"
	"github.com/goserg/leaguesim/internal/service"
	"github.com/goserg/leaguesim/internal/stats"
	"github.com/goserg/leaguesim/internal/view"
	"github.com/goserg/leaguesim/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/sim.toml", "path to the config file")
	matchesPath := flag.String("matches", "", "csv file with historical matches; when set, team strengths are estimated from it")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	seasons := service.New(cfg.Simulation, rng, log)

	teams, err := loadTeams(seasons, cfg, rng, *matchesPath)
	if err != nil {
		return err
	}
	log.WithField("teams", len(teams)).Info("season starting")

	season, err := seasons.Run(teams)
	if err != nil {
		return err
	}

	for i, round := range season.Tournament.Rounds {
		fmt.Printf("ROUND %d\n%s\n\n", i+1, view.Round(round))
	}
	fmt.Println(view.Table(season.FinalTable()))

	corpus, err := stats.NewMatchStats(season.Tournament.Matches())
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", view.Stats(corpus))

	ratings, err := seasons.Ratings(teams, season.Tournament.Matches())
	if err != nil {
		return err
	}
	fmt.Printf("\nESTIMATED RATINGS\n%s\n", view.Ratings(ratings))

	if !cfg.Server.Enabled {
		return nil
	}
	server, err := web.New(season, ratings, cfg.Server, log)
	if err != nil {
		return err
	}
	log.WithField("port", cfg.Server.Port).Info("serving season")
	return server.Serve()
}

// loadTeams reads the historical corpus and estimates team strengths from
// it, or generates random teams when no corpus is given.
func loadTeams(seasons *service.SeasonService, cfg config.Config, rng *rand.Rand, matchesPath string) ([]domain.Team, error) {
	if matchesPath == "" {
		return domain.GenerateTeams(rng, cfg.Teams.Names, cfg.Teams.MinStrength, cfg.Teams.MaxStrength), nil
	}
	file, err := os.Open(matchesPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	matches, teams, err := csvload.ReadMatches(file, csvload.Columns{}, seasons.Transform())
	if err != nil {
		return nil, err
	}
	return seasons.Ratings(teams, matches)
}
