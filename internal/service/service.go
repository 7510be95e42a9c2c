// Package service wires the scheduler, the simulator, the standings table
// and the estimator into complete season runs.
package service

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/goserg/leaguesim/internal/config"
	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/rating"
	"github.com/goserg/leaguesim/internal/schedule"
	"github.com/goserg/leaguesim/internal/sim"
	"github.com/goserg/leaguesim/internal/standings"
	"github.com/goserg/leaguesim/internal/xg"
)

// Season is a fully played tournament together with one standings snapshot
// per round. Standings[0] is the zero table, Standings[i] the table after
// round i.
type Season struct {
	Tournament domain.Tournament
	Standings  []standings.Table
}

func (s Season) FinalTable() standings.Table {
	return s.Standings[len(s.Standings)-1]
}

type SeasonService struct {
	cfg       config.Simulation
	transform xg.Transform
	scheduler *schedule.Scheduler
	simulator *sim.Simulator
	estimator rating.Estimator
	log       *logrus.Logger
}

// New builds a season service around a single random source. Callers that
// want parallel what-if runs must create one service per independent stream.
func New(cfg config.Simulation, rng *rand.Rand, log *logrus.Logger) *SeasonService {
	transform := xg.Transform{
		Constant: cfg.XGConstant,
		Factor:   cfg.XGFactor,
	}
	return &SeasonService{
		cfg:       cfg,
		transform: transform,
		scheduler: schedule.New(rng, transform),
		simulator: sim.New(rng),
		estimator: rating.NewEstimator(transform),
		log:       log,
	}
}

func (s *SeasonService) Transform() xg.Transform {
	return s.transform
}

// Schedule produces the fixture list for the configured number of
// round-robin iterations.
func (s *SeasonService) Schedule(teams []domain.Team) (domain.Tournament, error) {
	return s.scheduler.Tournament(teams, s.cfg.Iterations)
}

// Play simulates a scheduled tournament round by round, folding every
// round's results into the standings as it goes.
func (s *SeasonService) Play(tournament domain.Tournament, teams []domain.Team) (Season, error) {
	table := standings.NewWithRules(teams, standings.DefaultTieBreak(), s.cfg.WinPoints, s.cfg.DrawPoints)
	season := Season{Standings: []standings.Table{table}}
	for i, round := range tournament.Rounds {
		played, err := s.simulator.Round(round)
		if err != nil {
			return Season{}, err
		}
		table, err = table.Update(played.Matches)
		if err != nil {
			return Season{}, err
		}
		season.Tournament.Rounds = append(season.Tournament.Rounds, played)
		season.Standings = append(season.Standings, table)
		s.log.WithFields(logrus.Fields{
			"round":   i + 1,
			"matches": len(played.Matches),
		}).Debug("round played")
	}
	return season, nil
}

// Run schedules and plays a full season.
func (s *SeasonService) Run(teams []domain.Team) (Season, error) {
	tournament, err := s.Schedule(teams)
	if err != nil {
		return Season{}, err
	}
	return s.Play(tournament, teams)
}

// Ratings infers every team's attack/defense rating from a corpus of played
// matches.
func (s *SeasonService) Ratings(teams []domain.Team, matches []domain.Match) ([]domain.Team, error) {
	return s.estimator.EstimateAll(teams, matches)
}
