// Package web serves a read-only view of a played season: standings,
// fixtures by round and inferred ratings.
package web

import (
	"io/fs"
	"net/http"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/leaguesim"
	"github.com/goserg/leaguesim/internal/config"
	"github.com/goserg/leaguesim/internal/domain"
	"github.com/goserg/leaguesim/internal/service"
	"github.com/goserg/leaguesim/internal/stats"
)

const (
	pathHome    = "/"
	pathRounds  = "/rounds"
	pathRatings = "/ratings"
	pathStats   = "/stats"
)

type Server struct {
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Logger
	season  service.Season
	ratings []domain.Team
}

func New(season service.Season, ratings []domain.Team, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		cfg:     cfg,
		log:     log,
		season:  season,
		ratings: ratings,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Get(pathHome, server.handleStandings)
	app.Get(pathRounds, server.handleRounds)
	app.Get(pathRatings, server.handleRatings)
	app.Get(pathStats, server.handleStats)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	return ctx.Render("standings", fiber.Map{
		"Title": "Standings",
		"Rows":  s.season.FinalTable().Rows(),
	}, "layouts/main")
}

type roundView struct {
	Number  int
	Matches []domain.Match
}

func (s *Server) handleRounds(ctx *fiber.Ctx) error {
	rounds := make([]roundView, 0, len(s.season.Tournament.Rounds))
	for i, r := range s.season.Tournament.Rounds {
		rounds = append(rounds, roundView{Number: i + 1, Matches: r.Matches})
	}
	return ctx.Render("rounds", fiber.Map{
		"Title":  "Fixtures",
		"Rounds": rounds,
	}, "layouts/main")
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	return ctx.Render("ratings", fiber.Map{
		"Title": "Ratings",
		"Teams": s.ratings,
	}, "layouts/main")
}

type frequencyView struct {
	Result domain.Result
	Count  int
	Share  float64
}

func (s *Server) handleStats(ctx *fiber.Ctx) error {
	corpus, err := stats.NewMatchStats(s.season.Tournament.Matches())
	if err != nil {
		return err
	}
	frequency := make([]frequencyView, 0, len(corpus.Frequency))
	for result, count := range corpus.Frequency {
		frequency = append(frequency, frequencyView{
			Result: result,
			Count:  count,
			Share:  100 * float64(count) / float64(corpus.NumberOfMatches),
		})
	}
	sort.Slice(frequency, func(i, j int) bool {
		a, b := frequency[i], frequency[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Result.HomeGoals != b.Result.HomeGoals {
			return a.Result.HomeGoals < b.Result.HomeGoals
		}
		return a.Result.AwayGoals < b.Result.AwayGoals
	})
	return ctx.Render("stats", fiber.Map{
		"Title":        "Statistics",
		"Matches":      corpus.NumberOfMatches,
		"AverageGoals": corpus.AverageGoals(),
		"Frequency":    frequency,
	}, "layouts/main")
}
