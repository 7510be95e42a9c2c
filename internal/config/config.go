package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Simulation struct {
	Iterations int     `toml:"iterations"`
	Seed       int64   `toml:"seed"`
	WinPoints  int     `toml:"win_points"`
	DrawPoints int     `toml:"draw_points"`
	XGConstant float64 `toml:"xg_constant"`
	XGFactor   float64 `toml:"xg_factor"`
}

type Teams struct {
	Names       []string `toml:"names"`
	MinStrength int      `toml:"min_strength"`
	MaxStrength int      `toml:"max_strength"`
}

type Server struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Debug   bool   `toml:"debug_mode"`
}

type Config struct {
	Simulation Simulation
	Teams      Teams
	Server     Server
}

func Default() Config {
	return Config{
		Simulation: Simulation{
			Iterations: 2,
			WinPoints:  3,
			DrawPoints: 1,
			XGConstant: 1.3,
			XGFactor:   1.3,
		},
		Teams: Teams{
			Names: []string{
				"Arsenal", "Chelsea", "Everton", "Fulham",
				"Liverpool", "Southampton", "Watford", "West Ham",
			},
			MinStrength: 0,
			MaxStrength: 10,
		},
		Server: Server{
			Host: "localhost",
			Port: 3000,
		},
	}
}

// New reads the config file at path over the defaults. A missing file is
// not an error: the defaults are used as is.
func New(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}
