package config

import (
	"fmt"

	"github.com/EmirDelicR/projectboard"
)

// BuildOptions converts parsed configuration into SDK options for
// [projectboard.New].
func BuildOptions(cfg *Config) []projectboard.Option {
	var opts []projectboard.Option
	if cfg.Title != "" {
		opts = append(opts, projectboard.WithTitle(cfg.Title))
	}
	return opts
}

// Seed applies the configured seed projects to a board, in file order.
//
// Finished seeds are added as active and then moved, the same sequence of
// operations an interactive user would perform. Returns the number of
// projects created.
//
// Seed assumes the config has passed [Parse] validation; an unparseable
// seed status is the only error it can report.
func Seed(board *projectboard.Board, cfg *Config) (int, error) {
	for i, s := range cfg.Seeds {
		status, err := projectboard.ParseStatus(s.Status)
		if err != nil {
			return i, fmt.Errorf("seeds[%d] (%s): %w", i, s.Title, err)
		}

		p := board.Add(s.Title, s.Description, s.People)
		if status == projectboard.StatusFinished {
			board.Move(p.ID, projectboard.StatusFinished)
		}
	}
	return len(cfg.Seeds), nil
}
