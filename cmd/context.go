package cmd

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/rust-commits-go/config"
	"github.com/masmgr/rust-commits-go/internal/github"
	"github.com/masmgr/rust-commits-go/internal/output"
)

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config *config.Config
	Logger hclog.Logger
	Client github.Doer
	Now    time.Time
}

// NewCommandContext creates a context from CLI flags.
// It loads and validates configuration and sets up logging.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config: cfg,
		Logger: newLogger(cfg.Logging.Level),
		Client: http.DefaultClient,
		Now:    time.Now(),
	}, nil
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
