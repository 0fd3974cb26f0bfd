package main

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/bootstrap"
	"hall-of-fame-backend/internal/config"
	"hall-of-fame-backend/internal/logger"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type globalCmd struct {
	EnvFile string `help:"Environment file loaded before the configuration." default:".env" type:"path"`
	Yes     bool   `help:"Answer yes to every confirmation." short:"y"`
}

// open loads the configuration the server would use and connects to its backends.
func (g *globalCmd) open(ctx context.Context) (*bootstrap.App, error) {
	// A missing env file is fine; the environment may already be set.
	_ = godotenv.Load(g.EnvFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)
	return bootstrap.New(ctx, cfg)
}

var CLI struct {
	globalCmd

	Seed seedCmd `cmd:"" help:"Load the bundled classes and inductees."`

	Admin struct {
		Add adminAddCmd `cmd:"" help:"Create an admin account."`
	} `cmd:""`

	List struct {
		Classes       lsClassesCmd       `cmd:"" help:"List induction classes."`
		Inductees     lsInducteesCmd     `cmd:"" help:"List inductees."`
		Championships lsChampionshipsCmd `cmd:"" help:"List championships."`
	} `cmd:"" aliases:"ls"`

	Export struct {
		Inductees exportInducteesCmd `cmd:"" help:"Export inductees to an Excel workbook."`
	} `cmd:""`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hofctl"),
		kong.Description("Operator tool for the Hall of Fame backend."),
	)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
