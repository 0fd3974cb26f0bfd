package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"hall-of-fame-backend/internal/bootstrap"
	"hall-of-fame-backend/internal/seed"

	"github.com/AlecAivazis/survey/v2"
	"github.com/schollz/progressbar/v3"
)

type seedCmd struct {
	NoProgress bool `help:"Do not draw a progress bar."`
}

func (s *seedCmd) Run(g *globalCmd) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	dataset, err := seed.DefaultDataset()
	if err != nil {
		return err
	}

	if !g.Yes {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Write %d classes and %d inductees to the %s store?", len(dataset.Classes), len(dataset.Inductees), app.Config.DocstoreBackend),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	bar := progressbar.NewOptions(dataset.Total(),
		progressbar.OptionSetVisibility(!s.NoProgress),
		progressbar.OptionSetDescription(seed.PhaseClasses),
		progressbar.OptionShowCount(),
	)

	opts := bootstrap.SeedOptions(app.Config)
	opts.OnProgress = func(p seed.Progress) {
		bar.Describe(p.Phase)
		_ = bar.Set(p.Current)
	}
	final, err := seed.NewSeeder(app.Repos, dataset, opts).Run(ctx)
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d of %d records, %d failed\n", final.Current-final.Failed, final.Total, final.Failed)
	return nil
}
