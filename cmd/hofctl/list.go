package main

import (
	"context"
	"io"
	"os"
	"strconv"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/service"

	"github.com/jedib0t/go-pretty/v6/table"
)

type lsClassesCmd struct{}

func (l *lsClassesCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	classes, err := app.Services.Public.Classes(ctx)
	if err != nil {
		return err
	}
	renderClasses(os.Stdout, classes)
	return nil
}

type lsInducteesCmd struct {
	Year  int    `help:"Only this class year."`
	Sport string `help:"Only inductees tagged with this sport."`
}

func (l *lsInducteesCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	inductees, err := app.Services.Public.Inductees(ctx, service.TimelineFilter{
		ClassYear: l.Year,
		Sport:     l.Sport,
		Sort:      service.SortByName,
	})
	if err != nil {
		return err
	}
	renderInductees(os.Stdout, inductees)
	return nil
}

type lsChampionshipsCmd struct {
	Sport string `help:"Only this sport."`
}

func (l *lsChampionshipsCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	championships, err := app.Services.Public.Championships(ctx, l.Sport)
	if err != nil {
		return err
	}
	renderChampionships(os.Stdout, championships)
	return nil
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	t.SetStyle(table.StyleLight)
	return t
}

func renderClasses(w io.Writer, classes []models.InductionClass) {
	t := newTable(w, table.Row{"Year", "Inductees", "Ceremony", "ID"})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
	for _, c := range classes {
		t.AppendRow(table.Row{c.Year, c.InducteeCount, c.CeremonyDate, c.ID})
	}
	t.AppendFooter(table.Row{"", len(classes), "", ""})
	t.Render()
}

func renderInductees(w io.Writer, inductees []models.Inductee) {
	t := newTable(w, table.Row{"Name", "Class", "Sport", "Graduated", "ID"})
	for _, i := range inductees {
		t.AppendRow(table.Row{i.Name, i.ClassYear, i.Sport, graduation(i.GraduationYear), i.ID})
	}
	t.Render()
}

func renderChampionships(w io.Writer, championships []models.Championship) {
	t := newTable(w, table.Row{"Year", "Sport", "Title", "Coach", "ID"})
	for _, c := range championships {
		t.AppendRow(table.Row{c.Year, c.Sport, c.Title, c.Coach, c.ID})
	}
	t.Render()
}

func graduation(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}
