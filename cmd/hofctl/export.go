package main

import (
	"context"
	"fmt"
	"strings"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/service"

	excelize "github.com/xuri/excelize/v2"
)

const inducteeSheet = "Inductees"

var inducteeColumns = []string{"Name", "Class", "Sport", "Sports", "Graduated", "Achievements", "Photo", "ID"}

type exportInducteesCmd struct {
	Out  string `help:"Workbook to write." required:"" type:"path" short:"o"`
	Year int    `help:"Only this class year."`
}

func (e *exportInducteesCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	inductees, err := app.Services.Public.Inductees(ctx, service.TimelineFilter{
		ClassYear: e.Year,
		Sort:      service.SortByName,
	})
	if err != nil {
		return err
	}

	xl, err := inducteeWorkbook(inductees)
	if err != nil {
		return err
	}
	defer xl.Close()

	if err := xl.SaveAs(e.Out); err != nil {
		return fmt.Errorf("unable to save %s: %w", e.Out, err)
	}
	fmt.Printf("Wrote %d inductees to %s\n", len(inductees), e.Out)
	return nil
}

// inducteeWorkbook lays out one row per inductee below a bold header row.
func inducteeWorkbook(inductees []models.Inductee) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := xl.SetSheetName(xl.GetSheetName(0), inducteeSheet); err != nil {
		return nil, err
	}

	for col, name := range inducteeColumns {
		if err := setCell(xl, col, 0, name); err != nil {
			return nil, err
		}
	}
	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(inducteeColumns), 1)
	if err != nil {
		return nil, err
	}
	if err := xl.SetCellStyle(inducteeSheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for row, i := range inductees {
		values := []interface{}{
			i.Name,
			i.ClassYear,
			i.Sport,
			strings.Join(i.Sports, ", "),
			graduation(i.GraduationYear),
			i.Achievements,
			i.PhotoURL,
			i.ID,
		}
		for col, v := range values {
			if err := setCell(xl, col, row+1, v); err != nil {
				return nil, err
			}
		}
	}
	return xl, nil
}

func setCell(xl *excelize.File, col, row int, value interface{}) error {
	index, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return xl.SetCellValue(inducteeSheet, index, value)
}
