package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

type adminAddCmd struct {
	Email string `arg:"" help:"Sign-in email of the new admin."`
	Name  string `help:"Display name." default:""`
}

func (a *adminAddCmd) Run(g *globalCmd) error {
	ctx := context.Background()

	var answers struct {
		Password string
		Confirm  string
	}
	questions := []*survey.Question{
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password:"},
			Validate: survey.MinLength(8),
		},
		{
			Name:   "confirm",
			Prompt: &survey.Password{Message: "Repeat password:"},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	if answers.Password != answers.Confirm {
		return fmt.Errorf("passwords do not match")
	}

	app, err := g.open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	admin, err := app.Auth.CreateAdmin(ctx, a.Email, a.Name, answers.Password)
	if err != nil {
		return err
	}
	fmt.Printf("Created admin %s (%s)\n", admin.Email, admin.ID)
	return nil
}
