package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/fraservotes/console/cmd/app/commands"
	"github.com/fraservotes/console/internal/app"
	"github.com/fraservotes/console/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a console user who can sign in",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Sign-in email address",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Display name shown in the navigation badge",
				},
				&cli.StringFlag{
					Name:    "avatar-url",
					Aliases: []string{"a"},
					Usage:   "Avatar image URL",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "user",
					Usage:   "Role: 'user', 'admin' or 'superadmin'",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to be prompted)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				sessionUseCase, err := container.SessionUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					sessionUseCase,
					container.Logger(),
					commands.CreateUserParams{
						Email:       cmd.String("email"),
						DisplayName: cmd.String("name"),
						AvatarURL:   cmd.String("avatar-url"),
						Role:        cmd.String("role"),
						Password:    cmd.String("password"),
						Format:      cmd.String("format"),
					},
					commands.DefaultIO(),
				)
			},
		},
	}
}
