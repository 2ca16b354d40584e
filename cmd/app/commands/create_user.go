package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	validation "github.com/jellydator/validation"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	sessionUseCase "github.com/fraservotes/console/internal/session/usecase"
	customValidation "github.com/fraservotes/console/internal/validation"
)

// minPasswordLength is the shortest password accepted for a new user.
const minPasswordLength = 12

// CreateUserParams carries the create-user flags.
type CreateUserParams struct {
	Email       string
	DisplayName string
	AvatarURL   string
	Role        string
	Password    string
	Format      string
}

// Validate checks the fields that the use case does not.
func (p *CreateUserParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Email, validation.Required, customValidation.Email),
		validation.Field(&p.Password, validation.Required, customValidation.MinPasswordLength(minPasswordLength)),
		validation.Field(&p.Format, validation.In("text", "json")),
	)
}

// RunCreateUser creates a console user. When no password is given it is read
// from the first line of io.Reader.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase sessionUseCase.SessionUseCase,
	logger *slog.Logger,
	params CreateUserParams,
	io IOTuple,
) error {
	role, err := sessionDomain.ParseRole(params.Role)
	if err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	if params.Password == "" {
		params.Password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	logger.Info("creating new user", slog.String("role", string(role)))

	user, err := useCase.CreateUser(ctx, &sessionDomain.CreateUserInput{
		Email:       params.Email,
		DisplayName: params.DisplayName,
		AvatarURL:   params.AvatarURL,
		Password:    params.Password,
		Role:        role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if params.Format == "json" {
		outputUserJSON(user, io.Writer)
	} else {
		outputUserText(user, io.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)

	return nil
}

// promptForPassword reads a single password line.
func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("password is required")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")

	reader := bufio.NewReader(io.Reader)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	_, _ = fmt.Fprintln(io.Writer)

	return strings.TrimRight(line, "\r\n"), nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(user *sessionDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "User created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", user.Role.Label())
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(user *sessionDomain.User, writer io.Writer) {
	result := map[string]string{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    string(user.Role),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
