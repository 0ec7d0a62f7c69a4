package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/service"
)

var errUsage = errors.New("usage: accountctl <createuser|createprofile|setactive|setpassword> [flags]")

type adminService interface {
	CreateUser(ctx context.Context, in service.NewUser) (*domain.User, error)
	CreateProfile(ctx context.Context, username string) (*domain.Profile, error)
	SetActive(ctx context.Context, username string, active bool) error
	SetPassword(ctx context.Context, username, password string) error
}

type app struct {
	admin  adminService
	stdin  io.Reader
	stdout io.Writer
	// readPassword reads a password from the terminal without echo.
	readPassword func() ([]byte, error)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "createuser":
		return a.createUser(ctx, args[1:])
	case "createprofile":
		return a.createProfile(ctx, args[1:])
	case "setactive":
		return a.setActive(ctx, args[1:])
	case "setpassword":
		return a.setPassword(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func (a *app) createUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("createuser", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	username := fs.String("username", "", "login name (required)")
	email := fs.String("email", "", "email address")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	inactive := fs.Bool("inactive", false, "create the account disabled")
	withProfile := fs.Bool("with-profile", false, "also create the empty profile")
	passwordStdin := fs.Bool("password-stdin", false, "read the password from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("createuser: -username is required")
	}

	password, err := a.password(*passwordStdin)
	if err != nil {
		return err
	}

	user, err := a.admin.CreateUser(ctx, service.NewUser{
		Username:  *username,
		Password:  password,
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
		Active:    !*inactive,
	})
	if err != nil {
		return fmt.Errorf("createuser: %w", err)
	}
	fmt.Fprintf(a.stdout, "created user %s (%s)\n", user.Username, user.ID)

	if *withProfile {
		profile, err := a.admin.CreateProfile(ctx, user.Username)
		if err != nil {
			return fmt.Errorf("createuser: profile: %w", err)
		}
		fmt.Fprintf(a.stdout, "created profile %s\n", profile.ID)
	}
	return nil
}

func (a *app) createProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("createprofile", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	username := fs.String("username", "", "owner of the profile (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("createprofile: -username is required")
	}

	profile, err := a.admin.CreateProfile(ctx, *username)
	if err != nil {
		return fmt.Errorf("createprofile: %w", err)
	}
	fmt.Fprintf(a.stdout, "created profile %s for %s\n", profile.ID, *username)
	return nil
}

func (a *app) setActive(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("setactive", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	username := fs.String("username", "", "account to change (required)")
	active := fs.Bool("active", true, "whether the account may log in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("setactive: -username is required")
	}

	if err := a.admin.SetActive(ctx, *username, *active); err != nil {
		return fmt.Errorf("setactive: %w", err)
	}
	fmt.Fprintf(a.stdout, "%s active=%t\n", *username, *active)
	return nil
}

func (a *app) setPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("setpassword", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	username := fs.String("username", "", "account to change (required)")
	passwordStdin := fs.Bool("password-stdin", false, "read the password from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("setpassword: -username is required")
	}

	password, err := a.password(*passwordStdin)
	if err != nil {
		return err
	}
	if err := a.admin.SetPassword(ctx, *username, password); err != nil {
		return fmt.Errorf("setpassword: %w", err)
	}
	fmt.Fprintf(a.stdout, "password updated for %s\n", *username)
	return nil
}

// password reads the first line of stdin, or prompts twice on the terminal.
func (a *app) password(fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(a.stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", errors.New("empty password")
		}
		return line, nil
	}

	fmt.Fprint(a.stdout, "Password: ")
	first, err := a.readPassword()
	fmt.Fprintln(a.stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(a.stdout, "Password (again): ")
	second, err := a.readPassword()
	fmt.Fprintln(a.stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("empty password")
	}
	return string(first), nil
}
