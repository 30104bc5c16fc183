// Command issue-token mints an access token signed with JWT_SECRET for operators and
// service accounts.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
	"github.com/noah-isme/institute-dashboard-api/pkg/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("issue-token: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("issue-token", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	userID := flags.String("user", "", "subject user id")
	role := flags.String("role", string(models.RoleManager), "role: ADMIN, MANAGER or STAFF")
	email := flags.String("email", "", "email claim")
	name := flags.String("name", "", "full name claim")
	ttl := flags.Duration("ttl", 0, "token lifetime, defaults to JWT_EXPIRATION")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*userID) == "" {
		return errors.New("--user is required")
	}
	userRole, err := parseRole(*role)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	expiry := cfg.JWT.Expiration
	if *ttl > 0 {
		expiry = *ttl
	}

	auth := service.NewAuthService(nil, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: expiry,
		Issuer:            cfg.JWT.Issuer,
	})
	token, expiresAt, err := auth.IssueToken(*userID, userRole, *email, *name)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(out, token)
	fmt.Fprintf(out, "expires %s\n", expiresAt.Format(time.RFC3339))
	return nil
}

func parseRole(raw string) (models.UserRole, error) {
	role := models.UserRole(strings.ToUpper(strings.TrimSpace(raw)))
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}
