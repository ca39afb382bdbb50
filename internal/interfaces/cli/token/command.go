// Package token mints access tokens for operators and integration tests.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"qravy/internal/infrastructure/auth"
	"qravy/internal/interfaces/cli/runtime"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/id"
)

var (
	env        string
	configPath string
	tenantID   string
	userID     string
	role       string
	locationID string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newIssueCommand())
	return cmd
}

func newIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		Long:  `Issue an access token for a tenant session. Branch sessions must name their location.`,
		RunE:  runIssue,
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "Tenant id (required)")
	cmd.Flags().StringVar(&userID, "user", "", "User id (required)")
	cmd.Flags().StringVar(&role, "role", authorization.RoleEditor.String(), "Role: owner, admin, editor, viewer or branch")
	cmd.Flags().StringVar(&locationID, "location", "", "Location id, required for the branch role")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	session, err := buildSession(tenantID, userID, role, locationID)
	if err != nil {
		return err
	}

	cfg, log, err := runtime.Setup(env, configPath)
	if err != nil {
		return err
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := svc.Generate(session)
	if err != nil {
		return err
	}

	log.Infow("access token issued",
		"tenant_id", session.TenantID,
		"user_id", session.UserID,
		"role", session.Role,
		"expires_in_minutes", svc.AccessExpMinutes())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
	return err
}

func buildSession(tenant, user, rawRole, location string) (auth.Session, error) {
	r := authorization.UserRole(rawRole)
	if !r.IsValid() {
		return auth.Session{}, fmt.Errorf("unknown role %q", rawRole)
	}
	if tenant == "" || user == "" {
		return auth.Session{}, fmt.Errorf("tenant and user are required")
	}
	if err := id.ValidatePrefix(tenant, id.PrefixTenant); err != nil {
		return auth.Session{}, fmt.Errorf("invalid tenant: %w", err)
	}
	if r.IsBranch() {
		if location == "" {
			return auth.Session{}, fmt.Errorf("branch tokens require --location")
		}
		if err := id.ValidatePrefix(location, id.PrefixLocation); err != nil {
			return auth.Session{}, fmt.Errorf("invalid location: %w", err)
		}
	} else if location != "" {
		return auth.Session{}, fmt.Errorf("--location is only valid for the branch role")
	}

	return auth.Session{TenantID: tenant, UserID: user, Role: r, LocationID: location}, nil
}
