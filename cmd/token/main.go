// Command token mints access tokens for local development and scripting.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"fitcoach/internal/auth"
	"fitcoach/internal/config"

	"github.com/google/uuid"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if cfg, err := config.Load(); err == nil {
			secret = cfg.JWTSecret
		}
	}

	if err := run(os.Args[1:], os.Stdout, secret); err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, secret string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		principal string
		email     string
		role      string
		ttl       time.Duration
		pair      bool
		refresh   string
	)
	fs.StringVar(&principal, "principal", "", "principal id (random uuid when empty)")
	fs.StringVar(&email, "email", "", "email claim, used for booking notifications")
	fs.StringVar(&role, "role", auth.RoleUser, "role claim: user or admin")
	fs.DurationVar(&ttl, "ttl", auth.AccessTokenTTL, "access token lifetime")
	fs.BoolVar(&pair, "pair", false, "also print a refresh token")
	fs.StringVar(&refresh, "refresh", "", "exchange this refresh token for a new access token")
	fs.StringVar(&secret, "secret", secret, "signing secret (defaults to JWT_SECRET)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if secret == "" {
		return auth.ErrEmptyJWTSecret
	}

	if refresh != "" {
		access, claims, err := auth.RefreshAccessToken(refresh, secret, secret)
		if err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		fmt.Fprintf(out, "principal: %s\naccess:    %s\n", claims.Principal, access)
		return nil
	}

	if role != auth.RoleUser && role != auth.RoleAdmin {
		return errors.New("role must be user or admin")
	}
	if principal == "" {
		principal = uuid.NewString()
	}

	if pair {
		access, refreshToken, err := auth.GenerateTokens(principal, email, role, secret, secret)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "principal: %s\naccess:    %s\nrefresh:   %s\n", principal, access, refreshToken)
		return nil
	}

	access, err := auth.GenerateAccessTokenTTL(principal, email, role, secret, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "principal: %s\naccess:    %s\n", principal, access)
	return nil
}
