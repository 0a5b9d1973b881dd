package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shoetrack/shoetrack-ui/internal/adapters/upstream"
)

const commandTimeout = 30 * time.Second

func runListSessions(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("sessions", flag.ContinueOnError)
	fs.SetOutput(cmdCtx.Out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	store, release, err := cmdCtx.openSessions(cmdCtx)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()
	sessions, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		_, err = fmt.Fprintln(cmdCtx.Out, "No active sessions.")
		return err
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.Before(sessions[j].CreatedAt) })

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tUSER\tROLE\tCREATED\tEXPIRES")
	for _, s := range sessions {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Username, s.Role,
			s.CreatedAt.UTC().Format(time.RFC3339), s.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

func runRevokeSession(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("revoke-session", flag.ContinueOnError)
	fs.SetOutput(cmdCtx.Out)
	id := fs.String("id", "", "session id to revoke")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if strings.TrimSpace(*id) == "" {
		_, _ = fmt.Fprintln(cmdCtx.Out, "revoke-session requires -id")
		return errUsage
	}

	store, release, err := cmdCtx.openSessions(cmdCtx)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()
	if err := store.Delete(ctx, *id); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	_, err = fmt.Fprintf(cmdCtx.Out, "Session %s revoked.\n", *id)
	return err
}

func runRevokeAll(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("revoke-all", flag.ContinueOnError)
	fs.SetOutput(cmdCtx.Out)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if !*yes && !confirm(cmdCtx.In, cmdCtx.Out, "Sign out every user?") {
		_, err := fmt.Fprintln(cmdCtx.Out, "Aborted.")
		return err
	}

	store, release, err := cmdCtx.openSessions(cmdCtx)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()
	n, err := store.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	_, err = fmt.Fprintf(cmdCtx.Out, "%d session(s) revoked.\n", n)
	return err
}

func runPingUpstream(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("ping-upstream", flag.ContinueOnError)
	fs.SetOutput(cmdCtx.Out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	up := cmdCtx.Config.Upstream
	client, err := upstream.NewClient(upstream.Config{
		BaseURL:   up.BaseURL,
		APIPrefix: up.APIPrefix,
		Timeout:   up.Timeout,
		APIKey:    up.APIKey,
		Logger:    cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()
	start := time.Now()
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", up.BaseURL, err)
	}
	_, err = fmt.Fprintf(cmdCtx.Out, "%s reachable in %s\n", up.BaseURL, time.Since(start).Round(time.Millisecond))
	return err
}

// confirm asks question on out and reads a y/yes answer from in.
func confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
