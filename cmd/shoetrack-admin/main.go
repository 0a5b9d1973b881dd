package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/shoetrack/shoetrack-ui/config"
	redisadapter "github.com/shoetrack/shoetrack-ui/internal/adapters/redis"
	"github.com/shoetrack/shoetrack-ui/internal/bootstrap"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

const sessionKeyPrefix = "shoetrack:session:"

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	In     io.Reader
	Out    io.Writer

	// openSessions connects to the shared session store. The returned func
	// releases the connection.
	openSessions func(*commandContext) (ports.SessionAdmin, func(), error)
}

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.ErrorContext(ctx, "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.Observability)

	cmdCtx := &commandContext{
		Ctx:          ctx,
		Logger:       logger,
		Config:       cfg,
		In:           os.Stdin,
		Out:          os.Stdout,
		openSessions: openRedisSessions,
	}
	os.Exit(run(cmdCtx, os.Args[1:])) //nolint:forbidigo // CLI exit status reflects the command result
}

// run dispatches args to a command and returns the process exit code.
func run(cmdCtx *commandContext, args []string) int {
	if len(args) < 1 {
		printUsage(cmdCtx.Out)
		return 2
	}
	cmd, ok := commands()[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(cmdCtx.Out, "unknown command %q\n\n", args[0])
		printUsage(cmdCtx.Out)
		return 2
	}
	if err := cmd.run(cmdCtx, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		cmdCtx.Logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmd.name, "error", err)
		return 1
	}
	return 0
}

func commands() map[string]command {
	return map[string]command{
		"sessions": {
			name:        "sessions",
			description: "List active browser sessions",
			run:         runListSessions,
		},
		"revoke-session": {
			name:        "revoke-session",
			description: "Sign out one session (-id)",
			run:         runRevokeSession,
		},
		"revoke-all": {
			name:        "revoke-all",
			description: "Sign out every session (-yes to skip the prompt)",
			run:         runRevokeAll,
		},
		"ping-upstream": {
			name:        "ping-upstream",
			description: "Check that the record server answers",
			run:         runPingUpstream,
		},
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: shoetrack-admin <command> [flags]\n\nAvailable commands:\n")
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-16s %s\n", name, cmds[name].description)
	}
}

// openRedisSessions connects to the Redis session store the server uses.
// In-memory sessions live inside the server process and cannot be reached.
func openRedisSessions(cmdCtx *commandContext) (ports.SessionAdmin, func(), error) {
	if !cmdCtx.Config.Redis.Enabled {
		return nil, nil, errors.New("sessions are held in server memory; set REDIS_ENABLED=true to manage them")
	}
	client, err := bootstrap.ConnectRedis(cmdCtx.Ctx, cmdCtx.Config.Redis, cmdCtx.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	closeFn := func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}
	return redisadapter.NewSessionStoreWithPrefix(client, sessionKeyPrefix), closeFn, nil
}
