package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - register: Register this device and its push token
// - claim:    Acknowledge a call and deliver the claim
// - pending:  List claims waiting for delivery
// - run:      Receive push messages locally and deliver claims in the background

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "register":
		return handleRegister(ctx, args)
	case "claim":
		return handleClaim(ctx, args)
	case "pending":
		return handlePending(ctx, args)
	case "run":
		return handleRun(ctx, args)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleRegister(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	common := bindCommonFlags(cmd)
	token := cmd.String("token", "", "Push token of this device")
	platform := cmd.String("platform", "", "Device platform (default android)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse register flags")
	}

	if *token == "" {
		return errors.New("--token flag is required for register command")
	}

	return runRegister(ctx, common, *token, *platform)
}

func handleClaim(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("claim", flag.ExitOnError)
	common := bindCommonFlags(cmd)
	callID := cmd.String("call", "", "Call (request) id to claim")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse claim flags")
	}

	if *callID == "" {
		return errors.New("--call flag is required for claim command")
	}

	return runClaim(ctx, common, *callID)
}

func handlePending(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("pending", flag.ExitOnError)
	common := bindCommonFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse pending flags")
	}

	return runPending(ctx, common)
}

func handleRun(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("run", flag.ExitOnError)
	common := bindCommonFlags(cmd)
	listen := cmd.String("listen", "127.0.0.1:7070", "Address receiving push messages and acknowledgements")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse run flags")
	}

	return runAgent(ctx, common, *listen)
}

func printUsage() {
	fmt.Println("Usage: agent <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  register    Register this device and its push token")
	fmt.Println("  claim       Acknowledge a call and deliver the claim")
	fmt.Println("  pending     List claims waiting for delivery")
	fmt.Println("  run         Receive push messages and deliver claims in the background")
	fmt.Println("")
	fmt.Println("Use 'agent <command> -h' for more information about a command.")
}
