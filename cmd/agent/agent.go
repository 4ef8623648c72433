package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"callbell/config"
	"callbell/internal/client"
	"callbell/internal/client/claimqueue"
	logs "callbell/internal/infra/log"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

const claimsDir = "claims"

type commonFlags struct {
	server   *string
	key      *string
	state    *string
	name     *string
	logLevel *string
}

func bindCommonFlags(cmd *flag.FlagSet) *commonFlags {
	return &commonFlags{
		server:   cmd.String("server", envOr("CALLBELL_SERVER", "http://localhost:8080"), "callbell API base URL"),
		key:      cmd.String("key", os.Getenv("CALLBELL_STATION_KEY"), "Station key when the API requires auth"),
		state:    cmd.String("state", envOr("CALLBELL_AGENT_STATE", ".callbell-agent"), "Directory holding identity and pending claims"),
		name:     cmd.String("name", "", "Display name shown to other staff (stored for later runs)"),
		logLevel: cmd.String("log-level", "info", "Log level (debug, info, warn, error)"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

type agent struct {
	identity *client.Identity
	api      *client.APIClient
	queue    *claimqueue.Queue
	bucket   *blob.Bucket
	logger   *slog.Logger
}

func openAgent(ctx context.Context, flags *commonFlags) (*agent, error) {
	logCfg := &config.Config{}
	logCfg.Env.Log = config.Log{Pretty: true, Level: *flags.logLevel}
	logger, err := logs.New(logs.Params{Config: logCfg})
	if err != nil {
		return nil, err
	}

	identity, err := client.LoadOrCreateIdentity(*flags.state, *flags.name)
	if err != nil {
		return nil, err
	}

	api, err := client.NewAPIClient(*flags.server, client.WithStationKey(*flags.key))
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(filepath.Join(*flags.state, claimsDir))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}

	bucket, err := claimqueue.OpenBucket(ctx, "file://"+filepath.ToSlash(dir))
	if err != nil {
		return nil, err
	}

	queue, err := claimqueue.New(bucket, client.NewClaimer(api, logger),
		claimqueue.Owner{DeviceID: identity.DeviceID, DisplayName: identity.DisplayName},
		claimqueue.WithLogger(logger),
	)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	return &agent{
		identity: identity,
		api:      api,
		queue:    queue,
		bucket:   bucket,
		logger:   logger.With(slog.String("device_id", identity.DeviceID)),
	}, nil
}

func (a *agent) newDevice() *client.Device {
	return client.NewDevice(client.NewLogTray(client.NewMemoryTray(), a.logger), a.queue, a.logger)
}

func (a *agent) Close() error {
	return a.bucket.Close()
}

func runRegister(ctx context.Context, flags *commonFlags, token, platform string) error {
	a, err := openAgent(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	err = a.api.RegisterDevice(ctx, &client.Registration{
		DeviceID: a.identity.DeviceID,
		Name:     a.identity.DisplayName,
		Token:    token,
		Platform: platform,
	})
	if err != nil {
		return errors.Wrap(err, "register device")
	}

	fmt.Printf("Registered device %s\n", a.identity.DeviceID)

	return nil
}

func runClaim(ctx context.Context, flags *commonFlags, callID string) error {
	a, err := openAgent(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	// A previous agent may have died mid-attempt; without this the claim would
	// sit in flight and every new acknowledge would be dropped as a duplicate.
	if _, err := a.queue.Recover(ctx); err != nil {
		return err
	}

	created, err := a.newDevice().Acknowledge(ctx, callID)
	if err != nil {
		return err
	}
	if !created {
		fmt.Printf("Claim for %s is already pending\n", callID)
	}

	if _, err := a.queue.ProcessDue(ctx); err != nil {
		return err
	}

	return printPending(ctx, a.queue)
}

func runPending(ctx context.Context, flags *commonFlags) error {
	a, err := openAgent(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	return printPending(ctx, a.queue)
}

func printPending(ctx context.Context, queue *claimqueue.Queue) error {
	pending, err := queue.Pending(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Println("No pending claims")

		return nil
	}

	for _, claim := range pending {
		fmt.Printf("%s  %-16s attempts=%d next=%s\n",
			claim.CallID, claim.State, claim.Attempts, claim.NextAttemptAt.Local().Format("15:04:05"))
	}

	return nil
}
