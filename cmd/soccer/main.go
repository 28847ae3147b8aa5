// Command soccer runs the real-time robot controller: it ingests vision,
// referee and radio feedback, runs the decision pipeline every frame and
// transmits robot commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Pi3th0n/robocup-software/internal/api"
	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/joystick"
	"github.com/Pi3th0n/robocup-software/internal/logstore"
	"github.com/Pi3th0n/robocup-software/internal/modeling"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/processor"
	"github.com/Pi3th0n/robocup-software/internal/referee"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
	"github.com/Pi3th0n/robocup-software/internal/version"
)

type options struct {
	sim             bool
	radio           int
	configPath      string
	listen          string
	logDB           string
	syncVision      bool
	logLevel        string
	blue            bool
	defendPlusX     bool
	internalReferee bool
	trace           bool
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "soccer",
		Short:         "Real-time multi-robot soccer controller",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, opts)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.sim, "sim", false, "read vision from the simulator port instead of the multicast group")
	f.IntVar(&opts.radio, "radio", -1, "radio channel, -1 to use the first free channel")
	f.StringVar(&opts.configPath, "config", "", "configuration file (json, yaml or toml)")
	f.StringVar(&opts.listen, "listen", "localhost:8090", "supervisory API address, empty to disable")
	f.StringVar(&opts.logDB, "log-db", "", "sqlite file for cycle logs, empty to disable")
	f.BoolVar(&opts.syncVision, "sync-vision", false, "start each cycle on vision arrival instead of a fixed period")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.BoolVar(&opts.blue, "blue", false, "play as the blue team")
	f.BoolVar(&opts.defendPlusX, "defend-plus-x", false, "defend the goal on the +x side of the field")
	f.BoolVar(&opts.internalReferee, "internal-referee", false, "ignore the referee network and accept operator commands only")
	f.BoolVar(&opts.trace, "trace", false, "record pipeline stages as debug layers in the cycle log")
	return cmd
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		monitoring.Logger().Error().Err(err).Msg("soccer exited")
		os.Exit(1)
	}
}

// loadConfig reads the configuration and lets explicitly set flags override
// the file's loop settings.
func loadConfig(cmd *cobra.Command, opts *options) *config.File {
	file := config.Default()
	if opts.configPath != "" {
		var err error
		file, err = config.Load(opts.configPath)
		if err != nil {
			monitoring.Logger().Warn().Err(err).Str("path", opts.configPath).Msg("using default configuration")
		}
	}
	if cmd.Flags().Changed("sync-vision") {
		file.Loop.SyncToVision = opts.syncVision
	}
	if cmd.Flags().Changed("internal-referee") {
		file.Loop.ExternalReferee = !opts.internalReferee
	}
	return file
}

func processorConfig(file *config.File, opts *options, joy *joystick.Remote, clock timeutil.Clock) processor.Config {
	return processor.Config{
		File:            file,
		Simulation:      opts.sim,
		RadioChannel:    opts.radio,
		BlueTeam:        opts.blue,
		DefendPlusX:     opts.defendPlusX,
		ExternalReferee: file.Loop.ExternalReferee,
		SyncToVision:    file.Loop.SyncToVision,
		Modeling:        modeling.New(file.WorldModel.VisionTimeout),
		Referee:         referee.New(),
		Joystick:        joy,
		Trace:           opts.trace,
		Factory:         network.NewRealUDPSocketFactory(),
		Clock:           clock,
	}
}

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	monitoring.SetLevel(opts.logLevel)
	log := monitoring.Component("soccer")
	log.Info().Str("version", version.String()).Msg("starting")

	file := loadConfig(cmd, opts)
	clock := timeutil.RealClock{}
	joy := joystick.NewRemote(clock, joystick.DefaultTimeout)
	cfg := processorConfig(file, opts, joy, clock)

	g, ctx := errgroup.WithContext(ctx)

	var store *logstore.Store
	if opts.logDB != "" {
		var err error
		store, err = logstore.Open(opts.logDB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	p, err := processor.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to start controller: %w", err)
	}
	defer p.Close()

	if store != nil {
		session, err := store.StartSession(ctx, logstore.Session{
			StartedAt:    clock.Now().UnixMicro(),
			BlueTeam:     opts.blue,
			Simulation:   opts.sim,
			RadioChannel: p.RadioChannel(),
			Version:      version.Version,
		})
		if err != nil {
			return err
		}
		w := logstore.NewWriter(logstore.WriterConfig{Store: store, Session: session, Clock: clock})
		p.SetSink(w)
		g.Go(func() error { return w.Run(ctx) })
		log.Info().Str("session", session.String()).Str("path", store.Path()).Msg("cycle logging enabled")
	}

	if opts.listen != "" {
		mux := http.NewServeMux()
		if store != nil {
			if err := store.AttachAdminRoutes(mux); err != nil {
				return err
			}
		}
		h := api.NewServer(p, joy, store, version.Version).Handler(mux)
		g.Go(func() error { return api.ListenAndServe(ctx, opts.listen, h) })
	}

	g.Go(func() error { return p.Run(ctx) })

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Msg("stopped")
	return err
}
