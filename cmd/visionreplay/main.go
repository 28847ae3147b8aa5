// Command visionreplay plays a recorded perception capture onto the
// simulator vision port so the controller can be run against it with --sim.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/replay"
)

type options struct {
	configPath string
	target     string
	filterPort int
	speed      float64
	loop       bool
	logLevel   string
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "visionreplay <capture.pcap>",
		Short:        "Replay a vision capture onto the simulator vision port",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			monitoring.SetLevel(opts.logLevel)
			dest, err := destination(opts)
			if err != nil {
				return err
			}
			sock, err := network.NewRealUDPSocketFactory().ListenUDP("udp4", network.AnyAddr(0))
			if err != nil {
				return fmt.Errorf("failed to open send socket: %w", err)
			}
			defer sock.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			p := replay.NewPlayer(sock, dest, replay.Config{
				Port:  opts.filterPort,
				Speed: opts.speed,
				Loop:  opts.loop,
			})
			st, err := p.PlayFile(ctx, args[0])
			if ctx.Err() != nil {
				err = nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d of %d packets (%d skipped, %d failed)\n",
				st.Sent, st.Packets, st.Skipped, st.Failed)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "controller configuration, for the default target port")
	f.StringVar(&opts.target, "target", "", "destination host:port (default 127.0.0.1:<sim_vision_port>)")
	f.IntVar(&opts.filterPort, "port", 0, "replay only datagrams sent to this port, 0 for all")
	f.Float64Var(&opts.speed, "speed", 1, "playback speed multiplier")
	f.BoolVar(&opts.loop, "loop", false, "restart the capture when it ends")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

// destination resolves --target, falling back to the configured simulator
// vision port on loopback.
func destination(opts *options) (*net.UDPAddr, error) {
	if opts.target != "" {
		addr, err := net.ResolveUDPAddr("udp4", opts.target)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", opts.target, err)
		}
		return addr, nil
	}
	file := config.Default()
	if opts.configPath != "" {
		var err error
		if file, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	return network.LoopbackAddr(file.Network.SimVisionPort), nil
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
