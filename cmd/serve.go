package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/greenscore/internal/logging"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/server"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the estimator as an HTTP JSON API",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of a running API server",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max in-memory evaluation events retained")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	addr := serveAddr(in.cfg.Server.Addr)
	logger := logging.New(logLevel(in.cfg), os.Stderr)

	svc := server.New(server.Config{
		Addr:         addr,
		Project:      in.project,
		Defaults:     in.usage,
		Estimator:    in.est,
		Logger:       logger,
		EventsBuffer: flagServeEventsBuffer,
	})

	if !flagQuiet {
		fmt.Printf("  greenscore API listening on http://%s\n", addr)
		fmt.Printf("  POST /v1/evaluate · POST /v1/certificate · GET /v1/stream\n")
		fmt.Printf("  Stop with Ctrl+C\n")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func serveAddr(fromConfig string) string {
	if flagServeAddr != "" {
		return flagServeAddr
	}
	if fromConfig != "" {
		return fromConfig
	}
	return "127.0.0.1:8787"
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := serveAddr(cfg.Server.Addr)

	fmt.Printf("  Address: http://%s\n", addr)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st server.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Started: %s (up %s)\n",
		st.StartedAt.Local().Format(time.RFC3339), time.Duration(st.UptimeSec)*time.Second)
	fmt.Printf("  Evaluations: %d\n", st.Counters.Evaluations)
	fmt.Printf("  Certificates: %d\n", st.Counters.Certificates)
	fmt.Printf("  Rejected: %d invalid, %d malformed\n", st.Counters.Rejected, st.Counters.BadRequests)
	if st.LastEvaluation.IsZero() {
		fmt.Printf("  Last evaluation: none\n")
	} else {
		fmt.Printf("  Last evaluation: %s\n", st.LastEvaluation.Local().Format(time.RFC3339))
	}
	for _, g := range []model.Grade{model.GradeA, model.GradeB, model.GradeC, model.GradeD, model.GradeE} {
		if n := st.GradeCounts[g]; n > 0 {
			fmt.Printf("  Grade %s: %d\n", g, n)
		}
	}
	fmt.Printf("  Stream subscribers: %d\n", st.SubscriberCount)
	return nil
}
