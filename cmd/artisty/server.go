package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/kailash19961996/Artisty/internal/agent"
	"github.com/kailash19961996/Artisty/internal/api"
	"github.com/kailash19961996/Artisty/internal/catalog"
	"github.com/kailash19961996/Artisty/internal/chat"
	"github.com/kailash19961996/Artisty/internal/config"
	"github.com/kailash19961996/Artisty/internal/search"
	"github.com/kailash19961996/Artisty/internal/session"
	"github.com/kailash19961996/Artisty/internal/storage"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the artisty server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running artisty server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show artisty system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "artisty.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "artisty version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// The admin endpoints need a bearer token; generate one on first run.
	adminToken, err := config.GetAPIToken()
	if err != nil {
		return fmt.Errorf("initializing API token: %w", err)
	}
	slog.Info("admin bearer token available")

	// Write PID file. Check if server is already running via health endpoint.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			printWarning("artisty is already running (PID %d)", pid)
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		printWarning("artisty is already running on port %d", cfg.Server.Port)
		return fmt.Errorf("server already running on port %d", cfg.Server.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("catalog loaded", "artworks", cat.Len())

	synonyms, err := search.NewSynonymTable()
	if err != nil {
		return fmt.Errorf("building synonym table: %w", err)
	}
	orchestrator := search.NewOrchestrator(cat, synonyms, cfg.Search.PageSize, cfg.Search.TopK)

	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}()

	// Fresh sessions start out displaying the first page of the catalog.
	initial := orchestrator.Page("", 0).Items
	sessions := session.NewManager(initial, 0)
	go sessions.Run(ctx)

	var assistant api.Assistant
	if cfg.Assistant.BaseURL != "" {
		assistant = chat.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model)
	} else {
		slog.Warn("no assistant backend configured, chat uses canned replies only")
	}
	fallback := chat.NewFallback(cat, catalog.NewKeywordIndex(cat))

	bus := agent.NewBus()
	go logCartFeedback(ctx, cat, bus)

	handler := api.NewHandler(api.Deps{
		Catalog:    cat,
		Search:     orchestrator,
		Sessions:   sessions,
		Assistant:  assistant,
		Fallback:   fallback,
		Store:      store,
		Bus:        bus,
		AdminToken: adminToken,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// MCP server over stdio, for agent clients attached to this process.
	mcpSrv := api.NewMCPServer(api.MCPDeps{
		Catalog: cat,
		Search:  orchestrator,
	})
	stdioSrv := server.NewStdioServer(mcpSrv)
	go func() {
		if err := stdioSrv.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MCP stdio server error", "error", err)
		}
	}()
	slog.Info("MCP server started (stdio transport)")

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "artisty listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// logCartFeedback drains the cart feedback bus so agent-driven adds show up
// in the server log.
func logCartFeedback(ctx context.Context, cat *catalog.Catalog, bus *agent.Bus) {
	events, cancel := bus.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if a, found := cat.ByID(ev.ArtworkID); found {
				slog.Info("agent added artwork to cart", "artwork", a.Name)
			}
		}
	}
}

func stopServer() error {
	cfg, err := config.Load()
	if err != nil {
		printError("could not load config: %v", err)
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printError("artisty is not running (no PID file)")
		return fmt.Errorf("not running: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		printError("could not find process %d", pid)
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		printError("could not stop artisty (PID %d): %v", pid, err)
		removePIDFile(pidPath)
		return err
	}

	printSuccess("Sent stop signal to artisty (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load()
	if err != nil {
		printError("config error: %v", err)
		return nil
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	client := &http.Client{Timeout: 2 * time.Second}

	running := false
	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		printStatus("Server", "stopped")
	} else {
		resp.Body.Close()
		if resp.StatusCode == 200 {
			running = true
			printStatus("Server", "running on port %d", cfg.Server.Port)
		} else {
			printStatus("Server", "error (HTTP %d)", resp.StatusCode)
		}
	}

	// Check the assistant backend.
	if cfg.Assistant.BaseURL == "" {
		printStatus("Assistant", "not configured (fallback replies only)")
	} else if resp, err := client.Get(cfg.Assistant.BaseURL + "/health"); err != nil {
		printStatus("Assistant", "unreachable at %s", cfg.Assistant.BaseURL)
	} else {
		resp.Body.Close()
		printStatus("Assistant", "reachable at %s", cfg.Assistant.BaseURL)
	}

	if cat, err := catalog.Load(); err == nil {
		printStatus("Catalog", "%d artworks", cat.Len())
	}

	if running {
		if token, tokenErr := config.GetAPIToken(); tokenErr == nil {
			if n, ok := countInteractions(client, serverURL, token); ok {
				printStatus("Interactions", "%s", n)
			}
		}
	}

	printStatus("Data dir", "%s", cfg.Storage.DataDir)
	return nil
}

func countInteractions(client *http.Client, serverURL, token string) (string, bool) {
	req, err := http.NewRequest("GET", serverURL+"/api/interactions?limit=100", nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	var interactions []struct {
		ID string `json:"id"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&interactions); decodeErr != nil {
		return "", false
	}
	if len(interactions) >= 100 {
		return "100+", true
	}
	return strconv.Itoa(len(interactions)), true
}
