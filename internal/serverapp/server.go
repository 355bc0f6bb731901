package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/auth"
	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/config"
	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/httpmw"
	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/mcp"
	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/task"
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewHandler assembles the full service: a freshly seeded in-memory store,
// the MCP dispatch surface behind basic auth, and the unauthenticated
// metadata and health routes.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cfg := opts.Config

	repo := task.NewMemoryRepo()
	if err := repo.Seed(context.Background(), seedTasks()); err != nil {
		return nil, err
	}

	verifier := auth.NewVerifier(cfg.Auth.Username, cfg.Auth.Password, opts.Logger)
	mcpHandler := mcp.NewHandler(repo, opts.Logger)

	mux := http.NewServeMux()
	mux.Handle("/mcp/", verifier.RequireBasic(mcpHandler))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"name":        cfg.Server.Name,
			"version":     cfg.Server.Version,
			"description": cfg.Server.Description,
			"functions":   mcp.FunctionNames(),
		})
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithCORS,
	), nil
}

// seedTasks returns the two records every fresh store starts with.
func seedTasks() []task.Task {
	due1 := "2025-04-26T12:00:00Z"
	due2 := "2025-04-27T12:00:00Z"
	return []task.Task{
		{
			ID:          "task-001",
			Title:       "Implement MCP server",
			Description: "Create a working MCP server implementation",
			Status:      task.StatusInProgress,
			Priority:    "high",
			CreatedAt:   "2025-04-24T12:00:00Z",
			DueDate:     &due1,
		},
		{
			ID:          "task-002",
			Title:       "Test relay proxy",
			Description: "Test the relay proxy with the MCP server",
			Status:      task.StatusPending,
			Priority:    task.DefaultPriority,
			CreatedAt:   "2025-04-24T12:30:00Z",
			DueDate:     &due2,
		},
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
