package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// ServeHTTP handles POST /mcp/{function_name}. Logical failures — bad body,
// unknown function, missing parameter, missing record, even a panicking
// handler — all come back as a 200 with an {"error": ...} body. That is the
// contract the service's clients rely on; only auth uses real status codes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/mcp/")
	if name == "" || strings.Contains(name, "/") {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("handler panicked",
				zap.String("function", name),
				zap.String("panic", fmt.Sprint(rec)))
			writeJSON(w, http.StatusOK, errorPayload(fmt.Sprint(rec)))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusOK, errorPayload(err.Error()))
		return
	}

	// The body must be a JSON object; the parameter check happens before the
	// function name check, as clients expect.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		h.logger.Warn("invalid request body", zap.String("function", name))
		writeJSON(w, http.StatusOK, errorPayload("Invalid JSON in request body"))
		return
	}

	h.logger.Info("mcp request",
		zap.String("function", name),
		zap.ByteString("parameters", body))

	op, ok := ParseOp(name)
	if !ok {
		writeJSON(w, http.StatusOK, errorPayload(fmt.Sprintf("Function %s not supported", name)))
		return
	}

	writeJSON(w, http.StatusOK, h.Dispatch(r.Context(), op, body))
}
