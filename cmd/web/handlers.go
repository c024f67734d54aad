package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/repwise/repwise/internal/tools"
)

// healthy responds with a JSON object indicating that the server is healthy.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// toolsIndex lists the registered tool specifications.
func (app *application) toolsIndex(w http.ResponseWriter, r *http.Request) {
	type toolDoc struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	}
	specs := app.registry.Specs()
	docs := make([]toolDoc, 0, len(specs))
	for _, spec := range specs {
		docs = append(docs, toolDoc{
			Name:        string(spec.Name),
			Description: spec.Description,
			Parameters:  spec.Parameters,
		})
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"tools": docs})
}

// toolExecute dispatches a tool by name with the request body as arguments.
func (app *application) toolExecute(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		app.clientError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		app.clientError(w, r, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	result, err := app.registry.Execute(r.Context(), tools.Name(name), body)
	if err != nil {
		if errors.Is(err, tools.ErrToolNotFound) {
			app.clientError(w, r, http.StatusNotFound, err.Error())
			return
		}
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{"result": result})
}

// chatPOST relays a message to the conversational coach. It responds with
// 503 when no OpenAI API key is configured.
func (app *application) chatPOST(w http.ResponseWriter, r *http.Request) {
	if app.chat == nil {
		app.clientError(w, r, http.StatusServiceUnavailable, "chat is not configured")
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		app.clientError(w, r, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := app.chat.Chat(r.Context(), req.Message)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"reply": reply})
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "write response", slog.Any("error", err))
	}
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, map[string]string{"error": message})
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	app.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
