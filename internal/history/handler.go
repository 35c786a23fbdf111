package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=history_mocks_test.go -package=history_test

type historyStore interface {
	LoadAll(ctx context.Context, user string) ([]Entry, error)
	InsertFront(ctx context.Context, user string, entry Entry) error
	DeleteAt(ctx context.Context, user string, index int) (bool, error)
	Import(ctx context.Context, user string, data []byte) (int, error)
	Export(ctx context.Context, user string, w io.Writer) error
}

const maxImportSize = 10 << 20

type Handler struct {
	store historyStore
	now   func() time.Time
}

func NewHandler(store historyStore) *Handler {
	return &Handler{
		store: store,
		now:   time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{user}/history", handler.HandleList).Methods("GET", "OPTIONS").Name("list-history")
	r.HandleFunc("/users/{user}/history", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-history")
	r.HandleFunc("/users/{user}/history/import", handler.HandleImport).Methods("POST", "OPTIONS").Name("import-history")
	r.HandleFunc("/users/{user}/history/export", handler.HandleExport).Methods("GET", "OPTIONS").Name("export-history")
	r.HandleFunc("/users/{user}/history/{index}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-history")
}

func writeStoreError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, userdir.ErrInvalidUser) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrCorruptHistory) {
		log.Errorf("history: %s: %s", action, err)
		http.Error(w, "history file is damaged, refusing to overwrite it", http.StatusConflict)
		return
	}
	log.Errorf("history: %s: %s", action, err)
	http.Error(w, action+" failed", http.StatusInternalServerError)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	entries, err := handler.store.LoadAll(ctx, mux.Vars(r)["user"])
	if err != nil {
		writeStoreError(w, err, "list history")
		return
	}
	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.add")
	defer span.End()

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry.Opaque() {
		log.Errorf("add history entry, unmarshal json params: %v", err)
		http.Error(w, "invalid history entry", http.StatusBadRequest)
		return
	}
	if entry.Date == "" {
		entry.Date = dates.FormatTimestamp(handler.now())
	}

	if err := handler.store.InsertFront(ctx, mux.Vars(r)["user"], entry); err != nil {
		writeStoreError(w, err, "add history entry")
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "added", http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete")
	defer span.End()

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}

	deleted, err := handler.store.DeleteAt(ctx, mux.Vars(r)["user"], index)
	if err != nil {
		writeStoreError(w, err, "delete history entry")
		return
	}
	if !deleted {
		http.Error(w, "history entry not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, map[string]int{"deleted": index}, http.StatusOK)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.import")
	defer span.End()

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "read body failed", http.StatusBadRequest)
		return
	}

	imported, err := handler.store.Import(ctx, mux.Vars(r)["user"], data)
	if errors.Is(err, ErrUnrecognizedFormat) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeStoreError(w, err, "import history")
		return
	}
	pkg.WriteJSON(w, map[string]int{"imported": imported}, http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.export")
	defer span.End()

	user := mux.Vars(r)["user"]
	var buf bytes.Buffer
	if err := handler.store.Export(ctx, user, &buf); err != nil {
		writeStoreError(w, err, "export history")
		return
	}

	dirName, _ := userdir.DirName(user)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="historique_%s.json"`, dirName))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, buf.Bytes())
}
