package logbook

import (
	"context"
	"encoding/json"
	"errors"
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

//go:generate mockgen -source=$GOFILE -destination=logbook_mocks_test.go -package=logbook_test

type logbookStore interface {
	AddNutrition(ctx context.Context, user string, record NutritionRecord) (NutritionRecord, error)
	ListNutrition(ctx context.Context, user string, from, to time.Time) ([]NutritionRecord, error)
	DeleteNutritionAt(ctx context.Context, user string, index int) (bool, error)
	AddCycle(ctx context.Context, user string, record CycleRecord) (CycleRecord, error)
	ListCycle(ctx context.Context, user string, from, to time.Time) ([]CycleRecord, error)
	DeleteCycleAt(ctx context.Context, user string, index int) (bool, error)
}

type Handler struct {
	store logbookStore
}

func NewHandler(store logbookStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{user}/nutrition", handler.HandleListNutrition).Methods("GET", "OPTIONS").Name("list-nutrition")
	r.HandleFunc("/users/{user}/nutrition", handler.HandleAddNutrition).Methods("POST", "OPTIONS").Name("add-nutrition")
	r.HandleFunc("/users/{user}/nutrition/{index}", handler.HandleDeleteNutrition).Methods("DELETE", "OPTIONS").Name("delete-nutrition")
	r.HandleFunc("/users/{user}/cycle", handler.HandleListCycle).Methods("GET", "OPTIONS").Name("list-cycle")
	r.HandleFunc("/users/{user}/cycle", handler.HandleAddCycle).Methods("POST", "OPTIONS").Name("add-cycle")
	r.HandleFunc("/users/{user}/cycle/{index}", handler.HandleDeleteCycle).Methods("DELETE", "OPTIONS").Name("delete-cycle")
}

func writeStoreError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, userdir.ErrInvalidUser),
		errors.Is(err, dates.ErrInvalidDate),
		errors.Is(err, ErrInvalidPhase):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pkg.ErrPartialCSV):
		log.Errorf("logbook: %s: %s", action, err)
		http.Error(w, "data file is damaged, refusing to overwrite it", http.StatusConflict)
	default:
		log.Errorf("logbook: %s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func rangeParams(r *http.Request) (from, to time.Time, err error) {
	for _, p := range []struct {
		key string
		dst *time.Time
	}{{"from", &from}, {"to", &to}} {
		raw := r.URL.Query().Get(p.key)
		if raw == "" {
			continue
		}
		t, ok := dates.Parse(raw)
		if !ok {
			return from, to, dates.ErrInvalidDate
		}
		*p.dst = t
	}
	return from, to, nil
}

func (handler *Handler) HandleListNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.listNutrition")
	defer span.End()

	from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "invalid range", http.StatusBadRequest)
		return
	}
	records, err := handler.store.ListNutrition(ctx, mux.Vars(r)["user"], from, to)
	if err != nil {
		writeStoreError(w, err, "list nutrition")
		return
	}
	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleAddNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.addNutrition")
	defer span.End()

	var record NutritionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid nutrition record", http.StatusBadRequest)
		return
	}
	added, err := handler.store.AddNutrition(ctx, mux.Vars(r)["user"], record)
	if err != nil {
		writeStoreError(w, err, "add nutrition")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.deleteNutrition")
	defer span.End()

	handler.deleteAt(ctx, w, r, handler.store.DeleteNutritionAt, "delete nutrition")
}

func (handler *Handler) HandleListCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.listCycle")
	defer span.End()

	from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "invalid range", http.StatusBadRequest)
		return
	}
	records, err := handler.store.ListCycle(ctx, mux.Vars(r)["user"], from, to)
	if err != nil {
		writeStoreError(w, err, "list cycle")
		return
	}
	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleAddCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.addCycle")
	defer span.End()

	var record CycleRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid cycle record", http.StatusBadRequest)
		return
	}
	added, err := handler.store.AddCycle(ctx, mux.Vars(r)["user"], record)
	if err != nil {
		writeStoreError(w, err, "add cycle")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.deleteCycle")
	defer span.End()

	handler.deleteAt(ctx, w, r, handler.store.DeleteCycleAt, "delete cycle")
}

func (handler *Handler) deleteAt(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	deleteFn func(context.Context, string, int) (bool, error),
	action string,
) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	deleted, err := deleteFn(ctx, mux.Vars(r)["user"], index)
	if err != nil {
		writeStoreError(w, err, action)
		return
	}
	if !deleted {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, map[string]int{"deleted": index}, http.StatusOK)
}
