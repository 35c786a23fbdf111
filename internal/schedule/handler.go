package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/program"
	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=schedule_mocks_test.go -package=schedule_test

type scheduleStore interface {
	Range(ctx context.Context, user string, from, to time.Time, includeUndated bool) ([]Entry, error)
	Append(ctx context.Context, user string, entry Entry) (Entry, error)
	DeleteMatching(ctx context.Context, user, date, lineText string) (int, error)
	ReassignDate(ctx context.Context, user, lineText, newDate string) (bool, error)
	AppendProgram(ctx context.Context, user, date string, lines, groups []string, programName, note string) (int, error)
}

type draftGetter interface {
	Get(ctx context.Context, id string) (program.Draft, bool, error)
}

type AddRequest struct {
	Entry
	TechniqueID string `json:"techniqueId"`
}

type DeleteRequest struct {
	Date string `json:"date"`
	Line string `json:"line"`
}

type AssignRequest struct {
	Line string `json:"line"`
	Date string `json:"date"`
}

type SaveProgramRequest struct {
	DraftID string   `json:"draftId"`
	Date    string   `json:"date"`
	Groups  []string `json:"groups"`
	Program string   `json:"program"`
	Note    string   `json:"note"`
}

type Handler struct {
	store   scheduleStore
	drafts  draftGetter
	catalog *techniques.Catalog
}

func NewHandler(store scheduleStore, drafts draftGetter, catalog *techniques.Catalog) *Handler {
	return &Handler{
		store:   store,
		drafts:  drafts,
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{user}/schedule", handler.HandleList).Methods("GET", "OPTIONS").Name("list-schedule")
	r.HandleFunc("/users/{user}/schedule", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-schedule")
	r.HandleFunc("/users/{user}/schedule", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-schedule")
	r.HandleFunc("/users/{user}/schedule/assign", handler.HandleAssign).Methods("POST", "OPTIONS").Name("assign-schedule")
	r.HandleFunc("/users/{user}/schedule/program", handler.HandleSaveProgram).Methods("POST", "OPTIONS").Name("save-program-schedule")
}

func writeStoreError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, userdir.ErrInvalidUser), errors.Is(err, dates.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pkg.ErrPartialCSV):
		log.Errorf("schedule: %s: %s", action, err)
		http.Error(w, "data file is damaged, refusing to overwrite it", http.StatusConflict)
	default:
		log.Errorf("schedule: %s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

// listBounds reads either view=day|week|month with date, or explicit from/to.
func listBounds(r *http.Request) (from, to time.Time, err error) {
	query := r.URL.Query()
	if view := query.Get("view"); view != "" {
		day, ok := dates.Parse(query.Get("date"))
		if !ok {
			return from, to, dates.ErrInvalidDate
		}
		switch view {
		case "day":
			return dates.Day(day), dates.Day(day), nil
		case "week":
			from, to = dates.WeekRange(day)
			return from, to, nil
		case "month":
			from, to = dates.MonthRange(day)
			return from, to, nil
		default:
			return from, to, errors.New("unknown view")
		}
	}

	if raw := query.Get("from"); raw != "" {
		var ok bool
		if from, ok = dates.Parse(raw); !ok {
			return from, to, dates.ErrInvalidDate
		}
	}
	if raw := query.Get("to"); raw != "" {
		var ok bool
		if to, ok = dates.Parse(raw); !ok {
			return from, to, dates.ErrInvalidDate
		}
	}
	return from, to, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.list")
	defer span.End()

	from, to, err := listBounds(r)
	if err != nil {
		http.Error(w, "invalid range: "+err.Error(), http.StatusBadRequest)
		return
	}
	includeUndated := r.URL.Query().Get("undated") == "true"

	entries, err := handler.store.Range(ctx, mux.Vars(r)["user"], from, to, includeUndated)
	if err != nil {
		writeStoreError(w, err, "list schedule")
		return
	}
	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.add")
	defer span.End()

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add schedule entry, unmarshal json params: %s", err)
		http.Error(w, "invalid schedule entry", http.StatusBadRequest)
		return
	}

	entry := req.Entry
	if req.TechniqueID != "" {
		technique, found := handler.catalog.FindByID(req.TechniqueID)
		if !found {
			http.Error(w, "technique not found", http.StatusNotFound)
			return
		}
		entry.Line = technique.Summary()
		if entry.Type == "" {
			entry.Type = string(technique.Category)
		}
	}
	if strings.TrimSpace(entry.Line) == "" {
		http.Error(w, "line is required", http.StatusBadRequest)
		return
	}

	added, err := handler.store.Append(ctx, mux.Vars(r)["user"], entry)
	if err != nil {
		writeStoreError(w, err, "add schedule entry")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.delete")
	defer span.End()

	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid delete request", http.StatusBadRequest)
		return
	}

	removed, err := handler.store.DeleteMatching(ctx, mux.Vars(r)["user"], req.Date, req.Line)
	if err != nil {
		writeStoreError(w, err, "delete schedule entries")
		return
	}
	pkg.WriteJSON(w, map[string]int{"removed": removed}, http.StatusOK)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.assign")
	defer span.End()

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid assign request", http.StatusBadRequest)
		return
	}

	updated, err := handler.store.ReassignDate(ctx, mux.Vars(r)["user"], req.Line, req.Date)
	if err != nil {
		writeStoreError(w, err, "assign schedule date")
		return
	}
	if !updated {
		http.Error(w, "no undated entry with that line", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, map[string]bool{"updated": true}, http.StatusOK)
}

func (handler *Handler) HandleSaveProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.saveProgram")
	defer span.End()

	var req SaveProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid save program request", http.StatusBadRequest)
		return
	}

	draft, found, err := handler.drafts.Get(ctx, req.DraftID)
	if err != nil {
		log.Errorf("schedule: get draft %s: %s", req.DraftID, err)
		http.Error(w, "get program draft failed", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "program draft not found", http.StatusNotFound)
		return
	}

	written, err := handler.store.AppendProgram(ctx, mux.Vars(r)["user"], req.Date, draft.Lines, req.Groups, req.Program, req.Note)
	if err != nil {
		writeStoreError(w, err, "save program")
		return
	}
	pkg.WriteJSON(w, map[string]int{"written": written}, http.StatusCreated)
}
