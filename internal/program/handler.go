package program

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/eragrok/internal/dates"
	"github.com/2beens/eragrok/internal/techniques"
	"github.com/2beens/eragrok/internal/telemetry/metrics"
	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=drafts_mocks_test.go -package=program_test

type draftStore interface {
	Save(ctx context.Context, draft Draft) (Draft, error)
	Get(ctx context.Context, id string) (Draft, bool, error)
}

type GenerateRequest struct {
	Mode        string   `json:"mode"`
	Date        string   `json:"date"`
	Categories  []string `json:"categories"`
	WeekendMode string   `json:"weekendMode"`
}

type DraftResponse struct {
	Draft
	Weeks []WeekBlock `json:"weeks"`
}

type Handler struct {
	generator      *Generator
	exporter       *XLSXExporter
	drafts         draftStore
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(generator *Generator, exporter *XLSXExporter, drafts draftStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		generator:      generator,
		exporter:       exporter,
		drafts:         drafts,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router, generateMiddleware ...mux.MiddlewareFunc) {
	var generate http.Handler = http.HandlerFunc(handler.HandleGenerate)
	for i := len(generateMiddleware) - 1; i >= 0; i-- {
		generate = generateMiddleware[i](generate)
	}

	r.Handle("/programs", generate).Methods("POST", "OPTIONS").Name("generate-program")
	r.HandleFunc("/programs/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}/export.xlsx", handler.HandleExportXLSX).Methods("GET", "OPTIONS").Name("export-program")
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.generate")
	defer span.End()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("generate program, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mode, err := ParseMode(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	weekendMode, err := ParseWeekendMode(req.WeekendMode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	anchor := dates.Day(handler.now())
	if req.Date != "" {
		parsed, ok := dates.Parse(req.Date)
		if !ok {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		anchor = parsed
	}

	var categories []techniques.Category
	for _, raw := range req.Categories {
		cat, err := techniques.ParseCategory(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		categories = append(categories, cat)
	}

	span.SetAttributes(
		attribute.String("mode", string(mode)),
		attribute.String("anchor", dates.Format(anchor)),
	)

	lines, err := handler.generator.Generate(ctx, mode, anchor, categories, weekendMode)
	if errors.Is(err, ErrNoCategories) || errors.Is(err, ErrEmptyPool) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("generate %s program: %s", mode, err)
		http.Error(w, "generate program failed", http.StatusInternalServerError)
		return
	}

	draft, err := handler.drafts.Save(ctx, Draft{
		Mode:        mode,
		Anchor:      dates.Format(anchor),
		WeekendMode: weekendMode,
		Lines:       lines,
		CreatedAt:   handler.now().UTC(),
	})
	if err != nil {
		log.Errorf("save %s program draft: %s", mode, err)
		if errors.Is(err, ErrDraftTooLarge) {
			http.Error(w, "program too large to keep as a draft", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "save program draft failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterProgramsGenerated.WithLabelValues(string(mode)).Inc()
	log.Debugf("%s program generated from %s: draft %s", mode, dates.Format(anchor), draft.ID)

	pkg.WriteJSON(w, DraftResponse{
		Draft: draft,
		Weeks: SplitWeeks(draft.Lines),
	}, http.StatusCreated)
}

func (handler *Handler) draftFromRequest(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	id := mux.Vars(r)["id"]
	draft, found, err := handler.drafts.Get(r.Context(), id)
	if err != nil {
		log.Errorf("get program draft %s: %s", id, err)
		http.Error(w, "get program failed", http.StatusInternalServerError)
		return Draft{}, false
	}
	if !found {
		http.Error(w, "program not found", http.StatusNotFound)
		return Draft{}, false
	}
	return draft, true
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	draft, ok := handler.draftFromRequest(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, DraftResponse{
		Draft: draft,
		Weeks: SplitWeeks(draft.Lines),
	}, http.StatusOK)
}

func (handler *Handler) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.export_xlsx")
	defer span.End()

	draft, ok := handler.draftFromRequest(w, r)
	if !ok {
		return
	}

	fullNotes, _ := strconv.ParseBool(r.URL.Query().Get("fullNotes"))
	var buf bytes.Buffer
	if err := handler.exporter.Export(ctx, draft.Lines, fullNotes, &buf); err != nil {
		log.Errorf("export program %s: %s", draft.ID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="programme_%s.xlsx"`, draft.ID))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XLSX, buf.Bytes())
}
