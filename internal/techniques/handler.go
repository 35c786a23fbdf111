package techniques

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	catalog *Catalog
	now     func() time.Time
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{
		catalog: catalog,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/techniques", handler.HandleList).Methods("GET", "OPTIONS").Name("list-techniques")
	r.HandleFunc("/techniques/export.csv", handler.HandleExportCSV).Methods("GET", "OPTIONS").Name("export-techniques")
	r.HandleFunc("/techniques/template", handler.HandleTemplate).Methods("GET", "OPTIONS").Name("technique-template")
	r.HandleFunc("/techniques/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-technique")
	r.HandleFunc("/techniques/{id}/difficulty", handler.HandleDifficulty).Methods("GET", "OPTIONS").Name("technique-difficulty")
}

// HandleList filters by ?program= or by one or more ?category= values (comma separated allowed).
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.techniques.list")
	defer span.End()

	query := r.URL.Query()
	var rawCategories []string
	for _, v := range query["category"] {
		rawCategories = append(rawCategories, strings.Split(v, ",")...)
	}

	var list []Technique
	switch {
	case len(rawCategories) > 0:
		var categories []Category
		for _, raw := range rawCategories {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			cat, err := ParseCategory(raw)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			categories = append(categories, cat)
		}
		list = handler.catalog.FilterByCategories(categories...)
	case query.Get("program") != "":
		list = handler.catalog.FilterByProgram(query.Get("program"))
	default:
		list = handler.catalog.All()
	}
	if list == nil {
		list = []Technique{}
	}

	span.SetAttributes(attribute.Int("count", len(list)))
	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.techniques.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("id", id))

	technique, ok := handler.catalog.FindByID(id)
	if !ok {
		http.Error(w, "technique not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, technique, http.StatusOK)
}

type difficultyResponse struct {
	ID    string `json:"id"`
	Level *int   `json:"level"`
	Color string `json:"color"`
}

func (handler *Handler) HandleDifficulty(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.techniques.difficulty")
	defer span.End()

	id := mux.Vars(r)["id"]
	technique, ok := handler.catalog.FindByID(id)
	if !ok {
		http.Error(w, "technique not found", http.StatusNotFound)
		return
	}

	resp := difficultyResponse{
		ID:    id,
		Color: NoDifficultyColor,
	}
	if level, ok := InferDifficulty(technique); ok {
		resp.Level = &level
		resp.Color = DifficultyColor(level)
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.techniques.export_csv")
	defer span.End()

	var buf bytes.Buffer
	if err := handler.catalog.ExportCSV(&buf); err != nil {
		log.Errorf("export techniques csv: %s", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="techniques.csv"`)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.CSV, buf.Bytes())
}

func (handler *Handler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.techniques.template")
	defer span.End()

	weeks := DefaultTemplateWeeks
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		parsed, err := strconv.Atoi(weeksParam)
		if err != nil || parsed < 1 || parsed > 52 {
			http.Error(w, "invalid weeks", http.StatusBadRequest)
			return
		}
		weeks = parsed
	}

	tmpl := handler.catalog.BuildTemplate(r.URL.Query().Get("program"), weeks, handler.now())
	pkg.WriteJSON(w, tmpl, http.StatusOK)
}
