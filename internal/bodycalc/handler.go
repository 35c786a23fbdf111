package bodycalc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/eragrok/internal/telemetry/tracing"
	"github.com/2beens/eragrok/internal/userdir"
	"github.com/2beens/eragrok/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bodycalc_mocks_test.go -package=bodycalc_test

// weightSource gives the last logged weight of a user.
type weightSource interface {
	LastWeight(ctx context.Context, user string) (float64, bool, error)
}

type NutritionRequest struct {
	WeightKg   float64 `json:"weightKg"`
	Age        int     `json:"age"`
	Sex        string  `json:"sex"`
	HeightCm   float64 `json:"heightCm"`
	Objective  string  `json:"objective"`
	Adjustment string  `json:"adjustment"`
}

type Handler struct {
	weights weightSource
}

func NewHandler(weights weightSource) *Handler {
	return &Handler{
		weights: weights,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/calc/bmi", handler.HandleBMI).Methods("GET", "OPTIONS").Name("calc-bmi")
	r.HandleFunc("/calc/nutrition", handler.HandleNutrition).Methods("POST", "OPTIONS").Name("calc-nutrition")
	r.HandleFunc("/calc/adjustments", handler.HandleAdjustments).Methods("GET", "OPTIONS").Name("calc-adjustments")
}

// HandleBMI reads weight and height; without a weight, the last weight logged
// by the given user is used.
func (handler *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodycalc.bmi")
	defer span.End()

	query := r.URL.Query()
	height, err := strconv.ParseFloat(query.Get("height"), 64)
	if err != nil {
		http.Error(w, "invalid height", http.StatusBadRequest)
		return
	}

	var weight float64
	if rawWeight := query.Get("weight"); rawWeight != "" {
		if weight, err = strconv.ParseFloat(rawWeight, 64); err != nil {
			http.Error(w, "invalid weight", http.StatusBadRequest)
			return
		}
	} else if user := query.Get("user"); user != "" {
		var found bool
		weight, found, err = handler.weights.LastWeight(ctx, user)
		if errors.Is(err, userdir.ErrInvalidUser) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Errorf("bodycalc: last weight of %s: %s", user, err)
			http.Error(w, "get last weight failed", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "no weight logged", http.StatusNotFound)
			return
		}
	} else {
		http.Error(w, "weight or user is required", http.StatusBadRequest)
		return
	}

	result, err := BMI(weight, height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleNutrition(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodycalc.nutrition")
	defer span.End()

	var req NutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid nutrition request", http.StatusBadRequest)
		return
	}
	objective := req.Objective
	if objective == "" {
		objective = ObjectiveFromAdjustment(req.Adjustment)
	}

	plan, err := Nutrition(req.WeightKg, req.Age, req.Sex, objective, req.HeightCm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleAdjustments(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, Adjustments, http.StatusOK)
}
