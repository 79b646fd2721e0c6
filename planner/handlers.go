package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"wayfare/catalog"
	"wayfare/db"
	"wayfare/globals"
	"wayfare/models"
	"wayfare/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler serves itinerary planning over the current catalog snapshot.
type Handler struct {
	Store *catalog.Store
	Opts  Options
}

func NewHandler(store *catalog.Store) *Handler {
	return &Handler{Store: store, Opts: OptionsFromEnv()}
}

// buildFromRaw runs the full pipeline: validate, match destination,
// schedule, format.
func (h *Handler) buildFromRaw(raw RawTripRequest) (*TripRequest, models.Itinerary, *ValidationError) {
	req, verr := Validate(raw, h.Opts)
	if verr != nil {
		return nil, models.Itinerary{}, verr
	}
	candidates := h.Store.Current().ByCity(req.Destination)
	days := Schedule(req, candidates)
	return req, Format(days, len(candidates) > 0), nil
}

// PlanItinerary handles POST /api/itinerary/plan.
func (h *Handler) PlanItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var raw RawTripRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	_, itinerary, verr := h.buildFromRaw(raw)
	if verr != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, verr)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itinerary)
}

// SaveItinerary handles POST /api/itinerary/save. The plan is rebuilt
// server-side so stored schedules always reflect the current catalog.
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var raw RawTripRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req, itinerary, verr := h.buildFromRaw(raw)
	if verr != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, verr)
		return
	}

	saved := models.SavedItinerary{
		ItineraryID: uuid.NewString(),
		UserID:      userID,
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.Start.Format(dateLayout),
		EndDate:     req.End.Format(dateLayout),
		Days:        itinerary.Days,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, saved); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, saved)
}

// GetMyItineraries handles GET /api/itinerary/mine.
func (h *Handler) GetMyItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itineraries, err := utils.FindAndDecode[models.SavedItinerary](ctx, db.ItineraryCollection, bson.M{"user_id": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}
