package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tripsculptor/db"
	"tripsculptor/errs"
	"tripsculptor/models"
	"tripsculptor/planner"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/itineraries
func SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var plan models.ItineraryPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.Fail(w, errs.InvalidPayload)
		return
	}
	if strings.TrimSpace(plan.Title) == "" || plan.Days == nil {
		utils.Fail(w, errs.InvalidPayload.With("A plan needs a title and days"))
		return
	}

	saved := models.SavedItinerary{
		ItineraryID: utils.GetUUID(),
		Plan:        plan,
		Breakdown:   planner.Reconcile(&plan),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, saved); err != nil {
		utils.Fail(w, errs.StorageFailure.With("Error inserting itinerary"))
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"status": true,
		"data":   saved,
	})
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := db.ItineraryCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.Fail(w, errs.StorageFailure.With("Error fetching itineraries"))
		return
	}
	defer cursor.Close(ctx)

	var itineraries []models.SavedItinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		utils.Fail(w, errs.StorageFailure.With("Error reading itineraries"))
		return
	}
	if itineraries == nil {
		itineraries = []models.SavedItinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  true,
		"results": itineraries,
	})
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	saved, err := findByID(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.Fail(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status": true,
		"data":   saved,
	})
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	update := bson.M{"$set": bson.M{"deleted": true}}

	result, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": id}, update)
	if err != nil {
		utils.Fail(w, errs.StorageFailure.With("Error deleting itinerary"))
		return
	}
	if result.MatchedCount == 0 {
		utils.Fail(w, errs.ItineraryNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  true,
		"message": "Itinerary deleted successfully",
	})
}

func findByID(ctx context.Context, id string) (*models.SavedItinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"itineraryid": id, "deleted": bson.M{"$ne": true}}

	var saved models.SavedItinerary
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&saved); err != nil {
		return nil, errs.ItineraryNotFound
	}
	return &saved, nil
}
