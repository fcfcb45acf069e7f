package destinations

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"tripsculptor/db"
	"tripsculptor/models"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/destinations?type=devotional
func GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if t := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))); t != "" && t != "all" {
		filter["type"] = t
	}

	cursor, err := db.DestinationsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching destinations")
		return
	}
	defer cursor.Close(ctx)

	var results []models.Destination
	if err := cursor.All(ctx, &results); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading destinations")
		return
	}
	if results == nil {
		results = []models.Destination{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  true,
		"results": results,
	})
}

// Seed inserts the curated catalog when the collection is empty, so a fresh
// install serves the browser without any manual step.
func Seed(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := db.DestinationsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Destination seed check failed:", err)
		return
	}
	if count > 0 {
		return
	}

	docs := make([]interface{}, 0, len(catalog))
	for _, d := range catalog {
		d.DestinationID = utils.GetUUID()
		docs = append(docs, d)
	}
	if _, err := db.DestinationsCollection.InsertMany(ctx, docs); err != nil {
		log.Println("Destination seed insert failed:", err)
		return
	}
	log.Printf("Seeded %d destinations", len(docs))
}

var catalog = []models.Destination{
	{
		Name:        "Varanasi",
		State:       "Uttar Pradesh",
		Type:        "devotional",
		BestMonth:   "October - March",
		Rating:      4.8,
		Image:       "https://images.pexels.com/photos/1007426/pexels-photo-1007426.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "One of the world's oldest cities, perfect for spiritual seekers.",
	},
	{
		Name:        "Manali",
		State:       "Himachal Pradesh",
		Type:        "chill",
		BestMonth:   "April - June",
		Rating:      4.7,
		Image:       "https://images.pexels.com/photos/1586298/pexels-photo-1586298.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Scenic hill station with snow-capped mountains and adventure sports.",
	},
	{
		Name:        "Goa",
		State:       "Goa",
		Type:        "chill",
		BestMonth:   "November - February",
		Rating:      4.6,
		Image:       "https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Tropical paradise with pristine beaches and vibrant nightlife.",
	},
	{
		Name:        "Rishikesh",
		State:       "Uttarakhand",
		Type:        "devotional",
		BestMonth:   "September - April",
		Rating:      4.9,
		Image:       "https://images.pexels.com/photos/3601093/pexels-photo-3601093.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Yoga capital of the world, situated on the banks of holy Ganges.",
	},
	{
		Name:        "Jaipur",
		State:       "Rajasthan",
		Type:        "cultural",
		BestMonth:   "October - March",
		Rating:      4.5,
		Image:       "https://images.pexels.com/photos/1603650/pexels-photo-1603650.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Pink City with magnificent palaces and rich Rajasthani culture.",
	},
	{
		Name:        "Munnar",
		State:       "Kerala",
		Type:        "chill",
		BestMonth:   "September - March",
		Rating:      4.8,
		Image:       "https://images.pexels.com/photos/3586966/pexels-photo-3586966.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Tea gardens, misty mountains, and serene backwaters.",
	},
}
