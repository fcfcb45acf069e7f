package hotels

import (
	"log"
	"net/http"
	"strings"

	"tripsculptor/config"
	"tripsculptor/errs"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
)

// Search proxies the two-step Makcorps lookup behind one endpoint.
type Search struct {
	client *Client
}

func New() *Search {
	return &Search{
		client: NewClient(config.Cfg.MakcorpsAPIKey, config.Cfg.MakcorpsBaseURL),
	}
}

// GET /api/hotels/search?destination=CityName
func (s *Search) SearchHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		utils.Fail(w, errs.DestinationRequired)
		return
	}

	cityID, err := s.client.CityID(r.Context(), destination)
	if err != nil {
		log.Println("Makcorps mapping error for", destination, ":", err)
		utils.Fail(w, err)
		return
	}

	raws, err := s.client.SearchByCityID(r.Context(), cityID)
	if err != nil {
		log.Println("Makcorps hotel search error for city", cityID, ":", err)
		utils.Fail(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  true,
		"results": NormalizeAll(raws, destination),
	})
}
