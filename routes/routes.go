package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"tripsculptor/destinations"
	"tripsculptor/hotels"
	"tripsculptor/itinerary"
	"tripsculptor/maps"
	"tripsculptor/planner"
	"tripsculptor/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAIRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, p *planner.Planner) {
	// generation hits a paid model API, so it is the one rate-limited route
	router.POST("/api/ai/generate-itinerary", rateLimiter.Limit(p.GenerateItinerary))
}

func AddHotelRoutes(router *httprouter.Router, s *hotels.Search) {
	router.GET("/api/hotels/search", s.SearchHotels)
}

func AddMapRoutes(router *httprouter.Router, g *maps.Geocoder) {
	router.GET("/api/maps/geocode", g.Geocode)
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.POST("/api/itineraries", itinerary.SaveItinerary)
	router.GET("/api/itineraries", itinerary.GetItineraries)
	router.GET("/api/itineraries/:id", itinerary.GetItinerary)
	router.DELETE("/api/itineraries/:id", itinerary.DeleteItinerary)
	router.GET("/api/itineraries/:id/pdf", itinerary.ExportPDF)
	router.GET("/api/itineraries/:id/qr", itinerary.ShareQR)
}

func AddDestinationRoutes(router *httprouter.Router) {
	router.GET("/api/destinations", destinations.GetDestinations)
}

// AddStaticRoutes serves the built client bundle with an SPA fallback:
// unknown non-API paths get index.html so client-side navigation works.
func AddStaticRoutes(router *httprouter.Router, distDir string) {
	fileServer := http.FileServer(http.Dir(distDir))

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(distDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(distDir, "index.html"))
	})
}
