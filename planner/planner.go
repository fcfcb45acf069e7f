package planner

import (
	"encoding/json"
	"log"
	"net/http"

	"tripsculptor/config"
	"tripsculptor/errs"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
)

// Planner owns the generation pipeline: build prompt → call model →
// extract plan → reconcile budget.
type Planner struct {
	client *GeminiClient
}

func New() *Planner {
	return &Planner{
		client: NewGeminiClient(config.Cfg.GeminiAPIKey, config.Cfg.GeminiBaseURL),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// POST /api/ai/generate-itinerary
func (p *Planner) GenerateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, errs.InvalidPayload)
		return
	}

	prompt, err := BuildPrompt(req.Prompt)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	text, err := p.client.Generate(r.Context(), prompt)
	if err != nil {
		log.Println("Error generating itinerary:", err)
		utils.Fail(w, err)
		return
	}

	plan, err := ExtractPlan(text)
	if err != nil {
		log.Println("Error parsing itinerary response:", err)
		utils.Fail(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":    true,
		"data":      plan,
		"breakdown": Reconcile(plan),
	})
}
