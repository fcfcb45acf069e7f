package itinerary

import (
	"bytes"
	"fmt"
	"net/http"

	"tripsculptor/models"
	"tripsculptor/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// shareLink is the payload encoded into share QR codes; it points at the
// saved plan resource on whatever host served the request.
func shareLink(r *http.Request, id string) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/api/itineraries/%s", scheme, r.Host, id)
}

// GET /api/itineraries/:id/qr
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := findByID(r.Context(), id); err != nil {
		utils.Fail(w, err)
		return
	}

	png, err := qrcode.Encode(shareLink(r, id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GET /api/itineraries/:id/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	saved, err := findByID(r.Context(), id)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	qrPNG, err := qrcode.Encode(shareLink(r, id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := buildPlanPDF(saved, qrPNG)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+id+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// buildPlanPDF lays out the day-by-day plan with its cost breakdown.
// Core fonts are cp1252 only, so amounts are prefixed "Rs." instead of the
// rupee sign.
func buildPlanPDF(saved *models.SavedItinerary, qrPNG []byte) *gofpdf.Fpdf {
	plan := saved.Plan

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, plan.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	if plan.StartDate != "" || plan.EndDate != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Dates: %s to %s", plan.StartDate, plan.EndDate))
		pdf.Ln(7)
	}
	if plan.TotalBudget > 0 {
		pdf.Cell(0, 7, fmt.Sprintf("Declared budget: Rs.%.0f", plan.TotalBudget))
		pdf.Ln(7)
	}
	if !plan.Feasible() {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, "Note: this plan was marked not feasible")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		if plan.Reason != "" {
			pdf.MultiCell(0, 6, "Reason: "+plan.Reason, "", "L", false)
		}
	}
	pdf.Ln(3)

	for _, day := range plan.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.Day, day.Location))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, act := range day.Activities {
			line := fmt.Sprintf("  - %s (Rs.%.0f)", act.Activity, act.Cost)
			if act.Note != "" {
				line += " - " + act.Note
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		if day.Accommodation != "" {
			pdf.MultiCell(0, 5, fmt.Sprintf("  Stay: %s (Rs.%.0f)", day.Accommodation, day.AccommodationCost), "", "L", false)
		}
		if day.Meals != "" {
			pdf.MultiCell(0, 5, fmt.Sprintf("  Meals: %s (Rs.%.0f)", day.Meals, day.MealsCost), "", "L", false)
		}
		if day.TransportCost > 0 || day.TransportNote != "" {
			pdf.MultiCell(0, 5, fmt.Sprintf("  Transport: Rs.%.0f %s", day.TransportCost, day.TransportNote), "", "L", false)
		}
		pdf.Ln(2)
	}

	b := saved.Breakdown
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Cost breakdown")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Activities: Rs.%.0f", b.Activities))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Accommodation: Rs.%.0f", b.Accommodation))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Meals: Rs.%.0f", b.Meals))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Transport: Rs.%.0f", b.Transport))
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	verdict := "over budget"
	if b.UnderBudget {
		verdict = "under budget"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total: Rs.%.0f (%s)", b.Total, verdict))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 35, 35, false, imageOpts, 0, "")

	return pdf
}
