package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

// ItineraryPDF handles POST /api/itinerary/pdf: same pipeline as plan,
// rendered as a printable A4 document.
func (h *Handler) ItineraryPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Trip to %s", req.Destination))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s", req.Start.Format(dateLayout), req.End.Format(dateLayout)))
	pdf.Ln(12)

	if !itinerary.HasLocalData {
		pdf.Cell(0, 8, "No curated places available for this destination yet.")
	}

	for _, day := range itinerary.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, day.Date)
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		if len(day.Items) == 0 {
			pdf.Cell(0, 7, "  Free day")
			pdf.Ln(7)
		}
		for _, item := range day.Items {
			pdf.Cell(0, 7, fmt.Sprintf("  %s (%d min)", item.Name, item.SuggestedDurationMin))
			pdf.Ln(7)
			if item.Description != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.Cell(0, 5, "    "+item.Description)
				pdf.Ln(6)
				pdf.SetFont("Arial", "", 11)
			}
		}

		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 6, fmt.Sprintf("  Total: %d min", day.TotalMinutes))
		pdf.Ln(10)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+req.Destination+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
