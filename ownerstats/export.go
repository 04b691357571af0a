package ownerstats

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"parkwise/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

// GET /api/owner/revenue/pdf/:ownerId
//
// Renders the revenue summary as a downloadable PDF statement.
func (h *Handler) ExportRevenuePDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ownerID := ps.ByName("ownerId")
	if ownerID == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false,
			"message": "Owner ID is required",
		})
		return
	}

	summary, err := h.svc.RevenueSummary(r.Context(), ownerID)
	if err != nil {
		respondFailure(w, "Failed to fetch revenue summary", err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Revenue Statement")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Generated: %s", h.svc.now().Format("2006-01-02 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total revenue: %.2f", summary.Total))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("This month: %.2f", summary.Monthly))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Booking", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Date", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, entry := range summary.Bookings {
		pdf.CellFormat(70, 7, entry.BookingID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", entry.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, entry.Date.Format(time.DateOnly), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		respondFailure(w, "Failed to generate PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=revenue-"+ownerID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
