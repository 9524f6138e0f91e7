package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/username/matchpulse/src/database"
	"github.com/username/matchpulse/src/logger"
	"github.com/username/matchpulse/src/models"
	"github.com/username/matchpulse/src/services"
	"github.com/username/matchpulse/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
	outputPath    string
}

func NewReportHandler(reportService services.ReportService, outputPath string) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		outputPath:    outputPath,
	}
}

// HandleGetReport serves the most recently generated HTML page. A
// failed run leaves the previous page in place, so this can serve stale
// content by design of the pipeline (last writer wins).
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.outputPath)
}

// HandleGetSummaries returns the latest team summaries and findings as
// JSON, with an ETag computed over the payload.
func (h *ReportHandler) HandleGetSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, findings, ok := h.reportService.LatestSummaries()
	if !ok {
		utils.SendJSONError(w, "no report has been generated yet", http.StatusNotFound)
		return
	}
	if findings == nil {
		findings = []string{}
	}

	payload := map[string]interface{}{
		"summaries": summaries,
		"findings":  findings,
	}

	if etag, err := utils.GenerateETag(payload); err == nil {
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L.Error("Failed to encode summaries response", "error", err)
	}
}

// HandleRefresh re-runs the whole pipeline and reports the run counts.
func (h *ReportHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateReport()
	if err != nil {
		utils.SendJSONError(w, fmt.Sprintf("report generation failed: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Failed to encode refresh response", "error", err)
	}
}

// HandleGetRuns returns recent run history from the database.
func (h *ReportHandler) HandleGetRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := database.RecentRuns(20)
	if err != nil {
		utils.SendJSONError(w, fmt.Sprintf("error querying run history: %v", err), http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []models.ReportRun{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(runs); err != nil {
		logger.L.Error("Failed to encode run history response", "error", err)
	}
}
