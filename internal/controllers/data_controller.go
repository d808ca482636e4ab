package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/rentroll"
	"github.com/andrewbantly/leasepeek-server/internal/services"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// 25 MiB, well above any rent roll seen in practice.
const maxUploadBytes = 25 << 20

type DataController struct {
	rentRollService services.RentRollService
}

func NewDataController(rentRollService services.RentRollService) *DataController {
	return &DataController{rentRollService: rentRollService}
}

// Upload ingests a rent roll workbook for the authenticated user.
func (c *DataController) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart form", nil, err,
		)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidFile, "No file was provided", nil, err,
		)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidFile, "Only .xlsx files are supported", nil,
		)
		return
	}

	objectID, err := c.rentRollService.ProcessUpload(r.Context(), userID, header.Filename, file)
	if err != nil {
		if errors.Is(err, rentroll.ErrNoHeaderRow) {
			utils.RespondErrorWithCode(
				w, http.StatusUnprocessableEntity, utils.ErrCodeIngestionFailure,
				"Could not locate a header row in the workbook", nil, err,
			)
			return
		}
		utils.RespondErrorWithCode(
			w, http.StatusUnprocessableEntity, utils.ErrCodeIngestionFailure, "Failed to process workbook", nil, err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.UploadResponse{
		Message:  "Excel file processed successfully",
		ObjectID: objectID,
	})
}

// Read returns the full stored document identified by the objectId query
// parameter.
func (c *DataController) Read(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	objectID := r.URL.Query().Get("objectId")
	if objectID == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing objectId parameter", nil,
		)
		return
	}

	doc, err := c.rentRollService.Read(r.Context(), userID, objectID)
	if err != nil {
		respondDataError(w, err, "Failed to read document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, doc)
}

// UserData lists summary data for every document the user has uploaded.
func (c *DataController) UserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	basics, err := c.rentRollService.ListBasic(r.Context(), userID)
	if err != nil {
		respondDataError(w, err, "Failed to list documents")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UserDataResponse{
		Data:    basics,
		Message: "Data requested by client",
	})
}

func (c *DataController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	objectID := r.URL.Query().Get("objectId")
	if objectID == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing objectId parameter", nil,
		)
		return
	}

	if err := c.rentRollService.Delete(r.Context(), userID, objectID); err != nil {
		respondDataError(w, err, "Failed to delete document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Data deleted successfully"})
}

/* ---------- updater endpoints ---------- */

func (c *DataController) UpdateBasic(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateBasicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.rentRollService.UpdateBasic(r.Context(), userID, req); err != nil {
		respondDataError(w, err, "Failed to update document")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Basic property data updated"})
}

func (c *DataController) UpdateFloorPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateFloorPlansRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.rentRollService.UpdateFloorPlans(r.Context(), userID, req); err != nil {
		respondDataError(w, err, "Failed to update floor plans")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Floor plan details updated"})
}

func (c *DataController) UpdateRenovations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateRenovationsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.rentRollService.UpdateRenovations(r.Context(), userID, req); err != nil {
		respondDataError(w, err, "Failed to update renovations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Renovated floor plans updated"})
}

func (c *DataController) UpdateChargeTypes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateChargeTypesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.rentRollService.UpdateChargeTypes(r.Context(), userID, req); err != nil {
		respondDataError(w, err, "Failed to update charge types")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Charge types updated"})
}

func (c *DataController) UpdateStatuses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateStatusesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.rentRollService.UpdateStatuses(r.Context(), userID, req); err != nil {
		respondDataError(w, err, "Failed to update unit statuses")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Unit status types updated"})
}

/* ---------- helpers ---------- */

func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(utils.CtxKeyUserID).(string)
	if !ok || userID == "" {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing authenticated user", nil,
		)
		return "", false
	}
	return userID, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid request fields", nil, err,
		)
		return false
	}
	return true
}

func respondDataError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrInvalidObjectID):
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid objectId", nil,
		)
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Document not found", nil,
		)
	default:
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, fallback, nil, err,
		)
	}
}
