package assetservice

import (
	"assetledger/models"
	"assetledger/providers"
	"assetledger/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type AssetHandler struct {
	Service AssetService
	Logger  providers.ZapLoggerProvider
}

func NewAssetHandler(service AssetService, logger providers.ZapLoggerProvider) *AssetHandler {
	return &AssetHandler{
		Service: service,
		Logger:  logger,
	}
}

// StatusFor maps a service error onto its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrEmployeeDirectoryUnavailable):
		return http.StatusPreconditionFailed
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *AssetHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		h.Logger.GetLogger().Error(message, zap.Error(err))
	}
	utils.RespondError(w, status, err, message)
}

func (h *AssetHandler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.GetAllAssets(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AssetHandler) GetAvailableAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.GetAvailableAssets(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch available assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Service.GetAsset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var req models.AddAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}
	if err := utils.AssetValidityCheck(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.AddAsset(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to add asset")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "asset created successfully",
		"asset":   asset,
	})
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var patch models.AssetPatch
	if err := utils.ParseJSONBody(r, &patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondServiceError(w, err, "failed to update asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAsset(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "failed to delete asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "asset deleted successfully"})
}

func (h *AssetHandler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	var req models.AssignReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.AssignAsset(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to assign asset")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "asset assigned successfully",
		"assignmentId": AssignmentRef(asset.ID),
		"asset":        asset,
	})
}

func (h *AssetHandler) UnassignAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Service.UnassignAsset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to unassign asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.SetMaintenanceStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.respondServiceError(w, err, "failed to set asset status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) ReturnAsset(w http.ResponseWriter, r *http.Request) {
	var req models.ReturnReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	asset, err := h.Service.ReturnAsset(r.Context(), chi.URLParam(r, "ref"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to return asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "asset returned successfully",
		"returnId": ReturnRefPrefix + asset.ID,
		"asset":    asset,
	})
}

func (h *AssetHandler) ReassignAsset(w http.ResponseWriter, r *http.Request) {
	var req models.ReassignReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	asset, err := h.Service.ReassignAsset(r.Context(), chi.URLParam(r, "ref"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update assignment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"assignmentId": AssignmentRef(asset.ID),
		"asset":        asset,
	})
}

func (h *AssetHandler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.MaintenanceHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch maintenance history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"maintenance": records})
}

func (h *AssetHandler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	var req models.MaintenanceReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	record, err := h.Service.AddMaintenanceRecord(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to add maintenance record")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func (h *AssetHandler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	var patch models.MaintenancePatch
	if err := utils.ParseJSONBody(r, &patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "validation error")
		return
	}

	record, err := h.Service.UpdateMaintenanceRecord(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "recordID"), patch)
	if err != nil {
		h.respondServiceError(w, err, "failed to update maintenance record")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func (h *AssetHandler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteMaintenanceRecord(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "recordID"))
	if err != nil {
		h.respondServiceError(w, err, "failed to delete maintenance record")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "maintenance record deleted successfully"})
}

func (h *AssetHandler) GetValuation(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.Service.AssetValuation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to value asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, valuation)
}

func (h *AssetHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.Timeline(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch asset timeline")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"timeline": events})
}

func (h *AssetHandler) GetAssignmentReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.AssignmentHistory(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch assignments")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"assignments": rows})
}

func (h *AssetHandler) GetReturnReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ReturnHistory(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to fetch returns")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"returns": rows})
}

func (h *AssetHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to build summary")
		return
	}
	utils.RespondJSON(w, http.StatusOK, summary)
}
