package employee

import (
	"assetledger/models"
	"assetledger/providers"
	"assetledger/utils"
	"net/http"

	"go.uber.org/zap"
)

// Registry is the part of the engine that owns the directory snapshot.
type Registry interface {
	SetEmployees(employees []models.Employee)
	Employees() []models.Employee
}

type EmployeeHandler struct {
	Registry Registry
	Logger   providers.ZapLoggerProvider
}

func NewEmployeeHandler(registry Registry, logger providers.ZapLoggerProvider) *EmployeeHandler {
	return &EmployeeHandler{
		Registry: registry,
		Logger:   logger,
	}
}

func (h *EmployeeHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"employees": h.Registry.Employees()})
}

// PutEmployees replaces the whole directory snapshot.
func (h *EmployeeHandler) PutEmployees(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeesReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid employee input")
		return
	}

	h.Registry.SetEmployees(req.Employees)
	h.Logger.GetLogger().Debug("employee directory replaced", zap.Int("count", len(req.Employees)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "employee directory updated",
		"count":   len(req.Employees),
	})
}
