package assetservice

import (
	"assetledger/models"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{errors.Wrap(ErrNotFound, "asset 1"), http.StatusNotFound},
		{errors.Wrap(ErrInvalidState, "asset 1"), http.StatusConflict},
		{ErrEmployeeDirectoryUnavailable, http.StatusPreconditionFailed},
		{errors.Wrap(ErrValidation, "bad date"), http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StatusFor(tc.err), tc.err.Error())
	}
}

func TestAssignAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	//mock services
	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	validBody := `{"employeeId":"E1","employeeName":"Asha","assignmentDate":"2024-01-10","assignedBy":"IT Desk","assignedCondition":"New"}`

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceReturn  models.Asset
		mockServiceErr     error
		expectedStatusCode int
	}{
		{
			name:               "success",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceReturn:  models.Asset{ID: "7", Status: models.StatusAssigned, AssignedTo: "Asha"},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid json",
			body:               `{"employeeId":`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown field",
			body:               `{"employeeId":"E1","salary":10}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "validation error",
			body:               `{"employeeId":"E1"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "asset already assigned",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceErr:     errors.Wrap(ErrInvalidState, "asset 7 is not available"),
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:               "asset missing",
			body:               validBody,
			expectServiceCall:  true,
			mockServiceErr:     errors.Wrap(ErrNotFound, "asset 7"),
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/assets/7/assign", bytes.NewBufferString(tc.body))
			req = withURLParams(req, map[string]string{"id": "7"})
			respRecorder := httptest.NewRecorder()

			if tc.expectServiceCall {
				mockService.EXPECT().
					AssignAsset(gomock.Any(), "7", gomock.Any()).
					Return(tc.mockServiceReturn, tc.mockServiceErr)
			}

			handler.AssignAsset(respRecorder, req)

			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)
			if tc.expectedStatusCode == http.StatusCreated {
				var res map[string]interface{}
				err := jsoniter.NewDecoder(respRecorder.Body).Decode(&res)
				assert.NoError(t, err)
				assert.Equal(t, "ASG-7", res["assignmentId"])
			}
		})
	}
}

func TestReturnAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	body := `{"returnDate":"2024-02-09","returnCondition":"Good","receivedBy":"IT Desk"}`
	expectedReq := models.ReturnReq{ReturnDate: "2024-02-09", ReturnCondition: "Good", ReceivedBy: "IT Desk"}

	testCases := []struct {
		name               string
		mockServiceErr     error
		expectedStatusCode int
	}{
		{"success", nil, http.StatusOK},
		{"not assigned", errors.Wrap(ErrInvalidState, "asset 3 is not assigned"), http.StatusConflict},
		{"return before assignment", errors.Wrap(ErrValidation, "return date"), http.StatusBadRequest},
		{"backend failure", errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/assignments/ASG-3/return", bytes.NewBufferString(body))
			req = withURLParams(req, map[string]string{"ref": "ASG-3"})
			respRecorder := httptest.NewRecorder()

			mockService.EXPECT().
				ReturnAsset(gomock.Any(), "ASG-3", expectedReq).
				Return(models.Asset{ID: "3", Status: models.StatusAvailable}, tc.mockServiceErr)

			handler.ReturnAsset(respRecorder, req)

			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)
			if tc.expectedStatusCode == http.StatusOK {
				var res map[string]interface{}
				assert.NoError(t, jsoniter.NewDecoder(respRecorder.Body).Decode(&res))
				assert.Equal(t, "RET-3", res["returnId"])
			}
		})
	}
}

func TestReassignAssetHandlerDirectoryUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	req := httptest.NewRequest(http.MethodPatch, "/api/assignments/ASG-3", bytes.NewBufferString(`{"employeeId":"E2"}`))
	req = withURLParams(req, map[string]string{"ref": "ASG-3"})
	respRecorder := httptest.NewRecorder()

	mockService.EXPECT().
		ReassignAsset(gomock.Any(), "ASG-3", gomock.Any()).
		Return(models.Asset{}, ErrEmployeeDirectoryUnavailable)

	handler.ReassignAsset(respRecorder, req)
	assert.Equal(t, http.StatusPreconditionFailed, respRecorder.Code)
}

func TestSetStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		expectedStatusCode int
	}{
		{"success", `{"status":"Maintenance"}`, true, http.StatusOK},
		{"assigned is not settable", `{"status":"Assigned"}`, false, http.StatusBadRequest},
		{"unknown status", `{"status":"Exploded"}`, false, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/assets/1/status", bytes.NewBufferString(tc.body))
			req = withURLParams(req, map[string]string{"id": "1"})
			respRecorder := httptest.NewRecorder()

			if tc.expectServiceCall {
				mockService.EXPECT().
					SetMaintenanceStatus(gomock.Any(), "1", models.StatusMaintenance).
					Return(models.Asset{ID: "1", Status: models.StatusMaintenance}, nil)
			}

			handler.SetStatus(respRecorder, req)
			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)
		})
	}
}

func TestReportHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	returns := []models.ReturnRow{{ID: "RET-3", AssetID: "3", Duration: "1 month", AssignedCondition: "New"}}
	mockService.EXPECT().ReturnHistory(gomock.Any()).Return(returns, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/returns", nil)
	respRecorder := httptest.NewRecorder()
	handler.GetReturnReport(respRecorder, req)

	assert.Equal(t, http.StatusOK, respRecorder.Code)
	var res map[string][]models.ReturnRow
	assert.NoError(t, jsoniter.NewDecoder(respRecorder.Body).Decode(&res))
	assert.Equal(t, returns, res["returns"])

	mockService.EXPECT().Summary(gomock.Any()).Return(models.AssetSummary{}, errors.New("boom"))
	respRecorder = httptest.NewRecorder()
	handler.GetSummary(respRecorder, httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil))
	assert.Equal(t, http.StatusInternalServerError, respRecorder.Code)
}

func TestMaintenanceHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAssetService(ctrl)
	handler := NewAssetHandler(mockService, nopLogger(ctrl))

	// missing description
	req := httptest.NewRequest(http.MethodPost, "/api/assets/1/maintenance", bytes.NewBufferString(`{"scheduledDate":"2024-01-05"}`))
	req = withURLParams(req, map[string]string{"id": "1"})
	respRecorder := httptest.NewRecorder()
	handler.AddMaintenance(respRecorder, req)
	assert.Equal(t, http.StatusBadRequest, respRecorder.Code)

	mockService.EXPECT().
		AddMaintenanceRecord(gomock.Any(), "1", models.MaintenanceReq{ScheduledDate: "2024-01-05", Description: "Imaging", Status: models.MaintenanceInProgress}).
		Return(models.MaintenanceEntry{ID: "m1", AssetID: "1"}, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/assets/1/maintenance",
		bytes.NewBufferString(`{"scheduledDate":"2024-01-05","description":"Imaging","status":"In Progress"}`))
	req = withURLParams(req, map[string]string{"id": "1"})
	respRecorder = httptest.NewRecorder()
	handler.AddMaintenance(respRecorder, req)
	assert.Equal(t, http.StatusCreated, respRecorder.Code)

	mockService.EXPECT().
		DeleteMaintenanceRecord(gomock.Any(), "1", "m2").
		Return(errors.Wrap(ErrNotFound, "maintenance record m2"))
	req = withURLParams(httptest.NewRequest(http.MethodDelete, "/api/assets/1/maintenance/m2", nil), map[string]string{"id": "1", "recordID": "m2"})
	respRecorder = httptest.NewRecorder()
	handler.DeleteMaintenance(respRecorder, req)
	assert.Equal(t, http.StatusNotFound, respRecorder.Code)
}
