package employee

import (
	"assetledger/models"
	"assetledger/providers"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// directoryRegistry is the smallest Registry, backed straight by a Directory.
type directoryRegistry struct {
	*Directory
}

func (r directoryRegistry) SetEmployees(employees []models.Employee) { r.Set(employees) }
func (r directoryRegistry) Employees() []models.Employee { return r.All() }

func TestPutEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
		expectedCount      int
		expectLoaded       bool
	}{
		{
			name:               "success",
			body:               `{"employees":[{"id":"E1","name":"Asha","department":"Engineering"},{"id":"E2","name":"Ravi"}]}`,
			expectedStatusCode: http.StatusOK,
			expectedCount:      2,
			expectLoaded:       true,
		},
		{
			name:               "empty directory",
			body:               `{"employees":[]}`,
			expectedStatusCode: http.StatusOK,
			expectLoaded:       true,
		},
		{
			name:               "employee without id",
			body:               `{"employees":[{"name":"Asha"}]}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid json",
			body:               `{"employees":`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			registry := directoryRegistry{NewDirectory()}
			handler := NewEmployeeHandler(registry, mockLogger)

			req := httptest.NewRequest(http.MethodPut, "/api/employees", bytes.NewBufferString(tc.body))
			respRecorder := httptest.NewRecorder()
			handler.PutEmployees(respRecorder, req)

			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)
			assert.Equal(t, tc.expectLoaded, registry.Loaded())
			assert.Len(t, registry.All(), tc.expectedCount)
		})
	}
}

func TestGetEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	registry := directoryRegistry{NewDirectory()}
	employees := []models.Employee{{ID: "E1", Name: "Asha"}}
	registry.Set(employees)

	handler := NewEmployeeHandler(registry, mockLogger)
	respRecorder := httptest.NewRecorder()
	handler.GetEmployees(respRecorder, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

	assert.Equal(t, http.StatusOK, respRecorder.Code)
	var res map[string][]models.Employee
	assert.NoError(t, jsoniter.NewDecoder(respRecorder.Body).Decode(&res))
	assert.Equal(t, employees, res["employees"])
}
