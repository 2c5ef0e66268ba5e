package server

import (
	"assetledger/models"
	"assetledger/providers"
	blobprovider "assetledger/providers/blobProvider"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockConfig := providers.NewMockConfigProvider(ctrl)
	mockConfig.EXPECT().GetAppEnv().Return("test").AnyTimes()
	mockConfig.EXPECT().GetBlobDriver().Return(blobprovider.DriverMemory).AnyTimes()
	mockConfig.EXPECT().GetBlobKey().Return("assets").AnyTimes()
	mockConfig.EXPECT().GetDefaultDepreciationRate().Return(20).AnyTimes()

	srv, err := ServerInit(context.Background(), mockConfig)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.InjectRoutes())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, method, url, body string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var res map[string]interface{}
	_ = jsoniter.NewDecoder(resp.Body).Decode(&res)
	return resp.StatusCode, res
}

func TestLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status, _ := call(t, http.MethodPost, ts.URL+"/api/assets", `{"name":"Laptop","category":"IT","value":"85,000","purchaseDate":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, status)

	status, res := call(t, http.MethodPost, ts.URL+"/api/assets/1/assign",
		`{"employeeId":"E1","employeeName":"Asha","assignmentDate":"2024-01-10","assignedBy":"IT Desk","assignedCondition":"New"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ASG-1", res["assignmentId"])

	// second assignment conflicts
	status, _ = call(t, http.MethodPost, ts.URL+"/api/assets/1/assign",
		`{"employeeId":"E2","employeeName":"Ravi","assignmentDate":"2024-01-11","assignedBy":"IT Desk","assignedCondition":"New"}`)
	assert.Equal(t, http.StatusConflict, status)

	// directory not supplied yet
	status, _ = call(t, http.MethodPatch, ts.URL+"/api/assignments/ASG-1", `{"employeeId":"E2"}`)
	assert.Equal(t, http.StatusPreconditionFailed, status)

	status, _ = call(t, http.MethodPut, ts.URL+"/api/employees", `{"employees":[{"id":"E2","name":"Ravi"}]}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, http.MethodPatch, ts.URL+"/api/assignments/ASG-1", `{"employeeId":"E2"}`)
	assert.Equal(t, http.StatusOK, status)

	status, res = call(t, http.MethodPost, ts.URL+"/api/assignments/ASG-1/return",
		`{"returnDate":"2024-02-09","returnCondition":"Good","receivedBy":"IT Desk"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "RET-1", res["returnId"])

	status, res = call(t, http.MethodGet, ts.URL+"/api/reports/returns", "")
	require.Equal(t, http.StatusOK, status)
	rows, ok := res["returns"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "1 month", row["duration"])
	assert.Equal(t, "Ravi", row["employeeName"])

	status, _ = call(t, http.MethodGet, ts.URL+"/api/assets/404", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAvailableRouteIsNotAnID(t *testing.T) {
	ts := newTestServer(t)

	call(t, http.MethodPost, ts.URL+"/api/assets", `{"name":"Laptop","category":"IT"}`)
	call(t, http.MethodPost, ts.URL+"/api/assets", `{"name":"Phone","category":"IT","status":"Damaged"}`)

	status, res := call(t, http.MethodGet, ts.URL+"/api/assets/available", "")
	require.Equal(t, http.StatusOK, status)
	assets := res["assets"].([]interface{})
	require.Len(t, assets, 1)
	assert.Equal(t, string(models.StatusAvailable), assets[0].(map[string]interface{})["status"])

	status, res = call(t, http.MethodGet, ts.URL+"/api/reports/summary", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), res["totalAssets"])
}
