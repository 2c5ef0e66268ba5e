package assetservice

import (
	"assetledger/models"
	"assetledger/providers"
	blobprovider "assetledger/providers/blobProvider"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "assets"

func nopLogger(ctrl *gomock.Controller) *providers.MockZapLoggerProvider {
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return mockLogger
}

func newMemoryRepo(t *testing.T) (*BlobAssetRepository, *blobprovider.MemoryBlobStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	blob := blobprovider.NewMemoryBlobStore()
	repo := NewAssetRepository(blob, nopLogger(ctrl), testKey)
	require.NoError(t, repo.Load(context.Background()))
	return repo, blob
}

func TestRepositoryLoad(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		payload       []byte
		loadErr       error
		expectedCount int
		expectErr     bool
	}{
		{
			name:          "missing slot starts empty",
			loadErr:       providers.ErrBlobNotFound,
			expectedCount: 0,
		},
		{
			name:          "corrupt slot starts empty",
			payload:       []byte(`{not json`),
			expectedCount: 0,
		},
		{
			name:          "valid slot is loaded and normalized",
			payload:       []byte(`[{"id":"1","name":"Laptop","status":"Available"},{"id":"2","name":"Phone","status":"Lost"}]`),
			expectedCount: 2,
		},
		{
			name:      "backend failure is returned",
			loadErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBlob := providers.NewMockBlobStoreProvider(ctrl)
			mockBlob.EXPECT().Load(gomock.Any(), testKey).Return(tc.payload, tc.loadErr)

			repo := NewAssetRepository(mockBlob, nopLogger(ctrl), testKey)
			err := repo.Load(ctx)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			assets, _ := repo.GetAll(ctx)
			assert.Len(t, assets, tc.expectedCount)
			for _, a := range assets {
				assert.Equal(t, models.Unassigned, a.AssignedTo)
				assert.NotNil(t, a.AssignmentHistory)
				assert.NotNil(t, a.MaintenanceHistory)
			}
		})
	}
}

func TestRepositoryLoadKeepsInconsistentAssets(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := []byte(`[{"id":"1","name":"Laptop","status":"Assigned","assignedTo":"Asha","assignmentHistory":[]}]`)
	mockBlob := providers.NewMockBlobStoreProvider(ctrl)
	mockBlob.EXPECT().Load(gomock.Any(), testKey).Return(payload, nil)

	core, logs := observer.New(zap.WarnLevel)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.New(core)).AnyTimes()

	repo := NewAssetRepository(mockBlob, mockLogger, testKey)
	require.NoError(t, repo.Load(ctx))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, got.Status)
	assert.True(t, errors.Is(CheckInvariants(got), ErrInvalidState))

	warnings := logs.FilterMessage("persisted asset is inconsistent").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "1", warnings[0].ContextMap()["asset_id"])
}

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo, blob := newMemoryRepo(t)

	first, err := repo.Create(ctx, models.Asset{Name: "Laptop", Category: "IT"})
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, models.StatusAvailable, first.Status)
	assert.Equal(t, models.Unassigned, first.AssignedTo)
	assert.Equal(t, 1, first.Quantity)
	assert.Empty(t, first.AssignmentHistory)

	_, err = repo.Create(ctx, models.Asset{ID: "2", Name: "Monitor"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Asset{ID: "4", Name: "Dock"})
	require.NoError(t, err)

	next, err := repo.Create(ctx, models.Asset{Name: "Mouse"})
	require.NoError(t, err)
	assert.Equal(t, "3", next.ID)

	_, err = repo.Create(ctx, models.Asset{ID: "4", Name: "Duplicate"})
	assert.True(t, errors.Is(err, ErrValidation))

	// every mutation writes the whole collection through
	data, err := blob.Load(ctx, testKey)
	require.NoError(t, err)
	var persisted []models.Asset
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, 4)
}

func TestRepositoryCreateResetsAssignmentFields(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRepo(t)

	created, err := repo.Create(ctx, models.Asset{
		Name:         "Laptop",
		AssignedTo:   "Someone",
		AssignedToID: models.StringPtr("E9"),
		ReturnDate:   models.StringPtr("2024-01-01"),
		AssignmentHistory: []models.AssignmentEntry{
			{EmployeeID: "E9", AssignmentDate: "2024-01-01"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Unassigned, created.AssignedTo)
	assert.Nil(t, created.AssignedToID)
	assert.Nil(t, created.ReturnDate)
	assert.Empty(t, created.AssignmentHistory)
}

func TestRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRepo(t)

	_, err := repo.Create(ctx, models.Asset{Name: "Laptop", Vendor: "Acme", Value: "1000"})
	require.NoError(t, err)

	name := "Laptop Pro"
	updated, err := repo.Update(ctx, "1", models.AssetPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, "Acme", updated.Vendor)
	assert.Equal(t, "1000", updated.Value)

	_, err = repo.Update(ctx, "99", models.AssetPatch{Name: &name})
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, repo.Delete(ctx, "1"))
	_, err = repo.GetByID(ctx, "1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "1"), ErrNotFound))
}

func TestRepositoryGetAvailable(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRepo(t)

	_, _ = repo.Create(ctx, models.Asset{Name: "A"})
	_, _ = repo.Create(ctx, models.Asset{Name: "B", Status: models.StatusMaintenance})
	_, _ = repo.Create(ctx, models.Asset{Name: "C"})

	available, err := repo.GetAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "A", available[0].Name)
	assert.Equal(t, "C", available[1].Name)
}

func TestRepositoryReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRepo(t)
	_, _ = repo.Create(ctx, models.Asset{Name: "Laptop"})

	got, _ := repo.GetByID(ctx, "1")
	got.Name = "changed"
	got.AssignmentHistory = append(got.AssignmentHistory, models.AssignmentEntry{EmployeeID: "E1"})

	again, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, "Laptop", again.Name)
	assert.Empty(t, again.AssignmentHistory)
}

func TestRepositoryModifyRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBlob := providers.NewMockBlobStoreProvider(ctrl)
	mockBlob.EXPECT().Load(gomock.Any(), testKey).Return(nil, providers.ErrBlobNotFound)
	// one save for the create only; the failed modify must not write
	mockBlob.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).Return(nil).Times(1)

	repo := NewAssetRepository(mockBlob, nopLogger(ctrl), testKey)
	require.NoError(t, repo.Load(ctx))
	_, err := repo.Create(ctx, models.Asset{Name: "Laptop"})
	require.NoError(t, err)

	failure := errors.New("boom")
	err = repo.Modify(ctx, func(c *Collection) error {
		a, _ := c.Find("1")
		a.Name = "mutated"
		c.Add(models.Asset{ID: "2"})
		return failure
	})
	assert.Equal(t, failure, err)

	all, _ := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Laptop", all[0].Name)
}

func TestRepositoryPersistFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBlob := providers.NewMockBlobStoreProvider(ctrl)
	mockBlob.EXPECT().Load(gomock.Any(), testKey).Return(nil, providers.ErrBlobNotFound)
	mockBlob.EXPECT().Save(gomock.Any(), testKey, gomock.Any()).Return(errors.New("disk full"))

	repo := NewAssetRepository(mockBlob, nopLogger(ctrl), testKey)
	require.NoError(t, repo.Load(ctx))

	created, err := repo.Create(ctx, models.Asset{Name: "Laptop"})
	assert.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
}

func TestRepositoryRoundTripThroughBlob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	blob := blobprovider.NewMemoryBlobStore()

	repo := NewAssetRepository(blob, nopLogger(ctrl), testKey)
	require.NoError(t, repo.Load(ctx))
	_, _ = repo.Create(ctx, models.Asset{Name: "Laptop", Value: "85,000", PurchaseDate: "2024-01-01"})

	reloaded := NewAssetRepository(blob, nopLogger(ctrl), testKey)
	require.NoError(t, reloaded.Load(ctx))

	before, _ := repo.GetAll(ctx)
	after, _ := reloaded.GetAll(ctx)
	assert.Equal(t, before, after)
}
