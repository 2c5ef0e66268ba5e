package assetservice

import (
	"assetledger/models"
	"assetledger/providers"
	"context"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AssetRepository interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, asset models.Asset) (models.Asset, error)
	Update(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetAvailable(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id string) (models.Asset, error)
	Modify(ctx context.Context, fn func(c *Collection) error) error
}

// BlobAssetRepository keeps the whole collection in memory and writes it through to a
// single blob slot after every mutation.
type BlobAssetRepository struct {
	Blob   providers.BlobStoreProvider
	Logger providers.ZapLoggerProvider
	Key    string

	mu     sync.RWMutex
	assets []models.Asset
}

func NewAssetRepository(blob providers.BlobStoreProvider, logger providers.ZapLoggerProvider, key string) *BlobAssetRepository {
	return &BlobAssetRepository{Blob: blob, Logger: logger, Key: key}
}

// Load reads the slot once at startup. A missing or corrupt slot starts an empty
// collection; only a failing backend is an error.
func (r *BlobAssetRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets = []models.Asset{}
	data, err := r.Blob.Load(ctx, r.Key)
	if err != nil {
		if errors.Is(err, providers.ErrBlobNotFound) {
			r.Logger.GetLogger().Info("no persisted assets, starting empty", zap.String("key", r.Key))
			return nil
		}
		return errors.Wrap(err, "failed to load assets")
	}

	var assets []models.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		r.Logger.GetLogger().Warn("persisted assets are corrupt, starting empty", zap.String("key", r.Key), zap.Error(err))
		return nil
	}
	for i := range assets {
		normalize(&assets[i])
		if err := CheckInvariants(assets[i]); err != nil {
			r.Logger.GetLogger().Warn("persisted asset is inconsistent", zap.String("asset_id", assets[i].ID), zap.Error(err))
		}
	}
	r.assets = assets
	r.Logger.GetLogger().Info("assets loaded", zap.Int("count", len(assets)))
	return nil
}

func (r *BlobAssetRepository) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	var created models.Asset
	err := r.Modify(ctx, func(c *Collection) error {
		asset.ID = strings.TrimSpace(asset.ID)
		if asset.ID == "" {
			asset.ID = c.NextID()
		} else if c.Has(asset.ID) {
			return errors.Wrapf(ErrValidation, "asset id %s already exists", asset.ID)
		}

		asset.ClearAssignment()
		asset.ReturnDate = nil
		asset.ReturnCondition = nil
		asset.ReturnReason = nil
		asset.ReturnedBy = nil
		asset.ReturnNotes = nil
		asset.ReturnProcessedDate = nil
		asset.ReturnedByEmployee = nil
		asset.ReturnedByEmployeeID = nil
		asset.ReturnedEntry = nil
		asset.AssignmentHistory = []models.AssignmentEntry{}
		if asset.MaintenanceHistory == nil {
			asset.MaintenanceHistory = []models.MaintenanceEntry{}
		}
		if asset.Quantity < 1 {
			asset.Quantity = 1
		}
		if asset.Status == "" {
			asset.Status = models.StatusAvailable
		}

		c.Add(asset)
		created = asset.Clone()
		return nil
	})
	return created, err
}

// Update shallow-merges patch onto the stored record.
func (r *BlobAssetRepository) Update(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error) {
	var updated models.Asset
	err := r.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(id)
		if err != nil {
			return err
		}
		patch.Apply(asset)
		updated = asset.Clone()
		return nil
	})
	return updated, err
}

func (r *BlobAssetRepository) Delete(ctx context.Context, id string) error {
	return r.Modify(ctx, func(c *Collection) error {
		return c.Remove(id)
	})
}

func (r *BlobAssetRepository) GetAll(_ context.Context) ([]models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.assets), nil
}

func (r *BlobAssetRepository) GetAvailable(_ context.Context) ([]models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := []models.Asset{}
	for _, a := range r.assets {
		if a.Status == models.StatusAvailable {
			available = append(available, a.Clone())
		}
	}
	return available, nil
}

func (r *BlobAssetRepository) GetByID(_ context.Context, id string) (models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return models.Asset{}, errors.Wrapf(ErrNotFound, "asset %s", id)
}

// Modify runs fn against a working copy of the collection. If fn fails nothing changes;
// otherwise the copy replaces the collection and is written through. Writers are
// serialized, so fn sees every earlier mutation.
func (r *BlobAssetRepository) Modify(ctx context.Context, fn func(c *Collection) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Collection{assets: cloneAll(r.assets)}
	if err := fn(c); err != nil {
		return err
	}
	r.assets = c.assets
	r.persist(ctx)
	return nil
}

// persist logs a failed write instead of returning it; memory stays authoritative.
func (r *BlobAssetRepository) persist(ctx context.Context) {
	data, err := json.Marshal(r.assets)
	if err != nil {
		r.Logger.GetLogger().Error("failed to encode assets", zap.Error(err))
		return
	}
	if err := r.Blob.Save(ctx, r.Key, data); err != nil {
		r.Logger.GetLogger().Error("failed to persist assets", zap.String("key", r.Key), zap.Error(err))
	}
}

// Collection is the working copy handed to Modify callbacks.
type Collection struct {
	assets []models.Asset
}

func (c *Collection) Find(id string) (*models.Asset, error) {
	for i := range c.assets {
		if c.assets[i].ID == id {
			return &c.assets[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "asset %s", id)
}

func (c *Collection) Has(id string) bool {
	_, err := c.Find(id)
	return err == nil
}

func (c *Collection) Add(asset models.Asset) {
	c.assets = append(c.assets, asset)
}

func (c *Collection) Remove(id string) error {
	for i := range c.assets {
		if c.assets[i].ID == id {
			c.assets = append(c.assets[:i], c.assets[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "asset %s", id)
}

// NextID is the smallest positive integer not already used as an id.
func (c *Collection) NextID() string {
	used := make(map[string]bool, len(c.assets))
	for _, a := range c.assets {
		used[a.ID] = true
	}
	for n := 1; ; n++ {
		if id := strconv.Itoa(n); !used[id] {
			return id
		}
	}
}

func cloneAll(assets []models.Asset) []models.Asset {
	out := make([]models.Asset, len(assets))
	for i, a := range assets {
		out[i] = a.Clone()
	}
	return out
}

func normalize(a *models.Asset) {
	if a.AssignmentHistory == nil {
		a.AssignmentHistory = []models.AssignmentEntry{}
	}
	if a.MaintenanceHistory == nil {
		a.MaintenanceHistory = []models.MaintenanceEntry{}
	}
	if a.AssignedTo == "" {
		a.AssignedTo = models.Unassigned
	}
}
