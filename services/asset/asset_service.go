package assetservice

import (
	"assetledger/dateformat"
	"assetledger/depreciation"
	"assetledger/models"
	"assetledger/providers"
	"assetledger/services/employee"
	"assetledger/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// AssignmentRefPrefix + asset id addresses the current assignment of that asset.
	AssignmentRefPrefix = "ASG-"
	// ReturnRefPrefix + asset id labels the last return of that asset.
	ReturnRefPrefix = "RET-"

	reassignedReason = "Reassigned to asset %s"
	staleOpenReason  = "Closed on reassignment after administrative unassign"
)

//go:generate mockgen -source=asset_service.go -destination=mock_asset_service.go -package=assetservice

type AssetService interface {
	AddAsset(ctx context.Context, req models.AddAssetReq) (models.Asset, error)
	UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	GetAvailableAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (models.Asset, error)

	SetEmployees(employees []models.Employee)
	Employees() []models.Employee

	AssignAsset(ctx context.Context, assetID string, req models.AssignReq) (models.Asset, error)
	ReturnAsset(ctx context.Context, assignmentRef string, req models.ReturnReq) (models.Asset, error)
	UnassignAsset(ctx context.Context, assetID string) (models.Asset, error)
	ReassignAsset(ctx context.Context, assignmentRef string, req models.ReassignReq) (models.Asset, error)
	SetMaintenanceStatus(ctx context.Context, assetID string, status models.AssetStatus) (models.Asset, error)

	AddMaintenanceRecord(ctx context.Context, assetID string, req models.MaintenanceReq) (models.MaintenanceEntry, error)
	UpdateMaintenanceRecord(ctx context.Context, assetID, recordID string, patch models.MaintenancePatch) (models.MaintenanceEntry, error)
	DeleteMaintenanceRecord(ctx context.Context, assetID, recordID string) error

	AssignmentHistory(ctx context.Context) ([]models.AssignmentRow, error)
	ReturnHistory(ctx context.Context) ([]models.ReturnRow, error)
	MaintenanceHistory(ctx context.Context, assetID string) ([]models.MaintenanceEntry, error)
	AssetValuation(ctx context.Context, assetID string) (models.AssetValuation, error)
	Summary(ctx context.Context) (models.AssetSummary, error)
	Timeline(ctx context.Context, assetID string) ([]models.TimelineEvent, error)
}

type assetService struct {
	repo        AssetRepository
	directory   *employee.Directory
	logger      providers.ZapLoggerProvider
	defaultRate int
	now         func() time.Time
}

func NewAssetService(repo AssetRepository, directory *employee.Directory, logger providers.ZapLoggerProvider, defaultRate int) AssetService {
	if defaultRate <= 0 {
		defaultRate = depreciation.DefaultRate
	}
	return &assetService{
		repo:        repo,
		directory:   directory,
		logger:      logger,
		defaultRate: defaultRate,
		now:         time.Now,
	}
}

func AssignmentRef(assetID string) string {
	return AssignmentRefPrefix + assetID
}

// ParseAssignmentRef strips the reference prefix and returns the asset id.
func ParseAssignmentRef(ref string) (string, error) {
	if !strings.HasPrefix(ref, AssignmentRefPrefix) || len(ref) == len(AssignmentRefPrefix) {
		return "", errors.Wrapf(ErrNotFound, "assignment %s", ref)
	}
	return strings.TrimPrefix(ref, AssignmentRefPrefix), nil
}

func (s *assetService) AddAsset(ctx context.Context, req models.AddAssetReq) (models.Asset, error) {
	if req.Status == models.StatusAssigned {
		return models.Asset{}, errors.Wrap(ErrInvalidState, "a new asset cannot start assigned")
	}

	rate := s.defaultRate
	if req.DepreciationRate != nil {
		rate = *req.DepreciationRate
	}

	asset, err := s.repo.Create(ctx, models.Asset{
		ID:               req.ID,
		Name:             req.Name,
		Model:            req.Model,
		Category:         req.Category,
		Department:       req.Department,
		Vendor:           req.Vendor,
		AccVoucher:       req.AccVoucher,
		WarrantyPeriod:   req.WarrantyPeriod,
		Value:            req.Value,
		Quantity:         req.Quantity,
		DepreciationRate: rate,
		PurchaseDate:     req.PurchaseDate,
		Status:           req.Status,
	})
	if err != nil {
		return models.Asset{}, err
	}
	s.logger.GetLogger().Info("asset added", zap.String("asset_id", asset.ID), zap.String("name", asset.Name))
	return asset, nil
}

// UpdateAsset applies a generic edit. Any status may be set except entering or leaving
// Assigned, which only assign and return may do.
func (s *assetService) UpdateAsset(ctx context.Context, id string, patch models.AssetPatch) (models.Asset, error) {
	if patch.Status == nil {
		return s.repo.Update(ctx, id, patch)
	}

	var updated models.Asset
	err := s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(id)
		if err != nil {
			return err
		}
		if (*patch.Status == models.StatusAssigned) != (asset.Status == models.StatusAssigned) {
			return errors.Wrapf(ErrInvalidState, "asset %s: status %s cannot be changed to %s directly", id, asset.Status, *patch.Status)
		}
		patch.Apply(asset)
		updated = asset.Clone()
		return nil
	})
	return updated, err
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.GetLogger().Info("asset deleted", zap.String("asset_id", id))
	return nil
}

func (s *assetService) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.GetAll(ctx)
}

func (s *assetService) GetAvailableAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.GetAvailable(ctx)
}

func (s *assetService) GetAsset(ctx context.Context, id string) (models.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *assetService) SetEmployees(employees []models.Employee) {
	s.directory.Set(employees)
	s.logger.GetLogger().Info("employee directory supplied", zap.Int("count", len(employees)))
}

func (s *assetService) Employees() []models.Employee {
	return s.directory.All()
}

func (s *assetService) AssignAsset(ctx context.Context, assetID string, req models.AssignReq) (models.Asset, error) {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return models.Asset{}, errors.Wrap(ErrValidation, "employee id is required")
	}
	if strings.TrimSpace(req.AssignmentDate) == "" {
		return models.Asset{}, errors.Wrap(ErrValidation, "assignment date is required")
	}

	var assigned models.Asset
	err := s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		if asset.Status != models.StatusAvailable {
			return errors.Wrapf(ErrInvalidState, "asset %s is not available (status %s)", assetID, asset.Status)
		}

		entry := models.AssignmentEntry{
			EmployeeID:         req.EmployeeID,
			EmployeeName:       req.EmployeeName,
			AssignmentDate:     req.AssignmentDate,
			AssignedCondition:  req.AssignedCondition,
			AssignedBy:         req.AssignedBy,
			AssignmentNotes:    req.Notes,
			ExpectedReturnDate: req.ExpectedReturnDate,
			AssignmentReason:   req.AssignmentReason,
		}
		s.openAssignment(asset, entry)
		assigned = asset.Clone()
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	s.logger.GetLogger().Info("asset assigned",
		zap.String("asset_id", assetID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("assignment_date", req.AssignmentDate))
	return assigned, nil
}

// ReturnAsset closes the open assignment addressed by assignmentRef. The assignee is
// snapshotted before the current fields are cleared; the history entry keeps the
// original assignment details.
func (s *assetService) ReturnAsset(ctx context.Context, assignmentRef string, req models.ReturnReq) (models.Asset, error) {
	assetID, err := ParseAssignmentRef(assignmentRef)
	if err != nil {
		return models.Asset{}, err
	}
	if strings.TrimSpace(req.ReturnDate) == "" {
		return models.Asset{}, errors.Wrap(ErrValidation, "return date is required")
	}

	var returned models.Asset
	err = s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		if asset.Status != models.StatusAssigned {
			return errors.Wrapf(ErrInvalidState, "asset %s is not assigned (status %s)", assetID, asset.Status)
		}
		idx := asset.OpenAssignment()
		if idx < 0 {
			return errors.Wrapf(ErrInvalidState, "asset %s has no open assignment", assetID)
		}

		entry := &asset.AssignmentHistory[idx]
		if returnedBeforeAssigned(entry.AssignmentDate, req.ReturnDate) {
			return errors.Wrapf(ErrValidation, "return date %s is before assignment date %s", req.ReturnDate, entry.AssignmentDate)
		}

		asset.ReturnedByEmployee = models.StringPtr(asset.AssignedTo)
		asset.ReturnedByEmployeeID = models.OptionalString(models.Deref(asset.AssignedToID))

		entry.ReturnDate = models.StringPtr(req.ReturnDate)
		entry.ReturnCondition = models.StringPtr(req.ReturnCondition)
		entry.ReturnReason = models.OptionalString(req.ReturnReason)
		entry.ReturnedBy = models.StringPtr(req.ReceivedBy)
		entry.ReturnNotes = models.OptionalString(req.ReturnNotes)

		asset.Status = models.StatusAvailable
		asset.ClearAssignment()
		asset.ReturnDate = models.StringPtr(req.ReturnDate)
		asset.ReturnCondition = models.StringPtr(req.ReturnCondition)
		asset.ReturnReason = models.OptionalString(req.ReturnReason)
		asset.ReturnedBy = models.StringPtr(req.ReceivedBy)
		asset.ReturnNotes = models.OptionalString(req.ReturnNotes)
		asset.ReturnProcessedDate = models.StringPtr(dateformat.Today(s.now()))
		asset.ReturnedEntry = &idx

		returned = asset.Clone()
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	s.logger.GetLogger().Info("asset returned",
		zap.String("asset_id", assetID),
		zap.String("employee_id", models.Deref(returned.ReturnedByEmployeeID)),
		zap.String("return_date", req.ReturnDate))
	return returned, nil
}

// UnassignAsset force-clears the current assignee without recording a return. The open
// history entry is left open; the next assignment closes it.
func (s *assetService) UnassignAsset(ctx context.Context, assetID string) (models.Asset, error) {
	var unassigned models.Asset
	err := s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		if asset.Status != models.StatusAssigned {
			return errors.Wrapf(ErrInvalidState, "asset %s is not assigned (status %s)", assetID, asset.Status)
		}
		asset.Status = models.StatusAvailable
		asset.ClearAssignment()
		unassigned = asset.Clone()
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	s.logger.GetLogger().Warn("asset unassigned administratively, no return recorded", zap.String("asset_id", assetID))
	return unassigned, nil
}

// ReassignAsset edits the open assignment in place, or moves it to req.AssetID when that
// names a different asset. A move closes the source entry and opens a fresh one on the
// target; the source entry is never migrated.
func (s *assetService) ReassignAsset(ctx context.Context, assignmentRef string, req models.ReassignReq) (models.Asset, error) {
	sourceID, err := ParseAssignmentRef(assignmentRef)
	if err != nil {
		return models.Asset{}, err
	}

	if !s.directory.Loaded() {
		return models.Asset{}, ErrEmployeeDirectoryUnavailable
	}

	var emp *models.Employee
	if req.EmployeeID != nil {
		found, err := s.directory.Lookup(*req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return models.Asset{}, errors.Wrapf(ErrNotFound, "employee %s", *req.EmployeeID)
			}
			return models.Asset{}, err
		}
		emp = &found
	}

	targetID := sourceID
	if req.AssetID != nil && strings.TrimSpace(*req.AssetID) != "" {
		targetID = strings.TrimSpace(*req.AssetID)
	}

	var result models.Asset
	err = s.repo.Modify(ctx, func(c *Collection) error {
		source, err := c.Find(sourceID)
		if err != nil {
			return err
		}
		if source.Status != models.StatusAssigned {
			return errors.Wrapf(ErrInvalidState, "asset %s is not assigned (status %s)", sourceID, source.Status)
		}
		idx := source.OpenAssignment()
		if idx < 0 {
			return errors.Wrapf(ErrInvalidState, "asset %s has no open assignment", sourceID)
		}

		edited := applyReassign(source.AssignmentHistory[idx], req, emp)

		if targetID == sourceID {
			source.AssignmentHistory[idx] = edited
			source.MirrorAssignment(edited)
			result = source.Clone()
			return nil
		}

		target, err := c.Find(targetID)
		if err != nil {
			return err
		}
		if target.Status != models.StatusAvailable {
			return errors.Wrapf(ErrInvalidState, "asset %s is not available (status %s)", targetID, target.Status)
		}

		closedOn := dateformat.Today(s.now())
		if req.AssignmentDate != nil {
			closedOn = *req.AssignmentDate
		}
		closeEntry(&source.AssignmentHistory[idx], closedOn, edited.AssignedBy, fmt.Sprintf(reassignedReason, targetID))
		source.Status = models.StatusAvailable
		source.ClearAssignment()

		s.openAssignment(target, edited)
		result = target.Clone()
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	s.logger.GetLogger().Info("assignment edited",
		zap.String("source_asset_id", sourceID),
		zap.String("target_asset_id", targetID),
		zap.String("employee_id", models.Deref(result.AssignedToID)))
	return result, nil
}

// SetMaintenanceStatus overwrites the status directly. Assigned assets must be returned first.
func (s *assetService) SetMaintenanceStatus(ctx context.Context, assetID string, status models.AssetStatus) (models.Asset, error) {
	if status == models.StatusAssigned || !utils.IsAssetStatusValid(status) {
		return models.Asset{}, errors.Wrapf(ErrValidation, "status %q cannot be set directly", status)
	}

	var updated models.Asset
	err := s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		if asset.Status == models.StatusAssigned {
			return errors.Wrapf(ErrInvalidState, "asset %s is assigned, return it first", assetID)
		}
		asset.Status = status
		updated = asset.Clone()
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	s.logger.GetLogger().Info("asset status set", zap.String("asset_id", assetID), zap.String("status", string(status)))
	return updated, nil
}

func (s *assetService) AddMaintenanceRecord(ctx context.Context, assetID string, req models.MaintenanceReq) (models.MaintenanceEntry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return models.MaintenanceEntry{}, errors.Wrap(err, "failed to generate maintenance id")
	}

	var record models.MaintenanceEntry
	err = s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		status := req.Status
		if status == "" {
			status = models.MaintenanceScheduled
		}
		record = models.MaintenanceEntry{
			ID:                  id.String(),
			AssetID:             asset.ID,
			AssetName:           asset.Name,
			ScheduledDate:       req.ScheduledDate,
			Status:              status,
			Description:         req.Description,
			MaintenanceProvider: req.MaintenanceProvider,
		}
		if req.CompletedDate != nil {
			record.CompletedDate = models.OptionalString(*req.CompletedDate)
		}
		asset.MaintenanceHistory = append(asset.MaintenanceHistory, record)
		return nil
	})
	if err != nil {
		return models.MaintenanceEntry{}, err
	}
	return record, nil
}

func (s *assetService) UpdateMaintenanceRecord(ctx context.Context, assetID, recordID string, patch models.MaintenancePatch) (models.MaintenanceEntry, error) {
	var record models.MaintenanceEntry
	err := s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		for i := range asset.MaintenanceHistory {
			if asset.MaintenanceHistory[i].ID == recordID {
				patch.Apply(&asset.MaintenanceHistory[i])
				record = asset.MaintenanceHistory[i]
				return nil
			}
		}
		return errors.Wrapf(ErrNotFound, "maintenance record %s", recordID)
	})
	return record, err
}

func (s *assetService) DeleteMaintenanceRecord(ctx context.Context, assetID, recordID string) error {
	return s.repo.Modify(ctx, func(c *Collection) error {
		asset, err := c.Find(assetID)
		if err != nil {
			return err
		}
		for i := range asset.MaintenanceHistory {
			if asset.MaintenanceHistory[i].ID == recordID {
				asset.MaintenanceHistory = append(asset.MaintenanceHistory[:i], asset.MaintenanceHistory[i+1:]...)
				return nil
			}
		}
		return errors.Wrapf(ErrNotFound, "maintenance record %s", recordID)
	})
}

// openAssignment appends entry as the open lease and mirrors it. A lease left open by an
// administrative unassign is closed first so at most one entry is ever open.
func (s *assetService) openAssignment(asset *models.Asset, entry models.AssignmentEntry) {
	if idx := asset.OpenAssignment(); idx >= 0 {
		closeEntry(&asset.AssignmentHistory[idx], entry.AssignmentDate, entry.AssignedBy, staleOpenReason)
		s.logger.GetLogger().Warn("closed stale open assignment", zap.String("asset_id", asset.ID), zap.Int("entry", idx))
	}
	entry.ReturnDate = nil
	entry.ReturnCondition = nil
	entry.ReturnReason = nil
	entry.ReturnedBy = nil
	entry.ReturnNotes = nil
	asset.AssignmentHistory = append(asset.AssignmentHistory, entry)
	asset.Status = models.StatusAssigned
	asset.MirrorAssignment(entry)
}

func applyReassign(entry models.AssignmentEntry, req models.ReassignReq, emp *models.Employee) models.AssignmentEntry {
	if emp != nil {
		entry.EmployeeID = emp.ID
		entry.EmployeeName = emp.Name
	}
	if req.AssignmentDate != nil {
		entry.AssignmentDate = *req.AssignmentDate
	}
	if req.AssignedCondition != nil {
		entry.AssignedCondition = *req.AssignedCondition
	}
	if req.AssignedBy != nil {
		entry.AssignedBy = *req.AssignedBy
	}
	return entry
}

func closeEntry(entry *models.AssignmentEntry, date, by, reason string) {
	entry.ReturnDate = models.StringPtr(date)
	entry.ReturnCondition = models.StringPtr(entry.AssignedCondition)
	entry.ReturnReason = models.StringPtr(reason)
	entry.ReturnedBy = models.OptionalString(by)
}

func returnedBeforeAssigned(assignmentDate, returnDate string) bool {
	assigned, ok := dateformat.ParseAmbiguous(assignmentDate)
	if !ok {
		return false
	}
	returned, ok := dateformat.ParseAmbiguous(returnDate)
	if !ok {
		return false
	}
	return returned.Before(assigned)
}
