package assetservice

import (
	"assetledger/dateformat"
	"assetledger/depreciation"
	"assetledger/models"
	"assetledger/utils"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// AssignmentHistory lists every currently assigned asset, read from the current fields.
func (s *assetService) AssignmentHistory(ctx context.Context) ([]models.AssignmentRow, error) {
	assets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := []models.AssignmentRow{}
	for _, a := range assets {
		if a.Status != models.StatusAssigned {
			continue
		}
		rows = append(rows, models.AssignmentRow{
			ID:                 AssignmentRef(a.ID),
			AssetID:            a.ID,
			AssetName:          a.Name,
			Category:           a.Category,
			EmployeeID:         models.Deref(a.AssignedToID),
			EmployeeName:       a.AssignedTo,
			AssignmentDate:     dateformat.ToDisplayForm(models.Deref(a.AssignmentDate)),
			AssignedCondition:  models.Deref(a.AssignedCondition),
			AssignedBy:         models.Deref(a.AssignedBy),
			ExpectedReturnDate: dateformat.ToDisplayForm(models.Deref(a.ExpectedReturnDate)),
			AssignmentReason:   models.Deref(a.AssignmentReason),
			Notes:              models.Deref(a.AssignmentNotes),
		})
	}
	return rows, nil
}

// ReturnHistory lists the last processed return of each asset. Assignment details come
// from the history entry that return closed, since the current fields were cleared.
func (s *assetService) ReturnHistory(ctx context.Context) ([]models.ReturnRow, error) {
	assets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := []models.ReturnRow{}
	for _, a := range assets {
		if a.ReturnDate == nil || a.ReturnProcessedDate == nil {
			continue
		}

		entry, _ := returnedAssignment(a)
		duration := dateformat.Unknown
		if elapsed, ok := dateformat.ElapsedString(entry.AssignmentDate, *a.ReturnDate); ok {
			duration = elapsed.Humanized
		}

		employeeName := models.Deref(a.ReturnedByEmployee)
		if employeeName == "" {
			employeeName = entry.EmployeeName
		}
		employeeID := models.Deref(a.ReturnedByEmployeeID)
		if employeeID == "" {
			employeeID = entry.EmployeeID
		}

		rows = append(rows, models.ReturnRow{
			ID:                  ReturnRefPrefix + a.ID,
			AssetID:             a.ID,
			AssetName:           a.Name,
			Category:            a.Category,
			EmployeeID:          employeeID,
			EmployeeName:        employeeName,
			AssignmentDate:      dateformat.ToDisplayForm(entry.AssignmentDate),
			AssignedCondition:   entry.AssignedCondition,
			AssignedBy:          entry.AssignedBy,
			ReturnDate:          dateformat.ToDisplayForm(*a.ReturnDate),
			ReturnCondition:     models.Deref(a.ReturnCondition),
			ReturnReason:        models.Deref(a.ReturnReason),
			ReceivedBy:          models.Deref(a.ReturnedBy),
			ReturnNotes:         models.Deref(a.ReturnNotes),
			ReturnProcessedDate: dateformat.ToDisplayForm(*a.ReturnProcessedDate),
			Duration:            duration,
		})
	}
	return rows, nil
}

func (s *assetService) MaintenanceHistory(ctx context.Context, assetID string) ([]models.MaintenanceEntry, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return asset.MaintenanceHistory, nil
}

func (s *assetService) AssetValuation(ctx context.Context, assetID string) (models.AssetValuation, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return models.AssetValuation{}, err
	}
	return s.valuate(asset), nil
}

// Summary totals the collection; purchase amounts follow the digits-only amount rule.
func (s *assetService) Summary(ctx context.Context) (models.AssetSummary, error) {
	assets, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.AssetSummary{}, err
	}

	summary := models.AssetSummary{
		TotalAssets: len(assets),
		ByStatus:    make(map[models.AssetStatus]int, len(models.AssetStatuses)),
	}
	for _, st := range models.AssetStatuses {
		summary.ByStatus[st] = 0
	}
	for _, a := range assets {
		summary.ByStatus[a.Status]++
		v := s.valuate(a)
		summary.TotalPurchaseValue += v.PurchaseAmount
		summary.TotalBookValue += v.BookValue
	}
	return summary, nil
}

// Timeline merges assignment and maintenance episodes in start-date order.
func (s *assetService) Timeline(ctx context.Context, assetID string) ([]models.TimelineEvent, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	events := []models.TimelineEvent{}
	for _, e := range asset.AssignmentHistory {
		events = append(events, models.TimelineEvent{
			EventType: models.TimelineAssigned,
			StartDate: dateformat.ToStorageForm(e.AssignmentDate),
			EndDate:   dateformat.ToStorageForm(models.Deref(e.ReturnDate)),
			Details:   fmt.Sprintf("Assigned to %s", e.EmployeeName),
			AssetID:   asset.ID,
		})
	}
	for _, m := range asset.MaintenanceHistory {
		events = append(events, models.TimelineEvent{
			EventType: models.TimelineMaintenance,
			StartDate: dateformat.ToStorageForm(m.ScheduledDate),
			EndDate:   dateformat.ToStorageForm(models.Deref(m.CompletedDate)),
			Details:   m.Description,
			AssetID:   asset.ID,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		ti, okI := dateformat.ParseAmbiguous(events[i].StartDate)
		tj, okJ := dateformat.ParseAmbiguous(events[j].StartDate)
		if okI != okJ {
			return okI
		}
		return okI && ti.Before(tj)
	})
	return events, nil
}

func (s *assetService) valuate(a models.Asset) models.AssetValuation {
	now := s.now()
	amount := utils.ParseAmount(a.Value)
	result := depreciation.Calculate(a.PurchaseDate, amount, a.DepreciationRate, now)

	purchaseDate := dateformat.InvalidDate
	age := dateformat.Unknown
	if purchased, ok := dateformat.Parse(a.PurchaseDate); ok {
		purchaseDate = purchased.Format(dateformat.DisplayLayout)
		age = dateformat.ElapsedBetween(purchased, now).Humanized
	} else if a.PurchaseDate == "" {
		purchaseDate = ""
	}

	return models.AssetValuation{
		AssetID:             a.ID,
		AssetName:           a.Name,
		PurchaseDate:        purchaseDate,
		PurchaseAmount:      amount.IntPart(),
		DepreciationRate:    a.DepreciationRate,
		DepreciationPercent: result.DepreciationPercent,
		BookValue:           result.BookValue,
		AgeYears:            result.AgeYears,
		Age:                 age,
	}
}

// returnedAssignment is the history entry closed by the asset's last return. Assets
// persisted without ReturnedEntry fall back to the latest entry closed on the asset's
// return date by the same receiver.
func returnedAssignment(a models.Asset) (models.AssignmentEntry, bool) {
	if a.ReturnedEntry != nil {
		if idx := *a.ReturnedEntry; idx >= 0 && idx < len(a.AssignmentHistory) {
			return a.AssignmentHistory[idx], true
		}
	}
	for i := len(a.AssignmentHistory) - 1; i >= 0; i-- {
		e := a.AssignmentHistory[i]
		if e.IsOpen() || syntheticClose(e) {
			continue
		}
		if models.Deref(e.ReturnDate) == models.Deref(a.ReturnDate) && models.Deref(e.ReturnedBy) == models.Deref(a.ReturnedBy) {
			return e, true
		}
	}
	return models.AssignmentEntry{}, false
}

func syntheticClose(e models.AssignmentEntry) bool {
	reason := models.Deref(e.ReturnReason)
	return reason == staleOpenReason || strings.HasPrefix(reason, strings.TrimSuffix(reassignedReason, "%s"))
}

// CurrentAssignment derives the open lease from history, which is authoritative over the
// denormalized fields.
func CurrentAssignment(a models.Asset) (models.AssignmentEntry, bool) {
	idx := a.OpenAssignment()
	if idx < 0 {
		return models.AssignmentEntry{}, false
	}
	return a.AssignmentHistory[idx], true
}

// CheckInvariants reports the first inconsistency between status, the assignee fields and
// the assignment history. An administrative unassign legitimately leaves one open entry on
// an available asset, so that case is not reported.
func CheckInvariants(a models.Asset) error {
	open := 0
	for _, e := range a.AssignmentHistory {
		if e.IsOpen() {
			open++
		}
	}
	if open > 1 {
		return errors.Wrapf(ErrInvalidState, "asset %s has %d open assignments", a.ID, open)
	}

	if a.Status == models.StatusAssigned {
		entry, ok := CurrentAssignment(a)
		if !ok {
			return errors.Wrapf(ErrInvalidState, "asset %s is assigned without an open assignment", a.ID)
		}
		if a.AssignedTo != entry.EmployeeName || models.Deref(a.AssignedToID) != entry.EmployeeID {
			return errors.Wrapf(ErrInvalidState, "asset %s assignee does not match its open assignment", a.ID)
		}
		return nil
	}

	if a.AssignedTo != models.Unassigned || a.AssignedToID != nil || a.AssignmentDate != nil {
		return errors.Wrapf(ErrInvalidState, "asset %s is %s but still carries an assignee", a.ID, a.Status)
	}
	return nil
}
