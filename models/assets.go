package models

type AssetStatus string

const (
	StatusAvailable   AssetStatus = "Available"
	StatusAssigned    AssetStatus = "Assigned"
	StatusMaintenance AssetStatus = "Maintenance"
	StatusDamaged     AssetStatus = "Damaged"
	StatusLost        AssetStatus = "Lost"
	StatusRetired     AssetStatus = "Retired"
)

// AssetStatuses lists every status in display order.
var AssetStatuses = []AssetStatus{
	StatusAvailable,
	StatusAssigned,
	StatusMaintenance,
	StatusDamaged,
	StatusLost,
	StatusRetired,
}

// Unassigned is the assignedTo placeholder for an asset nobody holds.
const Unassigned = "Unassigned"

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
	MaintenanceCancelled  MaintenanceStatus = "Cancelled"
)

// Asset is the persisted record. The assignment and return fields mirror the latest
// assignment history entry; AssignmentHistory is authoritative when they disagree.
type Asset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Model          string `json:"model"`
	Category       string `json:"category"`
	Department     string `json:"department"`
	Vendor         string `json:"vendor"`
	AccVoucher     string `json:"accVoucher"`
	WarrantyPeriod string `json:"warrantyPeriod"`

	Value            string `json:"value"`
	Quantity         int    `json:"quantity"`
	DepreciationRate int    `json:"depreciationRate"`
	PurchaseDate     string `json:"purchaseDate"`

	Status             AssetStatus `json:"status"`
	AssignedTo         string      `json:"assignedTo"`
	AssignedToID       *string     `json:"assignedToId"`
	AssignmentDate     *string     `json:"assignmentDate"`
	AssignedCondition  *string     `json:"assignedCondition"`
	AssignedBy         *string     `json:"assignedBy"`
	AssignmentNotes    *string     `json:"assignmentNotes"`
	ExpectedReturnDate *string     `json:"expectedReturnDate"`
	AssignmentReason   *string     `json:"assignmentReason"`

	ReturnDate           *string `json:"returnDate"`
	ReturnCondition      *string `json:"returnCondition"`
	ReturnReason         *string `json:"returnReason"`
	ReturnedBy           *string `json:"returnedBy"`
	ReturnNotes          *string `json:"returnNotes"`
	ReturnProcessedDate  *string `json:"returnProcessedDate"`
	ReturnedByEmployee   *string `json:"returnedByEmployee"`
	ReturnedByEmployeeID *string `json:"returnedByEmployeeId"`
	// ReturnedEntry indexes the history entry closed by the last return.
	ReturnedEntry *int `json:"returnedEntry,omitempty"`

	AssignmentHistory  []AssignmentEntry  `json:"assignmentHistory"`
	MaintenanceHistory []MaintenanceEntry `json:"maintenanceHistory"`
}

// AssignmentEntry is one lease of an asset. Return fields stay nil while the lease is open.
type AssignmentEntry struct {
	EmployeeID         string `json:"employeeId"`
	EmployeeName       string `json:"employeeName"`
	AssignmentDate     string `json:"assignmentDate"`
	AssignedCondition  string `json:"assignedCondition"`
	AssignedBy         string `json:"assignedBy"`
	AssignmentNotes    string `json:"assignmentNotes"`
	ExpectedReturnDate string `json:"expectedReturnDate"`
	AssignmentReason   string `json:"assignmentReason"`

	ReturnDate      *string `json:"returnDate"`
	ReturnCondition *string `json:"returnCondition"`
	ReturnReason    *string `json:"returnReason"`
	ReturnedBy      *string `json:"returnedBy"`
	ReturnNotes     *string `json:"returnNotes"`
}

func (e AssignmentEntry) IsOpen() bool {
	return e.ReturnDate == nil
}

type MaintenanceEntry struct {
	ID                  string            `json:"id"`
	AssetID             string            `json:"assetId"`
	AssetName           string            `json:"assetName"`
	ScheduledDate       string            `json:"scheduledDate"`
	CompletedDate       *string           `json:"completedDate"`
	Status              MaintenanceStatus `json:"status"`
	Description         string            `json:"description"`
	MaintenanceProvider string            `json:"maintenanceProvider"`
}

// OpenAssignment returns the index of the open history entry, or -1.
func (a *Asset) OpenAssignment() int {
	for i := len(a.AssignmentHistory) - 1; i >= 0; i-- {
		if a.AssignmentHistory[i].IsOpen() {
			return i
		}
	}
	return -1
}

// LastAssignment returns the most recent history entry, open or closed.
func (a *Asset) LastAssignment() (AssignmentEntry, bool) {
	if len(a.AssignmentHistory) == 0 {
		return AssignmentEntry{}, false
	}
	return a.AssignmentHistory[len(a.AssignmentHistory)-1], true
}

// ClearAssignment resets the denormalized assignee fields. History is untouched.
func (a *Asset) ClearAssignment() {
	a.AssignedTo = Unassigned
	a.AssignedToID = nil
	a.AssignmentDate = nil
	a.AssignedCondition = nil
	a.AssignedBy = nil
	a.AssignmentNotes = nil
	a.ExpectedReturnDate = nil
	a.AssignmentReason = nil
}

// MirrorAssignment copies an entry's assignment side into the denormalized fields.
func (a *Asset) MirrorAssignment(e AssignmentEntry) {
	a.AssignedTo = e.EmployeeName
	a.AssignedToID = StringPtr(e.EmployeeID)
	a.AssignmentDate = StringPtr(e.AssignmentDate)
	a.AssignedCondition = StringPtr(e.AssignedCondition)
	a.AssignedBy = StringPtr(e.AssignedBy)
	a.AssignmentNotes = OptionalString(e.AssignmentNotes)
	a.ExpectedReturnDate = OptionalString(e.ExpectedReturnDate)
	a.AssignmentReason = OptionalString(e.AssignmentReason)
}

func (a Asset) Clone() Asset {
	c := a
	c.AssignedToID = clonePtr(a.AssignedToID)
	c.AssignmentDate = clonePtr(a.AssignmentDate)
	c.AssignedCondition = clonePtr(a.AssignedCondition)
	c.AssignedBy = clonePtr(a.AssignedBy)
	c.AssignmentNotes = clonePtr(a.AssignmentNotes)
	c.ExpectedReturnDate = clonePtr(a.ExpectedReturnDate)
	c.AssignmentReason = clonePtr(a.AssignmentReason)
	c.ReturnDate = clonePtr(a.ReturnDate)
	c.ReturnCondition = clonePtr(a.ReturnCondition)
	c.ReturnReason = clonePtr(a.ReturnReason)
	c.ReturnedBy = clonePtr(a.ReturnedBy)
	c.ReturnNotes = clonePtr(a.ReturnNotes)
	c.ReturnProcessedDate = clonePtr(a.ReturnProcessedDate)
	c.ReturnedByEmployee = clonePtr(a.ReturnedByEmployee)
	c.ReturnedByEmployeeID = clonePtr(a.ReturnedByEmployeeID)
	if a.ReturnedEntry != nil {
		idx := *a.ReturnedEntry
		c.ReturnedEntry = &idx
	}

	if a.AssignmentHistory != nil {
		c.AssignmentHistory = make([]AssignmentEntry, len(a.AssignmentHistory))
		for i, e := range a.AssignmentHistory {
			e.ReturnDate = clonePtr(e.ReturnDate)
			e.ReturnCondition = clonePtr(e.ReturnCondition)
			e.ReturnReason = clonePtr(e.ReturnReason)
			e.ReturnedBy = clonePtr(e.ReturnedBy)
			e.ReturnNotes = clonePtr(e.ReturnNotes)
			c.AssignmentHistory[i] = e
		}
	}
	if a.MaintenanceHistory != nil {
		c.MaintenanceHistory = make([]MaintenanceEntry, len(a.MaintenanceHistory))
		for i, m := range a.MaintenanceHistory {
			m.CompletedDate = clonePtr(m.CompletedDate)
			c.MaintenanceHistory[i] = m
		}
	}
	return c
}

func StringPtr(s string) *string {
	return &s
}

// OptionalString maps "" to nil.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
