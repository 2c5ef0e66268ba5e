package models

type AddAssetReq struct {
	ID               string      `json:"id"`
	Name             string      `json:"name" validate:"required"`
	Model            string      `json:"model"`
	Category         string      `json:"category" validate:"required"`
	Department       string      `json:"department"`
	Vendor           string      `json:"vendor"`
	AccVoucher       string      `json:"accVoucher"`
	WarrantyPeriod   string      `json:"warrantyPeriod"`
	Value            string      `json:"value"`
	Quantity         int         `json:"quantity" validate:"omitempty,min=1"`
	DepreciationRate *int        `json:"depreciationRate" validate:"omitempty,min=0,max=100"`
	PurchaseDate     string      `json:"purchaseDate"`
	Status           AssetStatus `json:"status" validate:"omitempty,oneof=Available Maintenance Damaged Lost Retired"`
}

// AssetPatch is a shallow update: nil fields are left alone.
type AssetPatch struct {
	Name             *string      `json:"name,omitempty"`
	Model            *string      `json:"model,omitempty"`
	Category         *string      `json:"category,omitempty"`
	Department       *string      `json:"department,omitempty"`
	Vendor           *string      `json:"vendor,omitempty"`
	AccVoucher       *string      `json:"accVoucher,omitempty"`
	WarrantyPeriod   *string      `json:"warrantyPeriod,omitempty"`
	Value            *string      `json:"value,omitempty"`
	Quantity         *int         `json:"quantity,omitempty" validate:"omitempty,min=1"`
	DepreciationRate *int         `json:"depreciationRate,omitempty" validate:"omitempty,min=0,max=100"`
	PurchaseDate     *string      `json:"purchaseDate,omitempty"`
	Status           *AssetStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Assigned Maintenance Damaged Lost Retired"`
}

func (p AssetPatch) Apply(a *Asset) {
	setString(&a.Name, p.Name)
	setString(&a.Model, p.Model)
	setString(&a.Category, p.Category)
	setString(&a.Department, p.Department)
	setString(&a.Vendor, p.Vendor)
	setString(&a.AccVoucher, p.AccVoucher)
	setString(&a.WarrantyPeriod, p.WarrantyPeriod)
	setString(&a.Value, p.Value)
	setString(&a.PurchaseDate, p.PurchaseDate)
	if p.Quantity != nil {
		a.Quantity = *p.Quantity
	}
	if p.DepreciationRate != nil {
		a.DepreciationRate = *p.DepreciationRate
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

type AssignReq struct {
	EmployeeID         string `json:"employeeId" validate:"required"`
	EmployeeName       string `json:"employeeName" validate:"required"`
	AssignmentDate     string `json:"assignmentDate" validate:"required"`
	AssignedBy         string `json:"assignedBy" validate:"required"`
	AssignedCondition  string `json:"assignedCondition" validate:"required"`
	ExpectedReturnDate string `json:"expectedReturnDate"`
	AssignmentReason   string `json:"assignmentReason"`
	Notes              string `json:"notes"`
}

type ReturnReq struct {
	ReturnDate      string `json:"returnDate" validate:"required"`
	ReturnCondition string `json:"returnCondition" validate:"required"`
	ReturnReason    string `json:"returnReason"`
	ReceivedBy      string `json:"receivedBy" validate:"required"`
	ReturnNotes     string `json:"returnNotes"`
}

// ReassignReq edits the open assignment. A set AssetID naming another asset moves the
// assignment there instead.
type ReassignReq struct {
	AssetID           *string `json:"assetId,omitempty"`
	EmployeeID        *string `json:"employeeId,omitempty"`
	AssignmentDate    *string `json:"assignmentDate,omitempty"`
	AssignedCondition *string `json:"assignedCondition,omitempty"`
	AssignedBy        *string `json:"assignedBy,omitempty"`
}

type StatusReq struct {
	Status AssetStatus `json:"status" validate:"required,oneof=Available Maintenance Damaged Lost Retired"`
}

type MaintenanceReq struct {
	ScheduledDate       string            `json:"scheduledDate" validate:"required"`
	CompletedDate       *string           `json:"completedDate"`
	Status              MaintenanceStatus `json:"status" validate:"omitempty,oneof=Scheduled 'In Progress' Completed Cancelled"`
	Description         string            `json:"description" validate:"required"`
	MaintenanceProvider string            `json:"maintenanceProvider"`
}

type MaintenancePatch struct {
	ScheduledDate       *string            `json:"scheduledDate,omitempty"`
	CompletedDate       *string            `json:"completedDate,omitempty"`
	Status              *MaintenanceStatus `json:"status,omitempty" validate:"omitempty,oneof=Scheduled 'In Progress' Completed Cancelled"`
	Description         *string            `json:"description,omitempty"`
	MaintenanceProvider *string            `json:"maintenanceProvider,omitempty"`
}

func (p MaintenancePatch) Apply(m *MaintenanceEntry) {
	setString(&m.ScheduledDate, p.ScheduledDate)
	setString(&m.Description, p.Description)
	setString(&m.MaintenanceProvider, p.MaintenanceProvider)
	if p.CompletedDate != nil {
		m.CompletedDate = OptionalString(*p.CompletedDate)
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}

type EmployeesReq struct {
	Employees []Employee `json:"employees" validate:"dive"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
