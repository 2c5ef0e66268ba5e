package models

// AssignmentRow is one currently assigned asset as the assignment table shows it.
type AssignmentRow struct {
	ID                 string `json:"id"`
	AssetID            string `json:"assetId"`
	AssetName          string `json:"assetName"`
	Category           string `json:"category"`
	EmployeeID         string `json:"employeeId"`
	EmployeeName       string `json:"employeeName"`
	AssignmentDate     string `json:"assignmentDate"`
	AssignedCondition  string `json:"assignedCondition"`
	AssignedBy         string `json:"assignedBy"`
	ExpectedReturnDate string `json:"expectedReturnDate"`
	AssignmentReason   string `json:"assignmentReason"`
	Notes              string `json:"notes"`
}

// ReturnRow is the last completed return of an asset.
type ReturnRow struct {
	ID                  string `json:"id"`
	AssetID             string `json:"assetId"`
	AssetName           string `json:"assetName"`
	Category            string `json:"category"`
	EmployeeID          string `json:"employeeId"`
	EmployeeName        string `json:"employeeName"`
	AssignmentDate      string `json:"assignmentDate"`
	AssignedCondition   string `json:"assignedCondition"`
	AssignedBy          string `json:"assignedBy"`
	ReturnDate          string `json:"returnDate"`
	ReturnCondition     string `json:"returnCondition"`
	ReturnReason        string `json:"returnReason"`
	ReceivedBy          string `json:"receivedBy"`
	ReturnNotes         string `json:"returnNotes"`
	ReturnProcessedDate string `json:"returnProcessedDate"`
	Duration            string `json:"duration"`
}

type AssetValuation struct {
	AssetID             string  `json:"assetId"`
	AssetName           string  `json:"assetName"`
	PurchaseDate        string  `json:"purchaseDate"`
	PurchaseAmount      int64   `json:"purchaseAmount"`
	DepreciationRate    int     `json:"depreciationRate"`
	DepreciationPercent int64   `json:"depreciationPercent"`
	BookValue           int64   `json:"bookValue"`
	AgeYears            float64 `json:"ageYears"`
	Age                 string  `json:"age"`
}

type AssetSummary struct {
	TotalAssets        int                 `json:"totalAssets"`
	ByStatus           map[AssetStatus]int `json:"byStatus"`
	TotalPurchaseValue int64               `json:"totalPurchaseValue"`
	TotalBookValue     int64               `json:"totalBookValue"`
}

type TimelineEventType string

const (
	TimelineAssigned    TimelineEventType = "assigned"
	TimelineMaintenance TimelineEventType = "maintenance"
)

// TimelineEvent is one episode in an asset's life; EndDate is empty while it is ongoing.
type TimelineEvent struct {
	EventType TimelineEventType `json:"eventType"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Details   string            `json:"details"`
	AssetID   string            `json:"assetId"`
}
