package dto

// DashboardResponse captures the management dashboard payload for one period.
type DashboardResponse struct {
	Range         string             `json:"range"`
	Period        PeriodRange        `json:"period"`
	Metrics       DashboardMetrics   `json:"metrics"`
	MonthlySeries []MonthlyPoint    `json:"monthlySeries"`
	PaymentRisk   PaymentRiskSection `json:"paymentRisk"`
	GeneratedAt   string             `json:"generatedAt"`
}

// PeriodRange is the inclusive period expressed as calendar dates.
type PeriodRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Empty bool   `json:"empty"`
}

// DashboardMetrics holds the period counts and money totals. Non-finite totals are null.
type DashboardMetrics struct {
	NewAdmissions int    `json:"newAdmissions"`
	NewHires      int    `json:"newHires"`
	ActiveCourses int    `json:"activeCourses"`
	NewBatches    int    `json:"newBatches"`
	NewLeads      int    `json:"newLeads"`
	Revenue       Amount `json:"revenue"`
	Expenses      Amount `json:"expenses"`
	NetIncome     Amount `json:"netIncome"`
}

// MonthlyPoint is one month of the revenue/expense chart.
type MonthlyPoint struct {
	Month      string `json:"month"`
	Year       int    `json:"year"`
	MonthIndex int    `json:"monthIndex"`
	Revenue    Amount `json:"revenue"`
	Expenses   Amount `json:"expenses"`
	Net        Amount `json:"net"`
}

// PaymentRiskSection lists pending fees that are overdue or due soon.
type PaymentRiskSection struct {
	AsOf          string        `json:"asOf"`
	HorizonDays   int           `json:"horizonDays"`
	Overdue       []RiskPayment `json:"overdue"`
	Upcoming      []RiskPayment `json:"upcoming"`
	OverdueTotal  Amount        `json:"overdueTotal"`
	UpcomingTotal Amount        `json:"upcomingTotal"`
}

// RiskPayment is a pending fee with its distance from today. Days counts days past due for
// overdue entries and days until due for upcoming ones.
type RiskPayment struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	Amount      Amount `json:"amount"`
	DueDate     string `json:"dueDate"`
	Days        int    `json:"days"`
}
