package models

import "time"

// Period is an inclusive date interval. Start sits at 00:00:00.000 and End at 23:59:59.999 of their
// calendar days. A Period whose Start is after End matches nothing.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Empty reports whether no instant can fall inside the period.
func (p Period) Empty() bool {
	return p.Start.After(p.End)
}

// DashboardDataset bundles the entity collections a dashboard is computed from.
type DashboardDataset struct {
	Students    []Student
	Staff       []StaffMember
	Batches     []Batch
	Leads       []Lead
	FeePayments []FeePayment
	Expenses    []Expense
	// Version changes whenever any collection changes; used to key memoized results.
	Version string
}

// MetricsSnapshot contains period scoped counts and sums.
type MetricsSnapshot struct {
	NewAdmissions int     `json:"new_admissions"`
	NewHires      int     `json:"new_hires"`
	ActiveCourses int     `json:"active_courses"`
	NewBatches    int     `json:"new_batches"`
	NewLeads      int     `json:"new_leads"`
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
}

// NetIncome returns revenue minus expenses.
func (m MetricsSnapshot) NetIncome() float64 {
	return m.Revenue - m.Expenses
}

// MonthlyBucket aggregates one calendar month of revenue and expenses.
type MonthlyBucket struct {
	Label    string     `json:"month"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month_index"`
	Revenue  float64    `json:"revenue"`
	Expenses float64    `json:"expenses"`
}

// PaymentRiskLists splits pending payments into overdue and upcoming, each ordered by date.
type PaymentRiskLists struct {
	Overdue  []FeePayment `json:"overdue"`
	Upcoming []FeePayment `json:"upcoming"`
}
