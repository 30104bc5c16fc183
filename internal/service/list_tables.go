package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/pkg/currency"
	"github.com/noah-isme/institute-dashboard-api/pkg/table"
)

// entityTable describes how one collection is listed, searched, sorted and exported.
type entityTable[T any] struct {
	title   string
	columns []table.Column[T]
	match   table.MatchFunc[T]
	items   func(data *models.DashboardDataset) []T
	cells   func(item T, money *currency.Formatter) []string
}

func formatOptionalDate(date *time.Time) string {
	if date == nil || date.IsZero() {
		return ""
	}
	return date.Format(dateLayout)
}

var studentTable = entityTable[models.Student]{
	title: "Students",
	columns: []table.Column[models.Student]{
		{Key: "full_name", Label: "Name", Compare: table.By(func(s models.Student) string { return s.FullName }, table.CompareStrings)},
		{Key: "email", Label: "Email", Compare: table.By(func(s models.Student) string { return s.Email }, table.CompareStrings)},
		{Key: "phone", Label: "Phone"},
		{Key: "admission_date", Label: "Admission Date", Compare: table.By(func(s models.Student) *time.Time { return s.AdmissionDate }, table.CompareOptionalTimes)},
		{Key: "courses", Label: "Courses", Compare: table.By(func(s models.Student) int { return len(s.CourseIDs) }, table.CompareInts)},
	},
	match: func(s models.Student, query string) bool {
		return table.ContainsFold(query, s.FullName, s.Email, s.Phone)
	},
	items: func(data *models.DashboardDataset) []models.Student { return data.Students },
	cells: func(s models.Student, _ *currency.Formatter) []string {
		return []string{s.FullName, s.Email, s.Phone, formatOptionalDate(s.AdmissionDate), strings.Join(s.CourseIDs, ", ")}
	},
}

var staffTable = entityTable[models.StaffMember]{
	title: "Staff",
	columns: []table.Column[models.StaffMember]{
		{Key: "full_name", Label: "Name", Compare: table.By(func(s models.StaffMember) string { return s.FullName }, table.CompareStrings)},
		{Key: "role", Label: "Role", Compare: table.By(func(s models.StaffMember) string { return s.Role }, table.CompareStrings)},
		{Key: "email", Label: "Email", Compare: table.By(func(s models.StaffMember) string { return s.Email }, table.CompareStrings)},
		{Key: "joining_date", Label: "Joining Date", Compare: table.By(func(s models.StaffMember) *time.Time { return s.JoiningDate }, table.CompareOptionalTimes)},
	},
	match: func(s models.StaffMember, query string) bool {
		return table.ContainsFold(query, s.FullName, s.Role, s.Email)
	},
	items: func(data *models.DashboardDataset) []models.StaffMember { return data.Staff },
	cells: func(s models.StaffMember, _ *currency.Formatter) []string {
		return []string{s.FullName, s.Role, s.Email, formatOptionalDate(s.JoiningDate)}
	},
}

var batchTable = entityTable[models.Batch]{
	title: "Batches",
	columns: []table.Column[models.Batch]{
		{Key: "name", Label: "Batch", Compare: table.By(func(b models.Batch) string { return b.Name }, table.CompareStrings)},
		{Key: "course_id", Label: "Course", Compare: table.By(func(b models.Batch) string { return b.CourseID }, table.CompareStrings)},
		{Key: "start_date", Label: "Start Date", Compare: table.By(func(b models.Batch) *time.Time { return b.StartDate }, table.CompareOptionalTimes)},
	},
	match: func(b models.Batch, query string) bool {
		return table.ContainsFold(query, b.Name, b.CourseID)
	},
	items: func(data *models.DashboardDataset) []models.Batch { return data.Batches },
	cells: func(b models.Batch, _ *currency.Formatter) []string {
		return []string{b.Name, b.CourseID, formatOptionalDate(b.StartDate)}
	},
}

var leadTable = entityTable[models.Lead]{
	title: "Leads",
	columns: []table.Column[models.Lead]{
		{Key: "full_name", Label: "Name", Compare: table.By(func(l models.Lead) string { return l.FullName }, table.CompareStrings)},
		{Key: "phone", Label: "Phone"},
		{Key: "source", Label: "Source", Compare: table.By(func(l models.Lead) string { return l.Source }, table.CompareStrings)},
		{Key: "enquiry_date", Label: "Enquiry Date", Compare: table.By(func(l models.Lead) *time.Time { return l.EnquiryDate }, table.CompareOptionalTimes)},
	},
	match: func(l models.Lead, query string) bool {
		return table.ContainsFold(query, l.FullName, l.Phone, l.Source)
	},
	items: func(data *models.DashboardDataset) []models.Lead { return data.Leads },
	cells: func(l models.Lead, _ *currency.Formatter) []string {
		return []string{l.FullName, l.Phone, l.Source, formatOptionalDate(l.EnquiryDate)}
	},
}

var paymentTable = entityTable[models.FeePayment]{
	title: "Fee Payments",
	columns: []table.Column[models.FeePayment]{
		{Key: "student_id", Label: "Student", Compare: table.By(func(p models.FeePayment) string { return p.StudentID }, table.CompareStrings)},
		{Key: "amount", Label: "Amount", Compare: table.By(func(p models.FeePayment) float64 { return p.Amount }, table.CompareFloats)},
		{Key: "date", Label: "Date", Compare: table.By(func(p models.FeePayment) time.Time { return p.Date }, table.CompareTimes)},
		{Key: "status", Label: "Status", Compare: table.By(func(p models.FeePayment) string { return string(p.Status) }, table.CompareStrings)},
	},
	match: func(p models.FeePayment, query string) bool {
		return table.ContainsFold(query, p.StudentID, string(p.Status), strconv.FormatFloat(p.Amount, 'f', -1, 64))
	},
	items: func(data *models.DashboardDataset) []models.FeePayment { return data.FeePayments },
	cells: func(p models.FeePayment, money *currency.Formatter) []string {
		return []string{p.StudentID, money.Format(p.Amount), p.Date.Format(dateLayout), string(p.Status)}
	},
}

var expenseTable = entityTable[models.Expense]{
	title: "Expenses",
	columns: []table.Column[models.Expense]{
		{Key: "category", Label: "Category", Compare: table.By(func(e models.Expense) string { return e.Category }, table.CompareStrings)},
		{Key: "description", Label: "Description", Compare: table.By(func(e models.Expense) string { return e.Description }, table.CompareStrings)},
		{Key: "amount", Label: "Amount", Compare: table.By(func(e models.Expense) float64 { return e.Amount }, table.CompareFloats)},
		{Key: "date", Label: "Date", Compare: table.By(func(e models.Expense) time.Time { return e.Date }, table.CompareTimes)},
	},
	match: func(e models.Expense, query string) bool {
		return table.ContainsFold(query, e.Category, e.Description)
	},
	items: func(data *models.DashboardDataset) []models.Expense { return data.Expenses },
	cells: func(e models.Expense, money *currency.Formatter) []string {
		return []string{e.Category, e.Description, money.Format(e.Amount), e.Date.Format(dateLayout)}
	},
}
