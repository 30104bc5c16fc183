package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// MemoryDatasetRepository serves an in-process dataset. Every Replace bumps the version.
type MemoryDatasetRepository struct {
	mu      sync.RWMutex
	data    models.DashboardDataset
	version uint64
}

// NewMemoryDatasetRepository constructs a repository holding a copy of seed.
func NewMemoryDatasetRepository(seed models.DashboardDataset) *MemoryDatasetRepository {
	repo := &MemoryDatasetRepository{}
	repo.Replace(seed)
	return repo
}

// Replace swaps the held dataset.
func (r *MemoryDatasetRepository) Replace(data models.DashboardDataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = cloneDataset(data)
	r.version++
}

// Load returns a copy of the held dataset.
func (r *MemoryDatasetRepository) Load(context.Context) (*models.DashboardDataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data := cloneDataset(r.data)
	data.Version = r.versionLocked()
	return &data, nil
}

// Version returns the replacement counter.
func (r *MemoryDatasetRepository) Version(context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versionLocked(), nil
}

// Ping always succeeds.
func (r *MemoryDatasetRepository) Ping(context.Context) error {
	return nil
}

func (r *MemoryDatasetRepository) versionLocked() string {
	return "mem-" + strconv.FormatUint(r.version, 10)
}

func cloneDataset(data models.DashboardDataset) models.DashboardDataset {
	return models.DashboardDataset{
		Students:    append([]models.Student(nil), data.Students...),
		Staff:       append([]models.StaffMember(nil), data.Staff...),
		Batches:     append([]models.Batch(nil), data.Batches...),
		Leads:       append([]models.Lead(nil), data.Leads...),
		FeePayments: append([]models.FeePayment(nil), data.FeePayments...),
		Expenses:    append([]models.Expense(nil), data.Expenses...),
	}
}

// SampleDataset builds a small development dataset dated relative to now.
func SampleDataset(now time.Time) models.DashboardDataset {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysAgo := func(n int) *time.Time {
		d := today.AddDate(0, 0, -n)
		return &d
	}
	id := func() string { return uuid.NewString() }

	students := []models.Student{
		{ID: id(), FullName: "Asha Rao", Email: "asha.rao@example.com", Phone: "+91 98450 11001", AdmissionDate: daysAgo(4), CourseIDs: []string{"web-dev"}},
		{ID: id(), FullName: "Vikram Shah", Email: "vikram.shah@example.com", Phone: "+91 98450 11002", AdmissionDate: daysAgo(21), CourseIDs: []string{"data-science", "python"}},
		{ID: id(), FullName: "Meera Iyer", Email: "meera.iyer@example.com", Phone: "+91 98450 11003", AdmissionDate: daysAgo(75), CourseIDs: []string{"web-dev"}},
		{ID: id(), FullName: "Rohan Das", Email: "rohan.das@example.com", Phone: "+91 98450 11004", AdmissionDate: daysAgo(160), CourseIDs: []string{"ui-design"}},
	}
	payments := []models.FeePayment{
		{ID: id(), StudentID: students[0].ID, Amount: 15000, Date: *daysAgo(3), Status: models.PaymentStatusPaid},
		{ID: id(), StudentID: students[1].ID, Amount: 22000, Date: *daysAgo(20), Status: models.PaymentStatusPaid},
		{ID: id(), StudentID: students[2].ID, Amount: 18000, Date: *daysAgo(70), Status: models.PaymentStatusPaid},
		{ID: id(), StudentID: students[2].ID, Amount: 9000, Date: *daysAgo(6), Status: models.PaymentStatusPending},
		{ID: id(), StudentID: students[3].ID, Amount: 12000, Date: *daysAgo(-12), Status: models.PaymentStatusPending},
		{ID: id(), StudentID: students[1].ID, Amount: 11000, Date: *daysAgo(-45), Status: models.PaymentStatusPending},
	}

	return models.DashboardDataset{
		Students: students,
		Staff: []models.StaffMember{
			{ID: id(), FullName: "Lata Menon", Role: "Counsellor", Email: "lata.menon@example.com", JoiningDate: daysAgo(12)},
			{ID: id(), FullName: "Karan Gill", Role: "Instructor", Email: "karan.gill@example.com", JoiningDate: daysAgo(300)},
		},
		Batches: []models.Batch{
			{ID: id(), Name: "Web Dev Evening", CourseID: "web-dev", StartDate: daysAgo(2)},
			{ID: id(), Name: "Data Science Weekend", CourseID: "data-science", StartDate: daysAgo(40)},
		},
		Leads: []models.Lead{
			{ID: id(), FullName: "Neha Kapoor", Phone: "+91 98450 22001", Source: "Website", EnquiryDate: daysAgo(1)},
			{ID: id(), FullName: "Sameer Joshi", Phone: "+91 98450 22002", Source: "Referral", EnquiryDate: daysAgo(15)},
			{ID: id(), FullName: "Pooja Verma", Phone: "+91 98450 22003", Source: "Walk-in", EnquiryDate: daysAgo(50)},
		},
		FeePayments: payments,
		Expenses: []models.Expense{
			{ID: id(), Category: "Rent", Description: "Campus rent", Amount: 20000, Date: *daysAgo(5)},
			{ID: id(), Category: "Marketing", Description: "Social campaign", Amount: 6500, Date: *daysAgo(18)},
			{ID: id(), Category: "Rent", Description: "Campus rent", Amount: 20000, Date: *daysAgo(35)},
		},
	}
}
