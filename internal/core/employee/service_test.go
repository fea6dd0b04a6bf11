package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	rows       []Row
	schemaInit int
	saveErr    error
	saveErrAt  int
	loadErr    error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{saveErrAt: -1}
}

func (r *fakeEmployeeRepo) EnsureSchema(_ context.Context) error {
	r.schemaInit++
	return nil
}

func (r *fakeEmployeeRepo) Save(_ context.Context, e *Employee) error {
	if r.saveErr != nil && len(r.rows) == r.saveErrAt {
		return r.saveErr
	}
	r.rows = append(r.rows, ToRow(e))
	return nil
}

func (r *fakeEmployeeRepo) LoadAll(_ context.Context) ([]*Employee, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	employees := make([]*Employee, 0, len(r.rows))
	for _, row := range r.rows {
		e, err := FromRow(row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func sampleStaff() []*Employee {
	return []*Employee{
		NewKitchenWorker("Cook1", date(2023, 1, 15), dec("100"), 160),
		NewKitchenWorker("Cook2", date(2023, 2, 20), dec("110"), 170),
		NewWaiter("Waiter1", date(2023, 3, 10), dec("80"), 150, dec("5000")),
		NewWaiter("Waiter2", date(2022, 4, 5), dec("90"), 160, dec("6000")),
		NewManager("Manager", date(2020, 5, 2), dec("20000"), dec("10000")),
		NewJuniorManager("Junior manager", date(2021, 6, 8), dec("18000"), dec("8000")),
	}
}

func TestService_Bootstrap(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, nil, nil)

	for i := 0; i < 2; i++ {
		if err := svc.Bootstrap(context.Background()); err != nil {
			t.Fatalf("Bootstrap returned error: %v", err)
		}
	}
	if repo.schemaInit != 2 {
		t.Fatalf("expected EnsureSchema to be called twice, got %d", repo.schemaInit)
	}
}

func TestService_RegisterAll_ThenPayroll(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: date(2024, 1, 1)}, nil)

	staff := sampleStaff()
	if err := svc.RegisterAll(context.Background(), staff); err != nil {
		t.Fatalf("RegisterAll returned error: %v", err)
	}

	payslips, err := svc.CurrentPayroll(context.Background())
	if err != nil {
		t.Fatalf("CurrentPayroll returned error: %v", err)
	}
	if len(payslips) != len(staff) {
		t.Fatalf("expected %d payslips, got %d", len(staff), len(payslips))
	}

	want := []string{"16000", "18700", "17000", "20400", "60000", "18000"}
	for i, p := range payslips {
		assertSameEmployee(t, staff[i], p.Employee)
		if !p.Pay.Equal(dec(want[i])) {
			t.Errorf("payslip %d: expected pay %s, got %s", i, want[i], p.Pay)
		}
		if p.Summary != staff[i].Describe() {
			t.Errorf("payslip %d: unexpected summary %q", i, p.Summary)
		}
	}

	if total := Total(payslips); !total.Equal(dec("150100")) {
		t.Fatalf("unexpected total %s", total)
	}
}

func TestService_Payroll_ExplicitDate(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: date(2024, 1, 1)}, nil)

	junior := NewJuniorManager("Junior manager", date(2021, 6, 8), dec("18000"), dec("8000"))
	if err := svc.Register(context.Background(), junior); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	payslips, err := svc.Payroll(context.Background(), date(2024, 6, 30))
	if err != nil {
		t.Fatalf("Payroll returned error: %v", err)
	}
	if len(payslips) != 1 || !payslips[0].Pay.Equal(dec("42000")) {
		t.Fatalf("expected june pay 42000, got %+v", payslips)
	}
}

func TestService_Register_Invalid(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, nil, nil)

	if err := svc.Register(context.Background(), nil); !errors.Is(err, ErrNilEmployee) {
		t.Fatalf("expected ErrNilEmployee, got %v", err)
	}
	if err := svc.Register(context.Background(), &Employee{Name: "x"}); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	pointer := &Employee{Name: "Boss", EmploymentDate: date(2020, 5, 2), Rate: dec("20000"), Details: &Manager{Bonus: dec("10000")}}
	if err := svc.Register(context.Background(), pointer); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant for pointer details, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected nothing saved, got %d rows", len(repo.rows))
	}
}

func TestService_RegisterAll_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	repo := newFakeEmployeeRepo()
	repo.saveErr = ErrPersistence
	repo.saveErrAt = 2
	svc := NewService(repo, nil, zap.New(core))

	err := svc.RegisterAll(context.Background(), sampleStaff())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("expected 2 rows saved before failure, got %d", len(repo.rows))
	}
	if logs.FilterMessage("save employee failed").Len() != 1 {
		t.Fatalf("expected failure to be logged once, got %d", logs.Len())
	}
}

func TestService_Payroll_AbortsOnMalformedRow(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.rows = append(repo.rows, ToRow(NewManager("Manager", date(2020, 5, 2), dec("1"), dec("1"))))
	repo.rows = append(repo.rows, Row{Name: "Ghost", EmploymentDate: date(2020, 1, 1), Rate: dec("1"), Kind: "Chef"})
	svc := NewService(repo, nil, nil)

	payslips, err := svc.CurrentPayroll(context.Background())
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if payslips != nil {
		t.Fatalf("expected no payslips on failure, got %d", len(payslips))
	}
}
