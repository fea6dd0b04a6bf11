package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// employeeModel は employees テーブルの GORM モデルです。
// 金額列は SQLite の NUMERIC 型親和性で REAL に丸められないよう TEXT で保存します。
// CHECK 制約は PostgreSQL のマイグレーションと同じ名前と条件です。
type employeeModel struct {
	ID             uint             `gorm:"primaryKey;autoIncrement"`
	Name           string           `gorm:"type:varchar(100);not null"`
	EmploymentDate time.Time        `gorm:"type:date;not null"`
	Rate           decimal.Decimal  `gorm:"type:text;not null"`
	EmployeeType   string           `gorm:"type:varchar(50);not null;check:employees_employee_type_check,employee_type IN ('KitchenWorker', 'Waiter', 'Manager', 'JuniorManager')"`
	HoursWorked    *int             `gorm:"type:integer;check:employees_variant_columns_check,(employee_type = 'KitchenWorker' AND hours_worked IS NOT NULL AND tips IS NULL AND bonus IS NULL) OR (employee_type = 'Waiter' AND hours_worked IS NOT NULL AND tips IS NOT NULL AND bonus IS NULL) OR (employee_type IN ('Manager', 'JuniorManager') AND hours_worked IS NULL AND tips IS NULL AND bonus IS NOT NULL)"`
	Tips           *decimal.Decimal `gorm:"type:text"`
	Bonus          *decimal.Decimal `gorm:"type:text"`
}

func (employeeModel) TableName() string {
	return "employees"
}

func toModel(r employee.Row) employeeModel {
	return employeeModel{
		Name:           r.Name,
		EmploymentDate: r.EmploymentDate,
		Rate:           r.Rate,
		EmployeeType:   r.Kind,
		HoursWorked:    r.HoursWorked,
		Tips:           r.Tips,
		Bonus:          r.Bonus,
	}
}

func (m employeeModel) row() employee.Row {
	return employee.Row{
		Name:           m.Name,
		EmploymentDate: m.EmploymentDate.UTC(),
		Rate:           m.Rate,
		Kind:           m.EmployeeType,
		HoursWorked:    m.HoursWorked,
		Tips:           m.Tips,
		Bonus:          m.Bonus,
	}
}

// EmployeeRepository は GORM + SQLite を利用した従業員永続化の実装です。
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// EnsureSchema は employees テーブルが無い場合のみ作成します。既存テーブルは変更しません。
func (r *EmployeeRepository) EnsureSchema(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if m.HasTable(&employeeModel{}) {
		return nil
	}
	if err := m.CreateTable(&employeeModel{}); err != nil {
		return persistenceError("create table", err)
	}
	return nil
}

// Save は従業員を 1 行として挿入します。
func (r *EmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	if err := employee.Check(e); err != nil {
		return err
	}

	model := toModel(employee.ToRow(e))
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return persistenceError(fmt.Sprintf("insert employee %q", e.Name), err)
	}
	return nil
}

// LoadAll は全従業員を id 順に取得します。
func (r *EmployeeRepository) LoadAll(ctx context.Context) ([]*employee.Employee, error) {
	var models []employeeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, persistenceError("select employees", err)
	}

	employees := make([]*employee.Employee, 0, len(models))
	for _, m := range models {
		emp, err := employee.FromRow(m.row())
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", employee.ErrPersistence, op, err)
}
