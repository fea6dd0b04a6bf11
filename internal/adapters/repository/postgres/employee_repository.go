package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/restaurant-payroll/assets"
	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	pgdb "github.com/ogurasousui/restaurant-payroll/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const (
	employeeNotNullViolationCode = "23502"
	employeeCheckViolationCode   = "23514"
)

// EmployeeRepository は PostgreSQL を利用した従業員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// EnsureSchema は employees テーブルが無ければ作成します。定義は最初のマイグレーションと共通です。
func (r *EmployeeRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, assets.EmployeesSchema()); err != nil {
		return translateEmployeePgError(fmt.Errorf("ensure schema: %w", err))
	}
	return nil
}

// Save は従業員を 1 行として挿入します。
func (r *EmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	if err := employee.Check(e); err != nil {
		return err
	}

	row := employee.ToRow(e)
	_, err := r.pool.Exec(ctx, `
        INSERT INTO employees (name, employment_date, rate, employee_type, hours_worked, tips, bonus)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `,
		row.Name,
		row.EmploymentDate,
		row.Rate,
		row.Kind,
		nullableInt(row.HoursWorked),
		nullableDecimal(row.Tips),
		nullableDecimal(row.Bonus),
	)
	if err != nil {
		return translateEmployeePgError(fmt.Errorf("insert employee %q: %w", row.Name, err))
	}
	return nil
}

// LoadAll は全従業員を id 順に取得します。
func (r *EmployeeRepository) LoadAll(ctx context.Context) ([]*employee.Employee, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, employment_date, rate, employee_type, hours_worked, tips, bonus
          FROM employees
         ORDER BY id
    `)
	if err != nil {
		return nil, translateEmployeePgError(fmt.Errorf("select employees: %w", err))
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		row, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, translateEmployeePgError(fmt.Errorf("scan employee: %w", err))
		}

		emp, err := employee.FromRow(row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(fmt.Errorf("iterate employees: %w", err))
	}

	return employees, nil
}

func scanEmployeeRow(row pgx.Row) (employee.Row, error) {
	var (
		name           string
		employmentDate time.Time
		rate           decimal.Decimal
		kind           string
		hoursWorked    sql.NullInt32
		tips           decimal.NullDecimal
		bonus          decimal.NullDecimal
	)

	if err := row.Scan(
		&name,
		&employmentDate,
		&rate,
		&kind,
		&hoursWorked,
		&tips,
		&bonus,
	); err != nil {
		return employee.Row{}, err
	}

	out := employee.Row{
		Name:           name,
		EmploymentDate: employmentDate.UTC(),
		Rate:           rate,
		Kind:           kind,
	}
	if hoursWorked.Valid {
		h := int(hoursWorked.Int32)
		out.HoursWorked = &h
	}
	if tips.Valid {
		out.Tips = &tips.Decimal
	}
	if bonus.Valid {
		out.Bonus = &bonus.Decimal
	}
	return out, nil
}

// translateEmployeePgError はドライバのエラーを ErrPersistence で包みます。
// 接続断・制約違反などの区別は呼び出し側で errors.As により参照できます。
func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, employee.ErrPersistence) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case employeeNotNullViolationCode, employeeCheckViolationCode:
			return fmt.Errorf("%w: constraint %s violated: %w", employee.ErrPersistence, pgErr.ConstraintName, err)
		}
	}

	return fmt.Errorf("%w: %w", employee.ErrPersistence, err)
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableDecimal(value *decimal.Decimal) any {
	if value == nil {
		return nil
	}
	return *value
}
