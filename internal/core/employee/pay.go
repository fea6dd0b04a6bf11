package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// YearsWorked は at 時点の暦年差を返します。月日は考慮しません。
func (e *Employee) YearsWorked(at time.Time) int {
	return at.Year() - e.EmploymentDate.Year()
}

// Pay は at 時点での給与額を計算します。
func (e *Employee) Pay(at time.Time) decimal.Decimal {
	switch d := e.Details.(type) {
	case KitchenWorker:
		return e.Rate.Mul(decimal.NewFromInt(int64(d.HoursWorked)))
	case Waiter:
		return e.Rate.Mul(decimal.NewFromInt(int64(d.HoursWorked))).Add(d.Tips)
	case Manager:
		return e.Rate.Add(d.Bonus.Mul(decimal.NewFromInt(int64(e.YearsWorked(at)))))
	case JuniorManager:
		if !isBonusMonth(at.Month()) {
			return e.Rate
		}
		return e.Rate.Add(d.Bonus.Mul(decimal.NewFromInt(int64(e.YearsWorked(at)))))
	default:
		panic(fmt.Sprintf("employee: unhandled details %T", e.Details))
	}
}

func isBonusMonth(m time.Month) bool {
	return m == time.June || m == time.December
}

// Describe は従業員の概要を 1 行の文字列で返します。
func (e *Employee) Describe() string {
	base := fmt.Sprintf("%s, employed %s, rate %s", e.Name, e.EmploymentDate.Format(dateLayout), e.Rate.StringFixed(2))

	switch d := e.Details.(type) {
	case KitchenWorker:
		return fmt.Sprintf("Kitchen worker: %s, hours worked %d", base, d.HoursWorked)
	case Waiter:
		return fmt.Sprintf("Waiter: %s, hours worked %d, tips %s", base, d.HoursWorked, d.Tips.StringFixed(2))
	case Manager:
		return fmt.Sprintf("Manager: %s, bonus %s", base, d.Bonus.StringFixed(2))
	case JuniorManager:
		return fmt.Sprintf("Junior manager: %s, bonus %s", base, d.Bonus.StringFixed(2))
	default:
		panic(fmt.Sprintf("employee: unhandled details %T", e.Details))
	}
}
