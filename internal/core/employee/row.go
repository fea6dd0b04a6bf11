package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Column は種別によって値の有無が変わる任意列の名前です。
type Column string

const (
	ColumnHoursWorked Column = "hours_worked"
	ColumnTips        Column = "tips"
	ColumnBonus       Column = "bonus"
)

// requiredColumns は種別ごとに値が必須となる任意列です。ここに無い列は NULL で保存されます。
var requiredColumns = map[Kind][]Column{
	KindKitchenWorker: {ColumnHoursWorked},
	KindWaiter:        {ColumnHoursWorked, ColumnTips},
	KindManager:       {ColumnBonus},
	KindJuniorManager: {ColumnBonus},
}

// RequiredColumns は種別に対応する必須の任意列を返します。未知の種別の場合 ok は false です。
func RequiredColumns(kind Kind) (cols []Column, ok bool) {
	cols, ok = requiredColumns[kind]
	if !ok {
		return nil, false
	}
	return append([]Column(nil), cols...), true
}

// Row は employees テーブルの 1 行をフラットに表現します。nil は NULL を意味します。
type Row struct {
	Name           string
	EmploymentDate time.Time
	Rate           decimal.Decimal
	Kind           string
	HoursWorked    *int
	Tips           *decimal.Decimal
	Bonus          *decimal.Decimal
}

func (r Row) has(col Column) bool {
	switch col {
	case ColumnHoursWorked:
		return r.HoursWorked != nil
	case ColumnTips:
		return r.Tips != nil
	case ColumnBonus:
		return r.Bonus != nil
	default:
		return false
	}
}

// Check は保存可能な従業員かどうかを確認します。
// Details は 4 種類の値型のいずれかでなければならず、ポインタは受け付けません。
func Check(e *Employee) error {
	if e == nil {
		return ErrNilEmployee
	}
	switch e.Details.(type) {
	case KitchenWorker, Waiter, Manager, JuniorManager:
		return nil
	case nil:
		return fmt.Errorf("%w: details are not set", ErrUnknownVariant)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownVariant, e.Details)
	}
}

// ToRow は従業員を行に変換します。種別に関係しない任意列は nil のままです。
// e は Check を通過している必要があります。
func ToRow(e *Employee) Row {
	row := Row{
		Name:           e.Name,
		EmploymentDate: normalizeDate(e.EmploymentDate),
		Rate:           e.Rate,
		Kind:           string(e.Kind()),
	}

	switch d := e.Details.(type) {
	case KitchenWorker:
		row.HoursWorked = ptr(d.HoursWorked)
	case Waiter:
		row.HoursWorked = ptr(d.HoursWorked)
		row.Tips = ptr(d.Tips)
	case Manager:
		row.Bonus = ptr(d.Bonus)
	case JuniorManager:
		row.Bonus = ptr(d.Bonus)
	default:
		panic(fmt.Sprintf("employee: unhandled details %T", e.Details))
	}

	return row
}

// FromRow は行から従業員を復元します。
// 種別が未知なら ErrUnknownVariant、必須の任意列が NULL なら ErrMissingField を返します。
func FromRow(r Row) (*Employee, error) {
	kind := Kind(r.Kind)
	cols, ok := requiredColumns[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, r.Kind)
	}
	for _, col := range cols {
		if !r.has(col) {
			return nil, fmt.Errorf("%w: %s is null for %s %q", ErrMissingField, col, kind, r.Name)
		}
	}

	var details Details
	switch kind {
	case KindKitchenWorker:
		details = KitchenWorker{HoursWorked: *r.HoursWorked}
	case KindWaiter:
		details = Waiter{HoursWorked: *r.HoursWorked, Tips: *r.Tips}
	case KindManager:
		details = Manager{Bonus: *r.Bonus}
	case KindJuniorManager:
		details = JuniorManager{Bonus: *r.Bonus}
	}

	return newEmployee(r.Name, r.EmploymentDate, r.Rate, details), nil
}

func ptr[T any](v T) *T {
	return &v
}
