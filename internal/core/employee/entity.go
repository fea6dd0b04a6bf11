package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind は従業員の種別を表す識別子です。テーブルの employee_type 列にそのまま保存されます。
type Kind string

const (
	KindKitchenWorker Kind = "KitchenWorker"
	KindWaiter        Kind = "Waiter"
	KindManager       Kind = "Manager"
	KindJuniorManager Kind = "JuniorManager"
)

// Kinds は既知の種別を定義順で返します。
func Kinds() []Kind {
	return []Kind{KindKitchenWorker, KindWaiter, KindManager, KindJuniorManager}
}

// Employee は従業員エンティティです。種別ごとの項目は Details に保持します。
type Employee struct {
	Name           string
	EmploymentDate time.Time
	Rate           decimal.Decimal
	Details        Details
}

// Details は種別固有の項目です。実装はこのパッケージ内の 4 種類に限られます。
type Details interface {
	Kind() Kind
	sealed()
}

// KitchenWorker は時給制の厨房スタッフです。
type KitchenWorker struct {
	HoursWorked int
}

// Waiter は時給とチップで支払われるホールスタッフです。
type Waiter struct {
	HoursWorked int
	Tips        decimal.Decimal
}

// Manager は勤続年数に応じた賞与を毎月受け取ります。
type Manager struct {
	Bonus decimal.Decimal
}

// JuniorManager は Manager と同じ項目を持ちますが、賞与は 6 月と 12 月のみ支給されます。
type JuniorManager struct {
	Bonus decimal.Decimal
}

func (KitchenWorker) Kind() Kind { return KindKitchenWorker }
func (Waiter) Kind() Kind        { return KindWaiter }
func (Manager) Kind() Kind       { return KindManager }
func (JuniorManager) Kind() Kind { return KindJuniorManager }

func (KitchenWorker) sealed() {}
func (Waiter) sealed()        {}
func (Manager) sealed()       {}
func (JuniorManager) sealed() {}

// Kind は従業員の種別を返します。Details が未設定の場合は空文字です。
func (e *Employee) Kind() Kind {
	if e == nil || e.Details == nil {
		return ""
	}
	return e.Details.Kind()
}

// NewKitchenWorker は厨房スタッフを生成します。
func NewKitchenWorker(name string, employedAt time.Time, rate decimal.Decimal, hoursWorked int) *Employee {
	return newEmployee(name, employedAt, rate, KitchenWorker{HoursWorked: hoursWorked})
}

// NewWaiter はホールスタッフを生成します。
func NewWaiter(name string, employedAt time.Time, rate decimal.Decimal, hoursWorked int, tips decimal.Decimal) *Employee {
	return newEmployee(name, employedAt, rate, Waiter{HoursWorked: hoursWorked, Tips: tips})
}

// NewManager はマネージャーを生成します。
func NewManager(name string, employedAt time.Time, rate, bonus decimal.Decimal) *Employee {
	return newEmployee(name, employedAt, rate, Manager{Bonus: bonus})
}

// NewJuniorManager はジュニアマネージャーを生成します。
func NewJuniorManager(name string, employedAt time.Time, rate, bonus decimal.Decimal) *Employee {
	return newEmployee(name, employedAt, rate, JuniorManager{Bonus: bonus})
}

func newEmployee(name string, employedAt time.Time, rate decimal.Decimal, details Details) *Employee {
	return &Employee{
		Name:           name,
		EmploymentDate: normalizeDate(employedAt),
		Rate:           rate,
		Details:        details,
	}
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
