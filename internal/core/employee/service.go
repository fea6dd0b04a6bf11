package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Payslip は 1 名分の給与明細です。
type Payslip struct {
	Employee *Employee
	Summary  string
	Pay      decimal.Decimal
}

// Total は明細の支給額合計を返します。
func Total(payslips []Payslip) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payslips {
		total = total.Add(p.Pay)
	}
	return total
}

// UseCase は給与ユースケースの公開インターフェースです。
type UseCase interface {
	Bootstrap(ctx context.Context) error
	Register(ctx context.Context, e *Employee) error
	RegisterAll(ctx context.Context, employees []*Employee) error
	Payroll(ctx context.Context, at time.Time) ([]Payslip, error)
	CurrentPayroll(ctx context.Context) ([]Payslip, error)
}

// Service は従業員と給与に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	clock  Clock
	logger *zap.Logger
}

// NewService は Service を生成します。clock と logger は nil でも構いません。
func NewService(repo Repository, clock Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, clock: clock, logger: logger.Named("employee")}
}

// Bootstrap は永続化先のテーブルを用意します。
func (s *Service) Bootstrap(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		s.logger.Error("ensure schema failed", zap.Error(err))
		return err
	}
	s.logger.Debug("schema ready")
	return nil
}

// Register は従業員を 1 名保存します。
func (s *Service) Register(ctx context.Context, e *Employee) error {
	if err := Check(e); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, e); err != nil {
		s.logger.Error("save employee failed",
			zap.String("name", e.Name),
			zap.String("kind", string(e.Kind())),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("employee registered", zap.String("name", e.Name), zap.String("kind", string(e.Kind())))
	return nil
}

// RegisterAll は従業員を順に保存し、最初のエラーで中断します。保存済みの行は残ります。
func (s *Service) RegisterAll(ctx context.Context, employees []*Employee) error {
	for _, e := range employees {
		if err := s.Register(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Payroll は保存済みの全従業員について at 時点の給与明細を作成します。
func (s *Service) Payroll(ctx context.Context, at time.Time) ([]Payslip, error) {
	employees, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("load employees failed", zap.Error(err))
		return nil, err
	}

	payslips := make([]Payslip, 0, len(employees))
	for _, e := range employees {
		payslips = append(payslips, Payslip{
			Employee: e,
			Summary:  e.Describe(),
			Pay:      e.Pay(at),
		})
	}

	s.logger.Info("payroll computed",
		zap.Int("employees", len(payslips)),
		zap.String("pay_date", at.Format(dateLayout)),
		zap.String("total", Total(payslips).StringFixed(2)),
	)
	return payslips, nil
}

// CurrentPayroll は現在時刻を基準に給与明細を作成します。
func (s *Service) CurrentPayroll(ctx context.Context) ([]Payslip, error) {
	return s.Payroll(ctx, s.clock.Now())
}
