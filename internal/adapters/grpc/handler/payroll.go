package handler

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/contextutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const dateLayout = "2006-01-02"

// PayrollGrpcHandler は PayrollService の gRPC 実装です。
type PayrollGrpcHandler struct {
	svc    employee.UseCase
	logger *zap.Logger
}

var _ PayrollServiceServer = (*PayrollGrpcHandler)(nil)

// NewPayrollGrpcHandler は PayrollGrpcHandler を生成します。
func NewPayrollGrpcHandler(svc employee.UseCase, logger *zap.Logger) *PayrollGrpcHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollGrpcHandler{svc: svc, logger: logger}
}

// RegisterEmployee は従業員を 1 名登録します。
// リクエストのキーは employees テーブルの列名と同じです。
func (h *PayrollGrpcHandler) RegisterEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	row, err := rowFromStruct(req)
	if err != nil {
		contextutil.Logger(ctx, h.logger).Debug("decode employee failed", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	emp, err := employee.FromRow(row)
	if err != nil {
		return nil, toStatusError(err)
	}

	if err := h.svc.Register(ctx, emp); err != nil {
		return nil, toStatusError(err)
	}

	return &emptypb.Empty{}, nil
}

// ListPayroll は指定日時点の給与明細を返します。日時が未指定の場合は現在時刻を使用します。
func (h *PayrollGrpcHandler) ListPayroll(ctx context.Context, req *timestamppb.Timestamp) (*structpb.Struct, error) {
	var (
		payslips []employee.Payslip
		err      error
	)
	if req == nil || (req.GetSeconds() == 0 && req.GetNanos() == 0) {
		payslips, err = h.svc.CurrentPayroll(ctx)
	} else {
		if verr := req.CheckValid(); verr != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("pay date: %v", verr))
		}
		payslips, err = h.svc.Payroll(ctx, req.AsTime())
	}
	if err != nil {
		return nil, toLoadStatusError(err)
	}

	items := make([]any, 0, len(payslips))
	for _, p := range payslips {
		items = append(items, map[string]any{
			"name":          p.Employee.Name,
			"employee_type": string(p.Employee.Kind()),
			"summary":       p.Summary,
			"pay":           p.Pay.StringFixed(2),
		})
	}

	resp, err := structpb.NewStruct(map[string]any{
		"payslips": items,
		"total":    employee.Total(payslips).StringFixed(2),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func rowFromStruct(s *structpb.Struct) (employee.Row, error) {
	fields := s.GetFields()

	name, err := stringField(fields, "name")
	if err != nil {
		return employee.Row{}, err
	}
	kind, err := stringField(fields, "employee_type")
	if err != nil {
		return employee.Row{}, err
	}
	rawDate, err := stringField(fields, "employment_date")
	if err != nil {
		return employee.Row{}, err
	}
	employedAt, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return employee.Row{}, fmt.Errorf("employment_date: %w", err)
	}
	rate, err := decimalField(fields, "rate")
	if err != nil {
		return employee.Row{}, err
	}
	if rate == nil {
		return employee.Row{}, fmt.Errorf("rate is required")
	}
	hours, err := intField(fields, "hours_worked")
	if err != nil {
		return employee.Row{}, err
	}
	tips, err := decimalField(fields, "tips")
	if err != nil {
		return employee.Row{}, err
	}
	bonus, err := decimalField(fields, "bonus")
	if err != nil {
		return employee.Row{}, err
	}

	return employee.Row{
		Name:           name,
		EmploymentDate: employedAt,
		Rate:           *rate,
		Kind:           kind,
		HoursWorked:    hours,
		Tips:           tips,
		Bonus:          bonus,
	}, nil
}

func stringField(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return strings.TrimSpace(sv.StringValue), nil
}

func decimalField(fields map[string]*structpb.Value, key string) (*decimal.Decimal, error) {
	v, ok := fields[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(strings.TrimSpace(k.StringValue))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return &d, nil
	case *structpb.Value_NumberValue:
		d := decimal.NewFromFloat(k.NumberValue)
		return &d, nil
	default:
		return nil, fmt.Errorf("%s must be a number or decimal string", key)
	}
}

func intField(fields map[string]*structpb.Value, key string) (*int, error) {
	v, ok := fields[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		if k.NumberValue != math.Trunc(k.NumberValue) || k.NumberValue > math.MaxInt32 || k.NumberValue < math.MinInt32 {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		n := int(k.NumberValue)
		return &n, nil
	default:
		return nil, fmt.Errorf("%s must be a number", key)
	}
}
