package handler

import (
	"errors"

	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrUnknownVariant),
		errors.Is(err, employee.ErrMissingField),
		errors.Is(err, employee.ErrNilEmployee):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrPersistence):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// toLoadStatusError は読み込み時のエラーを変換します。保存済みの行が不正な場合は DataLoss とします。
func toLoadStatusError(err error) error {
	if errors.Is(err, employee.ErrUnknownVariant) || errors.Is(err, employee.ErrMissingField) {
		return status.Error(codes.DataLoss, err.Error())
	}
	return toStatusError(err)
}
