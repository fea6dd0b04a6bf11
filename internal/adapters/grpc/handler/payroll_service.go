package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	PayrollServiceName            = "payroll.v1.PayrollService"
	PayrollRegisterEmployeeMethod = "/" + PayrollServiceName + "/RegisterEmployee"
	PayrollListPayrollMethod      = "/" + PayrollServiceName + "/ListPayroll"
)

// PayrollServiceServer は payroll.v1.PayrollService のサーバー側インターフェースです。
// メッセージには protobuf の well-known type を使用します。
type PayrollServiceServer interface {
	RegisterEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
	ListPayroll(ctx context.Context, req *timestamppb.Timestamp) (*structpb.Struct, error)
}

// PayrollServiceDesc は PayrollService のサービス定義です。
var PayrollServiceDesc = grpc.ServiceDesc{
	ServiceName: PayrollServiceName,
	HandlerType: (*PayrollServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterEmployee", Handler: registerEmployeeHandler},
		{MethodName: "ListPayroll", Handler: listPayrollHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "payroll/v1/payroll.proto",
}

// RegisterPayrollServiceServer は PayrollService を gRPC サーバーに登録します。
func RegisterPayrollServiceServer(s grpc.ServiceRegistrar, srv PayrollServiceServer) {
	s.RegisterService(&PayrollServiceDesc, srv)
}

func registerEmployeeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).RegisterEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PayrollRegisterEmployeeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayrollServiceServer).RegisterEmployee(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listPayrollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(timestamppb.Timestamp)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).ListPayroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PayrollListPayrollMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayrollServiceServer).ListPayroll(ctx, req.(*timestamppb.Timestamp))
	}
	return interceptor(ctx, in, info, handler)
}
