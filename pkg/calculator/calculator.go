// Package calculator описывает gRPC сервис Calculator для программных
// клиентов. Сервис объявлен вручную через grpc.ServiceDesc, сообщения
// кодируются JSON-кодеком (см. codec.go), protoc не используется.
package calculator

import (
	"context"

	"google.golang.org/grpc"
)

// Имена операций сервиса
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// ComputeRequest запрос на выполнение операции
type ComputeRequest struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

// ComputeResponse результат операции
type ComputeResponse struct {
	Result float64 `json:"result"`
}

// CalculatorServer интерфейс серверной части сервиса
type CalculatorServer interface {
	Compute(ctx context.Context, in *ComputeRequest) (*ComputeResponse, error)
}

// RegisterCalculatorServer регистрирует сервер Calculator в gRPC
func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Compute",
			Handler:    _Calculator_Compute_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator",
}

// Обработчик Compute
func _Calculator_Compute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Compute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.Calculator/Compute",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Compute(ctx, req.(*ComputeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CalculatorClient интерфейс клиента сервиса
type CalculatorClient interface {
	Compute(ctx context.Context, in *ComputeRequest, opts ...grpc.CallOption) (*ComputeResponse, error)
}

// NewCalculatorClient создает нового клиента для сервиса Calculator
func NewCalculatorClient(cc *grpc.ClientConn) CalculatorClient {
	return &calculatorClient{cc}
}

type calculatorClient struct {
	cc *grpc.ClientConn
}

// Compute вызывает Compute у сервера
func (c *calculatorClient) Compute(ctx context.Context, in *ComputeRequest, opts ...grpc.CallOption) (*ComputeResponse, error) {
	out := new(ComputeResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	err := c.cc.Invoke(ctx, "/calculator.Calculator/Compute", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
