package server

import (
	"context"
	"errors"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GGmuzem/calc-api/internal/calculate"
	"github.com/GGmuzem/calc-api/internal/database"
	"github.com/GGmuzem/calc-api/pkg/calculator"
	"github.com/GGmuzem/calc-api/pkg/models"
)

// CalculatorServer реализация gRPC сервиса Calculator
type CalculatorServer struct {
	log *zap.SugaredLogger
	db  database.Database
}

// NewCalculatorServer создает новый gRPC сервер калькулятора
func NewCalculatorServer(log *zap.SugaredLogger, db database.Database) *CalculatorServer {
	return &CalculatorServer{
		log: log.With("module", "grpc"),
		db:  db,
	}
}

// Compute выполняет арифметическую операцию по имени
func (s *CalculatorServer) Compute(ctx context.Context, req *calculator.ComputeRequest) (*calculator.ComputeResponse, error) {
	var fn func(a, b float64) (float64, error)
	switch req.Operation {
	case calculator.OpAdd:
		fn = calculate.Add
	case calculator.OpSubtract:
		fn = calculate.Subtract
	case calculator.OpMultiply:
		fn = calculate.Multiply
	case calculator.OpDivide:
		fn = calculate.Divide
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown operation: %s", req.Operation)
	}

	result, err := fn(req.A, req.B)
	if err != nil {
		s.log.Warnw("операция завершилась ошибкой",
			"operation", req.Operation, "a", req.A, "b", req.B, "error", err,
		)
		s.saveRecord(&models.OperationRecord{
			Operation: req.Operation,
			A:         req.A,
			B:         req.B,
			Status:    models.OperationStatusError,
			Error:     err.Error(),
		})

		var calcErr *calculate.CalcError
		if errors.As(err, &calcErr) {
			return nil, status.Error(codes.InvalidArgument, calcErr.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.log.Infow("операция выполнена",
		"operation", req.Operation, "a", req.A, "b", req.B, "result", result,
	)
	s.saveRecord(&models.OperationRecord{
		Operation: req.Operation,
		A:         req.A,
		B:         req.B,
		Result:    result,
		Status:    models.OperationStatusSuccess,
	})

	return &calculator.ComputeResponse{Result: result}, nil
}

// saveRecord пишет запись в журнал, ошибки записи не фатальны
func (s *CalculatorServer) saveRecord(rec *models.OperationRecord) {
	if err := s.db.SaveOperation(rec); err != nil {
		s.log.Warnw("не удалось записать операцию в журнал", "error", err)
	}
}

// StartGRPCServer запускает gRPC сервер на указанном порту
func StartGRPCServer(port string, log *zap.SugaredLogger, db database.Database) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, err
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(calculator.Codec{}))
	calculator.RegisterCalculatorServer(grpcServer, NewCalculatorServer(log, db))

	go func() {
		log.Infow("gRPC сервер запущен", "port", port)
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorw("gRPC сервер остановлен с ошибкой", "error", err)
		}
	}()

	return grpcServer, nil
}
