package calculate

import (
	"errors"
	"math"
	"testing"
)

func TestOperations(t *testing.T) {
	tests := []struct {
		name       string
		op         func(a, b float64) (float64, error)
		a, b       float64
		expected   float64
		shouldFail bool
	}{
		{"add", Add, 2, 3, 5, false},
		{"add negative", Add, -2.5, 1, -1.5, false},
		{"subtract", Subtract, 5, 3, 2, false},
		{"subtract fraction", Subtract, 5.5, 2, 3.5, false},
		{"multiply", Multiply, 2.5, 4, 10, false},
		{"multiply by zero", Multiply, 123.45, 0, 0, false},
		{"divide", Divide, 6, 3, 2, false},
		{"divide fraction", Divide, 5.5, 2, 2.75, false},
		{"divide by zero", Divide, 5, 0, 0, true}, // Деление на ноль
		{"divide zero by zero", Divide, 0, 0, 0, true},
	}

	for _, test := range tests {
		result, err := test.op(test.a, test.b)
		if test.shouldFail {
			if err == nil {
				t.Errorf("%s: expected error, got result %v", test.name, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
		}
		if result != test.expected {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, result)
		}
	}
}

func TestDivideByZeroMessage(t *testing.T) {
	_, err := Divide(5, 0)
	if err == nil {
		t.Fatal("expected error for division by zero")
	}

	var calcErr *CalcError
	if !errors.As(err, &calcErr) {
		t.Fatalf("expected *CalcError, got %T", err)
	}
	if calcErr.Error() != "Cannot divide by zero!" {
		t.Errorf("unexpected message: %q", calcErr.Error())
	}
}

// Отрицательный ноль IEEE-754 равен нулю, поэтому тоже считается
// недопустимым делителем.
func TestDivideByNegativeZero(t *testing.T) {
	_, err := Divide(1, math.Copysign(0, -1))
	if err == nil {
		t.Error("expected error for division by negative zero")
	}
}

func TestOperationsAreIdempotent(t *testing.T) {
	first, err1 := Multiply(3.14, 2)
	second, err2 := Multiply(3.14, 2)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
}
