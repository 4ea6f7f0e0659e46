package calculate

// CalcError описывает доменную ошибку арифметической операции
type CalcError struct {
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// NewCalcError создает новую ошибку CalcError
func NewCalcError(message string) *CalcError {
	return &CalcError{Message: message}
}

// DivisionByZeroError создаёт ошибку деления на ноль
func DivisionByZeroError() *CalcError {
	return NewCalcError("Cannot divide by zero!")
}
