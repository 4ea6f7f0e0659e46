// Package calculate реализует арифметическое ядро сервиса: четыре чистые
// операции над float64. Ошибки возвращаются явно, без паник, чтобы
// HTTP-слой мог сам выбрать код ответа.
package calculate

// Add возвращает сумму a и b
func Add(a, b float64) (float64, error) {
	return a + b, nil
}

// Subtract возвращает разность a и b
func Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

// Multiply возвращает произведение a и b
func Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

// Divide возвращает частное a и b. При делении на ноль возвращает
// доменную ошибку CalcError. Сравнение с нулём строгое: только точный
// ноль считается недопустимым делителем.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, DivisionByZeroError()
	}
	return a / b, nil
}
