package calculator

import "encoding/json"

// Codec кодирует сообщения сервиса в JSON вместо protobuf.
// Сервер должен использовать grpc.ForceServerCodec(calculator.Codec{}),
// клиент получает его автоматически через NewCalculatorClient.
type Codec struct{}

// Marshal сериализует сообщение в JSON
func (Codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal разбирает JSON в сообщение
func (Codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name возвращает имя кодека
func (Codec) Name() string {
	return "json"
}
