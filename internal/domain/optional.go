package domain

import "github.com/goccy/go-json"

// Optional - явная модель "значение есть / значения нет" для необязательных
// ответов коллабораторов (метаданные панорамы, оценка vision-модели).
// Нулевое значение Optional означает отсутствие.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some оборачивает присутствующее значение
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None возвращает отсутствующее значение
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get возвращает значение и признак его наличия
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent проверяет наличие значения
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// MarshalJSON кодирует отсутствующее значение как null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON декодирует null как отсутствующее значение
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
