package repository

import "errors"

// отсутствие записи — это сигнал пустого результата, а не доменная ошибка;
// в доменную её превращает сервисный слой
var ErrNotFound = errors.New("запись не найдена")
