package create_booking

// Request модель запроса на создание бронирования
type Request struct {
	Start int64 // Начало интервала (включительно)
	End   int64 // Конец интервала (не включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64  // ID бронирования
	ResourceID   int64  // ID выбранного ресурса
	ResourceName string // Имя ресурса (может быть пустым)
	Start        int64
	End          int64
	Status       string
}
