package get_free_resources

// Request модель запроса свободных ресурсов на интервале [Start, End)
type Request struct {
	Start int64
	End   int64
}

// Response модель ответа
type Response struct {
	Start     int64
	End       int64
	Resources []Resource // В порядке поиска движка
}

// Resource свободный ресурс
type Resource struct {
	ID   int64
	Name string
}
