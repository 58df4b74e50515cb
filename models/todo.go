package models

// Todo represents a single task item from the todos table.
//
// URL is derived at read time from the configured base address and the
// item's ID; it is never persisted. The service layer is responsible for
// populating it before a Todo leaves the process.
type Todo struct {
	// ID is the auto-increment primary key assigned by the store on
	// creation. It is immutable once assigned and never reused.
	ID int64 `json:"id"`

	// Text is the task description. Leading and trailing whitespace is
	// stripped before storage.
	Text string `json:"text"`

	// IsDone reports whether the task is completed. Stored in the "done"
	// column as a boolean-as-integer.
	IsDone bool `json:"isDone"`

	// URL is the absolute address of this item, e.g.
	// "http://localhost:3000/todos/1". Derived, not stored.
	URL string `json:"url"`
}

// TodoList is the payload returned by the list operation. It echoes the
// effective limit and order-by so the caller can see how its query
// parameters were interpreted after clamping and allow-list filtering.
type TodoList struct {
	Count   int      `json:"count"`
	Limit   int      `json:"limit"`
	OrderBy []string `json:"orderBy"`
	Todos   []Todo   `json:"todos"`
}
