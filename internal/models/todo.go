package models

// Todo represents a single item on the list
type Todo struct {
	ID          int64  `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
}

// IsPersisted returns true once the store has assigned an id
func (t *Todo) IsPersisted() bool {
	return t.ID != 0
}

// Update replaces the todo description
func (t *Todo) Update(description string) {
	t.Description = description
}
