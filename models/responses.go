package models

// TodosResponse is the envelope returned by the list endpoint. The slice
// contains only items owned by the requesting user.
type TodosResponse struct {
	Todos []Todo `json:"todos"`
}

// TodoResponse is the envelope returned by the single-item endpoints
// (get, update, delete).
type TodoResponse struct {
	Todo Todo `json:"todo"`
}
