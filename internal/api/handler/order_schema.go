package handler

// orderRequest carries the four order fields for both create and partial
// update. On update, a zero value means "not supplied": the stored value is
// kept. Callers therefore cannot set quantity or price to 0, or a name to the
// empty string, through PUT; that limitation is part of the contract.
type orderRequest struct {
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// errorResponse is the envelope used by order create/list failures.
type errorResponse struct {
	Error string `json:"error"`
}
