package storestub

type product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type productCreate struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type productCreateResponse struct {
	Message string  `json:"message"`
	Product product `json:"product"`
}

type order struct {
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
}

type orderCreate struct {
	ProductID *int64 `json:"product_id"`
}

type orderCreateResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type orderStatusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type orderUpdate struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
