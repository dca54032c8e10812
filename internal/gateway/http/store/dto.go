package store

type productDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type createProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Сервер отвечает либо самим продуктом, либо {"message": ..., "product": {...}}.
type createProductResponse struct {
	productDTO
	Message string      `json:"message"`
	Product *productDTO `json:"product"`
}

type orderDTO struct {
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
}

type createOrderRequest struct {
	ProductID int64 `json:"product_id"`
}

type createOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
