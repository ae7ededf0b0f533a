package invoice

type InvoiceItemRequest struct {
	ItemName string  `json:"item_name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Rate     float64 `json:"rate" binding:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	ClientName string               `json:"client_name" binding:"required"`
	Email      string               `json:"email" binding:"omitempty,email"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,dive"`
}

type ListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type InvoiceItemResponse struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

type InvoiceResponse struct {
	ID         string                `json:"id"`
	InvoiceNo  string                `json:"invoice_no"`
	ClientName string                `json:"client_name"`
	Email      string                `json:"email,omitempty"`
	Items      []InvoiceItemResponse `json:"items"`
	Subtotal   float64               `json:"subtotal"`
	GSTPercent float64               `json:"gst_percent"`
	GSTAmount  float64               `json:"gst_amount"`
	GrandTotal float64               `json:"grand_total"`
	CreatedAt  string                `json:"created_at"`
}

type CreateInvoiceResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
}
