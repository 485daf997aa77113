package models

type RegisterRequest struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" form:"phone"`
	Avatar    string `json:"avatar" form:"avatar"`
}

type AddressRequest struct {
	Name      string `json:"name" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

type AddToCartRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedColor string `json:"selected_color"`
}

type UpdateQuantityRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	SelectedColor string `json:"selected_color"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	State         string `json:"state"`
}
