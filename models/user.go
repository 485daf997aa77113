package models

type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	Password  string    `json:"-"`
	Addresses []Address `json:"addresses"`
	Orders    []Order   `json:"orders"`
}

// Clone returns a copy whose address and order slices are detached
// from the receiver, so callers cannot mutate store state in place.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Addresses != nil {
		out.Addresses = append([]Address{}, u.Addresses...)
	}
	if u.Orders != nil {
		out.Orders = append([]Order{}, u.Orders...)
	}
	return &out
}
