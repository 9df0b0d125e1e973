package models

import "time"

// Customer is a store customer as served by the auth service
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	ContactNo string `json:"contactNo"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
}

// TokenPayload is the verified content of a dashboard session token
type TokenPayload struct {
	UserID    int64
	Email     string
	ExpiredAt time.Time
}
