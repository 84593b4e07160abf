package domain

import "fmt"

// User is a registered shopper. Email is the unique lookup key.
//
// Password is stored and compared as plaintext to match the persisted-state
// layout this service models. This is not a real authentication scheme: there
// is no hashing and credentials are readable in the backing store.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Street        string `json:"street,omitempty"`
	City          string `json:"city,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// ProfileUpdate carries the optional fields a profile edit may change.
// Nil fields are left untouched; loyalty balance changes go through the
// checkout path, not profile edits.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Street   *string
	City     *string
}

// Apply merges the set fields into the user.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Street != nil {
		u.Street = *p.Street
	}
	if p.City != nil {
		u.City = *p.City
	}
}

// Address is the delivery address collected during checkout.
type Address struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Phone    string `json:"phone"`
}

// Flatten renders the address as the single line stored on orders.
func (a Address) Flatten() string {
	return fmt.Sprintf("%s, %s, %s - %s", a.Street, a.City, a.State, a.Zip)
}
