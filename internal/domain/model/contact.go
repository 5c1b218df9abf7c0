package model

import "time"

// ContactMessage is a visitor enquiry from the contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
