package server

import (
	"BookBridge/handler"
)

type Handlers struct {
	User       *handler.User
	Book       *handler.Book
	Club       *handler.Club
	Membership *handler.Membership
}
