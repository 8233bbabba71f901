package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Policy), "*"),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(BookService), "*"),
	wire.Bind(new(IBookService), new(*BookService)),

	wire.Struct(new(ClubService), "*"),
	wire.Bind(new(IClubService), new(*ClubService)),

	wire.Struct(new(MembershipService), "*"),
	wire.Bind(new(IMembershipService), new(*MembershipService)),
)
