package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewClub,
	NewBook,
	NewMembership,
	NewClubBook,
	NewRating,
)
