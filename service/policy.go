package service

import (
	"BookBridge/dao"
	"BookBridge/models"
	"BookBridge/pkg/response"
	"context"

	"github.com/sourcegraph/conc"
)

// Policy holds the authorization rules for mutating actions. Checks run
// after authentication and always resolve existence before permission, so
// a missing club or book reads as NotFound even to a non-member.
type Policy struct {
	Clubs   *dao.Club
	Books   *dao.Book
	Members *dao.Membership
}

// CanMutateClub allows update and delete to the club's creator only.
func (p *Policy) CanMutateClub(actor int64, club *models.Club) error {
	if club.CreatorID != actor {
		return response.Forbidden("only the club creator can change this club")
	}
	return nil
}

// CanManageClubBooks requires the club and the book to exist and the actor
// to be a member. Club and book are looked up concurrently; failures are
// reported in the order club, book, membership.
func (p *Policy) CanManageClubBooks(ctx context.Context, actor, clubID, bookID int64) error {
	var (
		clubOK, bookOK   bool
		clubErr, bookErr error
		wg               conc.WaitGroup
	)
	wg.Go(func() { clubOK, clubErr = p.Clubs.IsExist(ctx, clubID) })
	wg.Go(func() { bookOK, bookErr = p.Books.IsExist(ctx, bookID) })
	wg.Wait()

	if clubErr != nil {
		return response.Storage("lookup club", clubErr)
	}
	if !clubOK {
		return response.NotFound("club not found")
	}
	if bookErr != nil {
		return response.Storage("lookup book", bookErr)
	}
	if !bookOK {
		return response.NotFound("book not found")
	}

	member, err := p.Members.IsMember(ctx, actor, clubID)
	if err != nil {
		return response.Storage("lookup membership", err)
	}
	if !member {
		return response.Forbidden("only club members can manage its books")
	}
	return nil
}

// CanJoin admits any user to an existing club they are not yet part of.
func (p *Policy) CanJoin(ctx context.Context, actor, clubID int64) error {
	if err := p.clubExists(ctx, clubID); err != nil {
		return err
	}
	member, err := p.Members.IsMember(ctx, actor, clubID)
	if err != nil {
		return response.Storage("lookup membership", err)
	}
	if member {
		return response.Conflict("already a member of this club")
	}
	return nil
}

// CanLeave requires an existing club and membership.
func (p *Policy) CanLeave(ctx context.Context, actor, clubID int64) error {
	if err := p.clubExists(ctx, clubID); err != nil {
		return err
	}
	member, err := p.Members.IsMember(ctx, actor, clubID)
	if err != nil {
		return response.Storage("lookup membership", err)
	}
	if !member {
		return response.NotFound("not a member of this club")
	}
	return nil
}

// CanRate lets anyone rate an existing book.
func (p *Policy) CanRate(ctx context.Context, bookID int64) error {
	ok, err := p.Books.IsExist(ctx, bookID)
	if err != nil {
		return response.Storage("lookup book", err)
	}
	if !ok {
		return response.NotFound("book not found")
	}
	return nil
}

func (p *Policy) clubExists(ctx context.Context, clubID int64) error {
	ok, err := p.Clubs.IsExist(ctx, clubID)
	if err != nil {
		return response.Storage("lookup club", err)
	}
	if !ok {
		return response.NotFound("club not found")
	}
	return nil
}
