package handler_test

import (
	"BookBridge/dao"
	"BookBridge/dao/cache"
	"BookBridge/handler"
	"BookBridge/pkg/database/dbtest"
	"BookBridge/pkg/jwt"
	"BookBridge/pkg/server"
	"BookBridge/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	tokens := jwt.New([]byte("handler-secret"), 7*24*time.Hour)
	c := cache.New(cache.NewLocalStore(), 10*time.Second)

	users := dao.NewUsers(db)
	clubs := dao.NewClub(db)
	books := dao.NewBook(db)
	members := dao.NewMembership(db)
	policy := &service.Policy{Clubs: clubs, Books: books, Members: members}

	h := &server.Handlers{
		User: &handler.User{
			Tokens: tokens, Users: users,
			UserService: &service.UserService{Users: users, Tokens: tokens},
		},
		Book: &handler.Book{
			Tokens: tokens, Users: users,
			BookService: &service.BookService{DB: db, Policy: policy, Books: books, Ratings: dao.NewRating(db), Cache: c},
		},
		Club: &handler.Club{
			Tokens: tokens, Users: users,
			ClubService: &service.ClubService{Policy: policy, Clubs: clubs, Members: members, Cache: c},
		},
		Membership: &handler.Membership{
			Tokens: tokens, Users: users,
			MembershipService: &service.MembershipService{
				DB: db, Policy: policy, Clubs: clubs, Members: members,
				ClubBooks: dao.NewClubBook(db), Cache: c,
			},
		},
	}
	return &api{t: t, engine: server.NewGinEngine(h)}
}

func (a *api) call(method, path, token string, body any) (int, gjson.Result) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w.Code, gjson.Parse(w.Body.String())
}

func (a *api) register(nick string) (int64, string) {
	a.t.Helper()
	code, res := a.call(http.MethodPost, "/users", "", gin.H{
		"email":      nick + "@example.com",
		"nickname":   nick,
		"password":   "Passw0rd!",
		"first_name": "First",
		"last_name":  "Last",
	})
	require.Equal(a.t, http.StatusCreated, code, res.Raw)
	return res.Get("data.id").Int(), res.Get("data.token").String()
}

func TestUsers(t *testing.T) {
	a := newAPI(t)
	id, token := a.register("ann")
	assert.NotZero(t, id)

	code, res := a.call(http.MethodPost, "/users", "", gin.H{
		"email": "not-an-email", "nickname": "x", "password": "weak",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ValidationFailed", res.Get("kind").String())
	fields := res.Get("fields.#.field").Array()
	var names []string
	for _, f := range fields {
		names = append(names, f.String())
	}
	assert.Subset(t, names, []string{"email", "nickname", "password", "first_name", "last_name"})

	code, _ = a.call(http.MethodPost, "/users", "", gin.H{
		"email": "ann@example.com", "nickname": "ann2", "password": "Passw0rd!", "first_name": "A", "last_name": "B",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, res = a.call(http.MethodPost, "/users/login", "", gin.H{"nickname": "ann", "password": "Passw0rd!"})
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, res.Get("data.token").String())

	code, res = a.call(http.MethodPost, "/users/login", "", gin.H{"email": "ann@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "email, nickname or password incorrect", res.Get("msg").String())

	code, res = a.call(http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ann", res.Get("data.nickname").String())
	assert.False(t, res.Get("data.password").Exists())

	code, res = a.call(http.MethodPut, "/users", token, gin.H{"last_name": "Lee"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, `["last_name"]`, res.Get("data.updated").Raw)

	code, res = a.call(http.MethodGet, "/users/search?nickname=an", token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Lee", res.Get("data.0.last_name").String())

	code, _ = a.call(http.MethodDelete, "/users", token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, res = a.call(http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code, "token of a deleted account")
	assert.Equal(t, "AuthInvalid", res.Get("kind").String())
}

func TestClubs_CreatorOnly(t *testing.T) {
	a := newAPI(t)
	_, owner := a.register("owner")
	_, other := a.register("other")

	code, res := a.call(http.MethodPost, "/clubs", owner, gin.H{"name": "Readers"})
	require.Equal(t, http.StatusCreated, code)
	clubPath := fmt.Sprintf("/clubs/%d", res.Get("data.id").Int())

	code, res = a.call(http.MethodPut, clubPath, "", gin.H{"name": "Mine"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "AuthMissing", res.Get("kind").String())

	code, res = a.call(http.MethodPut, clubPath, other, gin.H{"name": "Mine"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Forbidden", res.Get("kind").String())

	code, _ = a.call(http.MethodDelete, clubPath, other, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, res = a.call(http.MethodPut, clubPath, owner, gin.H{"name": "Night Readers"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Night Readers", res.Get("data.name").String())

	code, _ = a.call(http.MethodPut, "/clubs/abc", owner, gin.H{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.call(http.MethodGet, "/clubs/search?name=Knitting", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = a.call(http.MethodDelete, clubPath, owner, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = a.call(http.MethodDelete, clubPath, owner, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEndToEnd(t *testing.T) {
	a := newAPI(t)
	_, host := a.register("host")
	aliceID, alice := a.register("alice")
	_, dave := a.register("dave")

	_, res := a.call(http.MethodPost, "/clubs", host, gin.H{"name": "Readers", "description": "monthly"})
	clubID := res.Get("data.id").Int()
	code, res := a.call(http.MethodPost, "/books", alice, gin.H{"title": "Dune", "author": "Herbert", "genre": "SF"})
	require.Equal(t, http.StatusCreated, code, res.Raw)
	bookID := res.Get("data.id").Int()
	membersPath := fmt.Sprintf("/clubs/%d/members", clubID)
	pair := gin.H{"club_id": clubID, "book_id": bookID}

	code, _ = a.call(http.MethodPost, "/clubs/books", alice, pair)
	assert.Equal(t, http.StatusForbidden, code, "not a member yet")

	code, _ = a.call(http.MethodPost, membersPath, alice, nil)
	assert.Equal(t, http.StatusCreated, code)
	code, res = a.call(http.MethodPost, membersPath, alice, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Conflict", res.Get("kind").String())

	code, _ = a.call(http.MethodPost, "/clubs/books", alice, pair)
	assert.Equal(t, http.StatusCreated, code)
	code, _ = a.call(http.MethodPost, "/clubs/books", alice, pair)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = a.call(http.MethodPost, "/books/rate", alice, gin.H{"book_id": bookID, "stars": 5})
	assert.Equal(t, http.StatusCreated, code)
	code, res = a.call(http.MethodPost, "/books/rate", alice, gin.H{"book_id": bookID, "stars": 9})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "stars", res.Get("fields.0.field").String())

	code, res = a.call(http.MethodGet, fmt.Sprintf("/clubs/%d/books", clubID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, bookID, res.Get("data.0.id").Int())
	assert.Equal(t, 5.0, res.Get("data.0.average_rating").Float())

	code, res = a.call(http.MethodGet, membersPath, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), res.Get("data.#").Int())
	assert.Equal(t, aliceID, res.Get("data.1.id").Int())

	code, res = a.call(http.MethodPost, "/clubs/books", dave, pair)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Forbidden", res.Get("kind").String())

	code, _ = a.call(http.MethodPost, "/clubs/books", dave, gin.H{"club_id": clubID, "book_id": 1})
	assert.Equal(t, http.StatusNotFound, code, "missing book is reported before membership")

	code, _ = a.call(http.MethodDelete, membersPath, dave, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, res = a.call(http.MethodGet, fmt.Sprintf("/clubs/%d", clubID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), res.Get("data.member_count").Int())
}

func TestBooks_SearchAndCache(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("ann")

	code, res := a.call(http.MethodPost, "/books/search", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int64(3), res.Get("fields.#").Int())

	_, res = a.call(http.MethodPost, "/books", token, gin.H{"title": "Emma", "author": "Austen", "genre": "Classic"})
	bookPath := fmt.Sprintf("/books/%d", res.Get("data.id").Int())

	code, first := a.call(http.MethodPost, "/books/search", "", gin.H{"author": "Aust"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Emma", first.Get("data.0.title").String())

	a.call(http.MethodPost, "/books", token, gin.H{"title": "Persuasion", "author": "Austen", "genre": "Classic"})
	_, second := a.call(http.MethodPost, "/books/search", "", gin.H{"author": "Aust"})
	assert.Equal(t, first.Raw, second.Raw, "served from cache within the TTL")

	code, _ = a.call(http.MethodGet, bookPath, "", nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, res = a.call(http.MethodGet, bookPath, token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Austen", res.Get("data.author").String())
}

func TestMetrics(t *testing.T) {
	a := newAPI(t)
	a.register("ann")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bookbridge_http_requests_total")
}
