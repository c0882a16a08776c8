package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/avm-dev/notehub/internal/service"
)

var testKey = []byte("test-signing-key")

// fakeAuth implements service.AuthService for handler tests.
type fakeAuth struct {
	signupErr  error
	loginErr   error
	changeErr  error
	requestErr error
	confirmErr error

	lastConfirm [3]string
	user        model.User
}

var _ service.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Signup(_ context.Context, in service.SignupInput) (*model.User, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	u := f.user
	u.Name, u.Email, u.Contact = in.Name, in.Email, in.Contact
	return &u, nil
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (model.Session, *model.User, error) {
	if f.loginErr != nil {
		return model.Session{}, nil, f.loginErr
	}
	u := f.user
	u.Email = email
	return model.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, &u, nil
}

func (f *fakeAuth) ChangePassword(context.Context, uuid.UUID, string, string) error {
	return f.changeErr
}

func (f *fakeAuth) RequestReset(context.Context, string) error {
	return f.requestErr
}

func (f *fakeAuth) ConfirmReset(_ context.Context, email, code, pwd string) error {
	f.lastConfirm = [3]string{email, code, pwd}
	return f.confirmErr
}

// fakeNoteSvc implements service.NoteService over a map.
type fakeNoteSvc struct {
	byID map[uuid.UUID]*model.Note
	err  error
}

var _ service.NoteService = (*fakeNoteSvc)(nil)

func newFakeNoteSvc() *fakeNoteSvc {
	return &fakeNoteSvc{byID: map[uuid.UUID]*model.Note{}}
}

func (f *fakeNoteSvc) List(_ context.Context, ownerID string) ([]model.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Note, 0)
	for _, n := range f.byID {
		if n.UserID == ownerID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteSvc) Create(_ context.Context, in service.CreateNoteInput) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if in.OwnerID == "" || in.Title == "" || in.Content == "" {
		return uuid.Nil, errs.ErrInvalidInput
	}
	if in.Category == "" {
		in.Category = model.DefaultCategory
	}
	id := uuid.Must(uuid.NewV4())
	now := time.Now()
	f.byID[id] = &model.Note{
		ID: id, UserID: in.OwnerID, Title: in.Title, Content: in.Content,
		Category: in.Category, Favorite: in.Favorite, CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeNoteSvc) Get(_ context.Context, id uuid.UUID) (*model.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *n
	return &c, nil
}

func (f *fakeNoteSvc) Update(_ context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	n.Title, n.Content, n.Category = upd.Title, upd.Content, upd.Category
	n.UpdatedAt = time.Now()
	c := *n
	return &c, nil
}

func (f *fakeNoteSvc) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeNoteSvc) SetFavorite(_ context.Context, id uuid.UUID, favorite bool) (*model.Note, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	n.Favorite = favorite
	c := *n
	return &c, nil
}

func (f *fakeNoteSvc) SetCategory(_ context.Context, id uuid.UUID, category string) (*model.Note, error) {
	if category == "" {
		return nil, errs.ErrInvalidInput
	}
	n, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	n.Category = category
	c := *n
	return &c, nil
}

func newTestServer(auth service.AuthService, notes service.NoteService) *Server {
	return New(auth, notes, testKey, zap.NewNop())
}

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	token := jwt.NewWithClaims(method, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func doRequest(t *testing.T, h http.Handler, method, target, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Body.String(), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, out
}
