package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRecorder struct {
	activities []domain.Activity
}

func (r *stubRecorder) Enqueue(activity domain.Activity) {
	r.activities = append(r.activities, activity)
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	issuer := token.NewIssuer(testSecret, "test-issuer", "test-audience", time.Hour)
	return NewAuthService(repo, issuer, &stubRecorder{}, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected an id on the created user")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := [][3]string{
		{"", "a@example.com", "pass"},
		{"A", "", "pass"},
		{"A", "a@example.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2]); err != domain.ErrValidation {
			t.Fatalf("expected ErrValidation for %v, got %v", c, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass1234"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass5678"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cretpw"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty string")
	}
	if user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	issuer := token.NewIssuer(testSecret, "test-issuer", "test-audience", time.Hour)
	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("claims carry wrong email: %s", claims.Email)
	}
	if claims.Subject != user.ID {
		t.Fatalf("claims subject %q does not match user id %q", claims.Subject, user.ID)
	}
}

func TestAuthService_Login_NoEnumerationSignal(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, wrongPwErr := svc.Login(context.Background(), "dave@example.com", "badpass")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongPwErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPwErr)
	}
	if unknownErr != wrongPwErr {
		t.Fatalf("unknown-email and wrong-password errors differ: %v vs %v", unknownErr, wrongPwErr)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthService_CurrentUser_ReflectsProfileEdits(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "Erin", "erin@example.com", "password1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// edit the profile after issuance; /me must reflect the store, not claims
	stored := repo.users[created.ID]
	stored.Name = "Erin Updated"

	current, err := svc.CurrentUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current.Name != "Erin Updated" {
		t.Fatalf("expected fresh view of the user, got %q", current.Name)
	}
}

func TestAuthService_RecordsActivity(t *testing.T) {
	repo := newStubUserRepo()
	recorder := &stubRecorder{}
	issuer := token.NewIssuer(testSecret, "test-issuer", "test-audience", time.Hour)
	svc := NewAuthService(repo, issuer, recorder, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Frank", "frank@example.com", "password1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "password1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if len(recorder.activities) != 2 {
		t.Fatalf("expected 2 activity records, got %d", len(recorder.activities))
	}
	if recorder.activities[0].Action != domain.ActivityRegister {
		t.Fatalf("first activity should be register, got %s", recorder.activities[0].Action)
	}
	if recorder.activities[1].Action != domain.ActivityLogin {
		t.Fatalf("second activity should be login, got %s", recorder.activities[1].Action)
	}
}
