package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dsntech/dsnpass-go/internal/crypto"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/repository"
)

type memUsers struct {
	byID   map[int64]*model.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[int64]*model.User)}
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	for _, u := range m.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func newTestAuthService() (*AuthService, *crypto.TokenIssuer) {
	hasher := crypto.NewHasher()
	hasher.Memory = 8 * 1024
	hasher.Iterations = 1
	tokens := crypto.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(newMemUsers(), hasher, tokens), tokens
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestAuthService()

	tests := []struct {
		name    string
		req     model.Credentials
		wantErr error
	}{
		{name: "empty email", req: model.Credentials{Password: "Abcdefghijkl1!"}, wantErr: ErrEmailRequired},
		{name: "invalid email", req: model.Credentials{Email: "not-an-email", Password: "Abcdefghijkl1!"}, wantErr: ErrEmailInvalid},
		{name: "empty password", req: model.Credentials{Email: "a@example.com"}, wantErr: ErrPasswordRequired},
		{name: "weak password", req: model.Credentials{Email: "a@example.com", Password: "abcdefgh"}, wantErr: ErrPasswordWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.Credentials{Email: " Juma@Example.com ", Password: "Tiger7Moon7Comet!"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if reg.User.Email != "juma@example.com" {
		t.Errorf("Register() email = %q, want normalized", reg.User.Email)
	}
	if id, err := tokens.Parse(reg.Token); err != nil || id != reg.User.ID {
		t.Errorf("Register() token parses to %d, %v; want %d", id, err, reg.User.ID)
	}

	if _, err := svc.Register(ctx, model.Credentials{Email: "juma@example.com", Password: "Tiger7Moon7Comet!"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register() error = %v, want ErrEmailTaken", err)
	}

	login, err := svc.Login(ctx, model.Credentials{Email: "JUMA@example.com", Password: "Tiger7Moon7Comet!"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("Login() user = %d, want %d", login.User.ID, reg.User.ID)
	}

	if _, err := svc.Login(ctx, model.Credentials{Email: "juma@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, model.Credentials{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() unknown user error = %v, want ErrInvalidCredentials", err)
	}

	me, err := svc.GetUser(ctx, reg.User.ID)
	if err != nil || me.Email != "juma@example.com" {
		t.Errorf("GetUser() = %+v, %v", me, err)
	}
}
