package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ai-doctor-chat-app/dto/req"
	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/security"
	"ai-doctor-chat-app/usecase"
)

type fakeUserStore struct {
	byPhone map[string]*entity.User
	byID    map[string]*entity.User
	nextID  int
	failing bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byPhone: make(map[string]*entity.User),
		byID:    make(map[string]*entity.User),
	}
}

func (f *fakeUserStore) Save(ctx context.Context, user *entity.User) error {
	if f.failing {
		return gorm.ErrInvalidDB
	}
	if _, ok := f.byPhone[user.Phone]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	if user.ID == "" {
		user.ID = time.Now().Format("20060102") + "-" + user.Phone
	}
	user.CreatedAt = time.Now()
	f.byPhone[user.Phone] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	if f.failing {
		return nil, gorm.ErrInvalidDB
	}
	user, ok := f.byPhone[phone]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if f.failing {
		return false, gorm.ErrInvalidDB
	}
	_, ok := f.byPhone[phone]
	return ok, nil
}

func newTestAuth(store *fakeUserStore) usecase.AuthUsecase {
	return usecase.NewAuthUsecase(store, validator.New(), quietLogger(), security.NewJWT([]byte("test-secret")))
}

func validRegistration() *req.RegisterRequest {
	return &req.RegisterRequest{
		Name:     "Ada",
		Phone:    "08012345678",
		Password: "pass1234",
		Dob:      time.Now().AddDate(-20, 0, 0).Format("2006-01-02"),
		Gender:   "female",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	response, err := auth.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	// Registration logs the user straight in.
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Ada", response.User.Name)
	assert.Equal(t, "08012345678", response.User.Phone)

	user, err := auth.UserFromToken(ctx, response.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	_, err := auth.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = "Bola"
	_, err = auth.RegisterUser(ctx, second)
	require.ErrorIs(t, err, usecase.ErrDuplicatePhone)

	// No duplicate row was created.
	assert.Len(t, store.byPhone, 1)
	assert.Equal(t, "Ada", store.byPhone["08012345678"].Name)
}

func TestRegisterUnderage(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	request := validRegistration()
	request.Dob = time.Now().AddDate(-11, 0, 0).Format("2006-01-02")

	_, err := auth.RegisterUser(ctx, request)
	require.ErrorIs(t, err, usecase.ErrUnderage)
	assert.Empty(t, store.byPhone)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(newFakeUserStore())

	cases := map[string]func(*req.RegisterRequest){
		"missing name":     func(r *req.RegisterRequest) { r.Name = "" },
		"missing phone":    func(r *req.RegisterRequest) { r.Phone = "" },
		"missing password": func(r *req.RegisterRequest) { r.Password = "" },
		"missing dob":      func(r *req.RegisterRequest) { r.Dob = "" },
		"phone too long":   func(r *req.RegisterRequest) { r.Phone = "080123456789" },
		"phone not digits": func(r *req.RegisterRequest) { r.Phone = "0801234567a" },
		"bad dob format":   func(r *req.RegisterRequest) { r.Dob = "20/01/2005" },
		"bad gender":       func(r *req.RegisterRequest) { r.Gender = "other" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			request := validRegistration()
			mutate(request)
			_, err := auth.RegisterUser(ctx, request)
			assert.Error(t, err)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	_, err := auth.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	_, wrongPassword := auth.LoginUser(ctx, &req.LoginRequest{Phone: "08012345678", Password: "wrong"})
	_, unknownPhone := auth.LoginUser(ctx, &req.LoginRequest{Phone: "08099999999", Password: "pass1234"})

	require.ErrorIs(t, wrongPassword, usecase.ErrInvalidCredentials)
	require.ErrorIs(t, unknownPhone, usecase.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownPhone.Error())
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	_, err := auth.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	response, err := auth.LoginUser(ctx, &req.LoginRequest{Phone: "08012345678", Password: "pass1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Ada", response.User.Name)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	auth := newTestAuth(store)

	_, err := auth.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	stored := store.byPhone["08012345678"]
	assert.NotEqual(t, "pass1234", stored.PasswordHash)
	assert.True(t, security.ComparePassword(stored.PasswordHash, "pass1234"))
}
