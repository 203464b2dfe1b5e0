package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

// Fakes de los puertos remotos para aislar los stores en tests: cuentan
// llamadas y devuelven el error configurado sin tocar la red.

type fakeProductRepo struct {
	listResult []entity.Product
	listErr    error
	insertErr  error
	updateErr  error
	deleteErr  error

	listCalls   int
	insertCalls int
	updateCalls int
	deleteCalls int

	lastPatch repository.ProductPatch
}

func (f *fakeProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeProductRepo) Insert(ctx context.Context, p entity.Product) (entity.Product, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return entity.Product{}, f.insertErr
	}
	p.ID = uuid.New().String()
	return p, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, patch repository.ProductPatch) error {
	f.updateCalls++
	f.lastPatch = patch
	return f.updateErr
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeMovementRepo struct {
	listResult []entity.Movement
	listErr    error
	insertErr  error

	insertCalls int
}

func (f *fakeMovementRepo) List(ctx context.Context) ([]entity.Movement, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeMovementRepo) Insert(ctx context.Context, m entity.Movement) (entity.Movement, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return entity.Movement{}, f.insertErr
	}
	m.ID = uuid.New().String()
	// La representación devuelta por un insert no trae nombres resueltos.
	m.Product = ""
	m.User = ""
	return m, nil
}

type fakeOrderRepo struct {
	listResult []entity.Order
	listErr    error
	insertErr  error
	updateErr  error

	insertCalls int
	lastInsert  entity.Order
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeOrderRepo) Insert(ctx context.Context, o entity.Order) (entity.Order, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return entity.Order{}, f.insertErr
	}
	o.ID = uuid.New().String()
	f.lastInsert = o
	return o, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return f.updateErr
}

type fakeUserRepo struct {
	listResult []entity.User
	listErr    error
	insertErr  error
	updateErr  error
	deleteErr  error

	insertCalls int
	lastInsert  entity.User
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, u entity.User) (entity.User, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return entity.User{}, f.insertErr
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	f.lastInsert = u
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, patch repository.UserPatch) error {
	return f.updateErr
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeAuthGateway struct {
	signInSession repository.Session
	signInErr     error
	signUpResult  entity.Identity
	signUpErr     error
	getUserResult *entity.Identity
	getUserErr    error
	signOutErr    error

	signUpCalls  int
	signOutCalls int
}

func (f *fakeAuthGateway) SignIn(ctx context.Context, email, password string) (repository.Session, error) {
	if f.signInErr != nil {
		return repository.Session{}, f.signInErr
	}
	return f.signInSession, nil
}

func (f *fakeAuthGateway) SignUp(ctx context.Context, email, password string, metadata map[string]any) (entity.Identity, error) {
	f.signUpCalls++
	if f.signUpErr != nil {
		return entity.Identity{}, f.signUpErr
	}
	return f.signUpResult, nil
}

func (f *fakeAuthGateway) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	return f.getUserResult, nil
}

func (f *fakeAuthGateway) SignOut(ctx context.Context, accessToken string) error {
	f.signOutCalls++
	return f.signOutErr
}
