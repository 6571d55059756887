package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

// In-memory fakes behind the domain repository interfaces. Each fake can be
// forced to fail to exercise the upstream-failure paths.

type fakeCartRepo struct {
	carts map[string]*entity.Cart
	items map[string]*entity.CartItem
	fail  error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: map[string]*entity.Cart{},
		items: map[string]*entity.CartItem{},
	}
}

func (f *fakeCartRepo) Create(_ context.Context, c *entity.Cart) error {
	if f.fail != nil {
		return f.fail
	}
	c.ID = uuid.NewString()
	cp := *c
	f.carts[c.ID] = &cp
	return nil
}

func (f *fakeCartRepo) GetByID(_ context.Context, id string) (*entity.Cart, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	c, ok := f.carts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *entity.CartItem) error {
	if f.fail != nil {
		return f.fail
	}
	item.ID = uuid.NewString()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) GetItem(_ context.Context, itemID string) (*entity.CartItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeCartRepo) UpdateItemQuantity(_ context.Context, itemID string, quantity int) (*entity.CartItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	item.Quantity = quantity
	cp := *item
	return &cp, nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, itemID string) error {
	if _, ok := f.items[itemID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) DeleteItemsByCart(_ context.Context, cartID string) error {
	for id, item := range f.items {
		if item.CartID == cartID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartRepo) ListItems(_ context.Context, cartID string) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for _, item := range f.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

var _ repository.CartRepository = (*fakeCartRepo)(nil)

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	fail   error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if f.fail != nil {
		return f.fail
	}
	o.ID = uuid.NewString()
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
	refunds  map[string]*entity.Refund
	fail     error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: map[string]*entity.Payment{},
		refunds:  map[string]*entity.Refund{},
	}
}

func (f *fakePaymentRepo) CreatePayment(_ context.Context, p *entity.Payment) error {
	if f.fail != nil {
		return f.fail
	}
	p.ID = uuid.NewString()
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetPayment(_ context.Context, id string) (*entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) CreateRefund(_ context.Context, r *entity.Refund) error {
	if f.fail != nil {
		return f.fail
	}
	r.ID = uuid.NewString()
	cp := *r
	f.refunds[r.ID] = &cp
	return nil
}

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

type fakeUserRepo struct {
	users map[string]*entity.User
	fail  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.fail != nil {
		return f.fail
	}
	for _, other := range f.users {
		if other.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	stored, ok := f.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range f.users {
		if id != u.ID && other.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	stored.Username = u.Username
	stored.Email = u.Email
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeProductRepo struct {
	products map[string]*entity.Product
	fail     error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.fail != nil {
		return f.fail
	}
	p.ID = uuid.NewString()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	fail       error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if f.fail != nil {
		return f.fail
	}
	c.ID = uuid.NewString()
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
	fail    error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	if f.fail != nil {
		return f.fail
	}
	r.ID = uuid.NewString()
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]entity.Review, error) {
	out := make([]entity.Review, 0)
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

var _ repository.ReviewRepository = (*fakeReviewRepo)(nil)

type fakeShippingRepo struct {
	methods []entity.ShippingMethod
	calls   int
	fail    error
}

func (f *fakeShippingRepo) ListMethods(_ context.Context) ([]entity.ShippingMethod, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	return f.methods, nil
}

var _ repository.ShippingRepository = (*fakeShippingRepo)(nil)
