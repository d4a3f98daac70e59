package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/shop"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

type memCartRepo struct {
	items map[uuid.UUID]*shop.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: make(map[uuid.UUID]*shop.CartItem)}
}

func (r *memCartRepo) Save(_ context.Context, item *shop.CartItem) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *memCartRepo) FindByID(_ context.Context, id uuid.UUID) (*shop.CartItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *memCartRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*shop.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memCartRepo) FindAllForUser(_ context.Context, userID uuid.UUID) ([]shop.CartItem, error) {
	var out []shop.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memCartRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memCartRepo) DeleteAllForUser(_ context.Context, userID uuid.UUID) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *memProductRepo) FindBySKU(_ context.Context, companyID uuid.UUID, sku string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, int64, error) {
	return nil, 0, nil
}

func (r *memProductRepo) FindAllForCompany(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]catalog.Product, int64, error) {
	return nil, 0, nil
}

func (r *memProductRepo) ExistsBySKU(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type memOrderRepo struct {
	orders map[uuid.UUID]*trade.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]*trade.Order)}
}

func (r *memOrderRepo) Save(_ context.Context, order *trade.Order) error {
	clone := *order
	clone.Items = append([]trade.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) FindAllForCompany(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]trade.Order, int64, error) {
	return nil, 0, nil
}

func (r *memOrderRepo) FindAllForCustomer(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]trade.Order, int64, error) {
	return nil, 0, nil
}

type cartFixture struct {
	service   *CartService
	carts     *memCartRepo
	products  *memProductRepo
	orders    *memOrderRepo
	companyID uuid.UUID
	customer  identity.Actor
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	companyID := uuid.New()
	f := &cartFixture{
		carts:     newMemCartRepo(),
		products:  newMemProductRepo(),
		orders:    newMemOrderRepo(),
		companyID: companyID,
		customer:  identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: identity.RoleCustomer},
	}
	f.service = NewCartService(f.carts, f.products, f.orders, zap.NewNop())
	return f
}

func (f *cartFixture) addProduct(t *testing.T, sku string, price int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(f.companyID, sku, "Product "+sku,
		decimal.NewFromInt(price), decimal.NewFromInt(price/2))
	require.NoError(t, err)
	require.NoError(t, f.products.Save(context.Background(), product))
	return product
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("should merge duplicate products into one line", func(t *testing.T) {
		f := newCartFixture(t)
		product := f.addProduct(t, "SKU-1", 4990)

		first, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: product.ID, Quantity: 2})
		require.NoError(t, err)

		second, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: product.ID, Quantity: 3})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.EqualValues(t, 5, second.Quantity)
		assert.True(t, second.Subtotal.Equal(decimal.NewFromInt(24950)))

		cart, err := f.service.GetCart(ctx, f.customer)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("should refuse inactive product", func(t *testing.T) {
		f := newCartFixture(t)
		product := f.addProduct(t, "SKU-1", 4990)
		product.Deactivate()
		require.NoError(t, f.products.Save(ctx, product))

		_, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: product.ID, Quantity: 1})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartServiceSubtotals(t *testing.T) {
	ctx := context.Background()

	t.Run("should always price at the product's current price", func(t *testing.T) {
		f := newCartFixture(t)
		product := f.addProduct(t, "SKU-1", 4990)

		_, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: product.ID, Quantity: 2})
		require.NoError(t, err)

		require.NoError(t, product.SetPricing(decimal.NewFromInt(5990), product.Cost))
		require.NoError(t, f.products.Save(ctx, product))

		cart, err := f.service.GetCart(ctx, f.customer)
		require.NoError(t, err)
		assert.True(t, cart.Total.Equal(decimal.NewFromInt(11980)))
	})
}

func TestCartServiceCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a pending order and empty the cart", func(t *testing.T) {
		f := newCartFixture(t)
		productA := f.addProduct(t, "SKU-A", 4990)
		productB := f.addProduct(t, "SKU-B", 1500)

		_, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: productA.ID, Quantity: 2})
		require.NoError(t, err)
		_, err = f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: productB.ID, Quantity: 1})
		require.NoError(t, err)

		summary, err := f.service.Checkout(ctx, f.customer, CheckoutRequest{ShippingAddress: "Av. Alemania 0671, Temuco"})

		require.NoError(t, err)
		assert.Equal(t, "pending", summary.Status)
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(11480)))

		order, err := f.orders.FindByID(ctx, summary.OrderID)
		require.NoError(t, err)
		assert.Equal(t, f.customer.UserID, order.CustomerID)
		assert.Equal(t, trade.OrderStatusPending, order.Status)
		assert.Nil(t, order.ProcessingBranchID)
		assert.Len(t, order.Items, 2)

		cart, err := f.service.GetCart(ctx, f.customer)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("should refuse an empty cart", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.service.Checkout(ctx, f.customer, CheckoutRequest{ShippingAddress: "Av. Alemania 0671, Temuco"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_CART", domainErr.Code)
	})

	t.Run("should not touch another user's cart", func(t *testing.T) {
		f := newCartFixture(t)
		product := f.addProduct(t, "SKU-1", 4990)

		line, err := f.service.AddItem(ctx, f.customer, AddCartItemRequest{ProductID: product.ID, Quantity: 2})
		require.NoError(t, err)

		other := identity.Actor{UserID: uuid.New(), CompanyID: &f.companyID, Role: identity.RoleCustomer}
		err = f.service.RemoveItem(ctx, other, line.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
