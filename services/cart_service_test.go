package services_test

import (
	"testing"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *services.CartService {
	return services.NewCartService(db, cartRepo(db), menuRepo(db))
}

func TestCartAddSnapshotsUnitPrice(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createUser(t, db, "cust")
	item := createMenuItem(t, db, "Greek Salad", "12.50")

	line, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Greek Salad", Quantity: 3})
	require.NoError(t, err)
	require.True(t, line.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	require.True(t, line.Price.Equal(decimal.RequireFromString("37.50")))

	// a later menu price change must not touch the existing line
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", decimal.RequireFromString("99.99")).Error)

	var got entity.Cart
	require.NoError(t, db.First(&got, line.ID).Error)
	require.True(t, got.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	require.True(t, got.Price.Equal(got.UnitPrice.Mul(decimal.NewFromInt(int64(got.Quantity)))))
}

func TestCartAddUnknownTitleIsNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createUser(t, db, "cust")

	_, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Nope", Quantity: 1})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartOneLinePerItemPerUser(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createUser(t, db, "cust")
	other := createUser(t, db, "other")
	createMenuItem(t, db, "Bruschetta", "5.99")

	_, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Bruschetta", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Bruschetta", Quantity: 2})
	require.ErrorIs(t, err, services.ErrDuplicateLine)

	// a different user may hold the same item
	_, err = svc.Add(other.ID, &services.AddCartIn{MenuItem: "Bruschetta", Quantity: 2})
	require.NoError(t, err)
}

func TestCartReAddAfterClear(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createUser(t, db, "cust")
	createMenuItem(t, db, "Greek Salad", "12.50")

	_, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Greek Salad", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(customer.ID))

	// the cleared line must not linger and block the unique index
	line, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Greek Salad", Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 2, line.Quantity)
}

func TestCartClear(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	customer := createUser(t, db, "cust")
	createMenuItem(t, db, "Lemon Dessert", "4.25")

	require.ErrorIs(t, svc.Clear(customer.ID), services.ErrCartEmpty)

	_, err := svc.Add(customer.ID, &services.AddCartIn{MenuItem: "Lemon Dessert", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(customer.ID))

	lines, err := svc.List(customer.ID)
	require.NoError(t, err)
	require.Empty(t, lines)
}
