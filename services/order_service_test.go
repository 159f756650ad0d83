package services_test

import (
	"testing"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(db, orderRepo(db), cartRepo(db), userRepo(db))
}

func fillCart(t *testing.T, db *gorm.DB, userID uint, titles ...string) {
	t.Helper()
	svc := newCartService(db)
	for _, title := range titles {
		_, err := svc.Add(userID, &services.AddCartIn{MenuItem: title, Quantity: 2})
		require.NoError(t, err)
	}
}

func TestPlaceFromEmptyCart(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")

	require.ErrorIs(t, svc.PlaceFromCart(customer.ID), services.ErrCartEmpty)

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
}

func TestPlaceCreatesOneOrderPerCartLine(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")
	createMenuItem(t, db, "Greek Salad", "12.50")
	createMenuItem(t, db, "Bruschetta", "5.99")
	createMenuItem(t, db, "Lemon Dessert", "4.25")
	fillCart(t, db, customer.ID, "Greek Salad", "Bruschetta", "Lemon Dessert")

	require.NoError(t, svc.PlaceFromCart(customer.ID))

	var orders []entity.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 3)

	for _, o := range orders {
		require.Equal(t, customer.ID, o.UserID)
		require.False(t, o.Status)

		var items []entity.OrderItem
		require.NoError(t, db.Where("order_id = ?", o.ID).Find(&items).Error)
		require.Len(t, items, 1)
		require.Equal(t, 2, items[0].Quantity)
		require.True(t, items[0].Price.Equal(o.Total))
		require.True(t, items[0].Price.Equal(items[0].UnitPrice.Mul(two())))
	}

	var cartCount int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("user_id = ?", customer.ID).Count(&cartCount).Error)
	require.Zero(t, cartCount)
}

func TestReorderSameItemAfterPlacement(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	cartSvc := newCartService(db)
	customer := createUser(t, db, "cust")
	createMenuItem(t, db, "Greek Salad", "12.50")
	fillCart(t, db, customer.ID, "Greek Salad")
	require.NoError(t, svc.PlaceFromCart(customer.ID))

	// placement consumed the line; the same dish can go straight back in
	_, err := cartSvc.Add(customer.ID, &services.AddCartIn{MenuItem: "Greek Salad", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.PlaceFromCart(customer.ID))

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.EqualValues(t, 2, orders)
}

func TestAssignCrewRequiresRole(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")
	crew := createUser(t, db, "crew", entity.RoleDeliveryCrew)
	createMenuItem(t, db, "Greek Salad", "12.50")
	fillCart(t, db, customer.ID, "Greek Salad")
	require.NoError(t, svc.PlaceFromCart(customer.ID))

	var order entity.Order
	require.NoError(t, db.First(&order).Error)

	// a plain customer cannot be assigned
	err := svc.AssignCrew(order.ID, &services.AssignCrewIn{DeliveryCrew: customer.ID})
	require.ErrorIs(t, err, services.ErrNotDeliveryCrew)

	require.NoError(t, svc.AssignCrew(order.ID, &services.AssignCrewIn{DeliveryCrew: crew.ID}))

	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	require.NotNil(t, got.DeliveryCrewID)
	require.Equal(t, crew.ID, *got.DeliveryCrewID)
}

func TestCrewCanOnlyUpdateAssignedOrders(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")
	crew := createUser(t, db, "crew", entity.RoleDeliveryCrew)
	stranger := createUser(t, db, "stranger", entity.RoleDeliveryCrew)
	createMenuItem(t, db, "Greek Salad", "12.50")
	fillCart(t, db, customer.ID, "Greek Salad")
	require.NoError(t, svc.PlaceFromCart(customer.ID))

	var order entity.Order
	require.NoError(t, db.First(&order).Error)
	require.NoError(t, svc.AssignCrew(order.ID, &services.AssignCrewIn{DeliveryCrew: crew.ID}))

	delivered := true
	err := svc.UpdateStatus(stranger, order.ID, &services.UpdateStatusIn{Status: &delivered})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.UpdateStatus(crew, order.ID, &services.UpdateStatusIn{Status: &delivered}))

	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	require.True(t, got.Status)
}

func TestListShapesByRole(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")
	other := createUser(t, db, "other")
	manager := createUser(t, db, "mgr", entity.RoleManager)
	crew := createUser(t, db, "crew", entity.RoleDeliveryCrew)
	createMenuItem(t, db, "Greek Salad", "12.50")
	createMenuItem(t, db, "Bruschetta", "5.99")
	fillCart(t, db, customer.ID, "Greek Salad", "Bruschetta")
	fillCart(t, db, other.ID, "Greek Salad")
	require.NoError(t, svc.PlaceFromCart(customer.ID))
	require.NoError(t, svc.PlaceFromCart(other.ID))

	var firstOrder entity.Order
	require.NoError(t, db.First(&firstOrder).Error)
	require.NoError(t, svc.AssignCrew(firstOrder.ID, &services.AssignCrewIn{DeliveryCrew: crew.ID}))

	out, err := svc.List(manager)
	require.NoError(t, err)
	require.Len(t, out.([]services.OrderItemDeep), 3)

	out, err = svc.List(customer)
	require.NoError(t, err)
	require.Len(t, out.([]entity.OrderItem), 2)

	out, err = svc.List(crew)
	require.NoError(t, err)
	assigned := out.([]services.OrderSummary)
	require.Len(t, assigned, 1)
	require.Equal(t, firstOrder.ID, assigned[0].ID)
}

func TestDeleteOrderCascades(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	customer := createUser(t, db, "cust")
	createMenuItem(t, db, "Greek Salad", "12.50")
	fillCart(t, db, customer.ID, "Greek Salad")
	require.NoError(t, svc.PlaceFromCart(customer.ID))

	var order entity.Order
	require.NoError(t, db.First(&order).Error)

	require.NoError(t, svc.Delete(order.ID))

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)

	require.ErrorIs(t, svc.Delete(order.ID), gorm.ErrRecordNotFound)
}
