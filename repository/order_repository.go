package repository

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ListAllItems is the manager view: every order line with its order and
// menu item preloaded.
func (r *OrderRepository) ListAllItems() ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Order").Preload("MenuItem").Find(&items).Error
	return items, err
}

// ListItemsForUser scopes order lines to orders owned by the user.
func (r *OrderRepository) ListItemsForUser(userID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.
		Select("order_items.*").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Find(&items).Error
	return items, err
}

// ListAssigned returns the orders assigned to a delivery crew member.
func (r *OrderRepository) ListAssigned(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("delivery_crew_id = ?", crewID).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetAssigned(crewID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND delivery_crew_id = ?", orderID, crewID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderItemsDeep(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Order").Preload("MenuItem").
		Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// AssignCrew sets the delivery crew on an order.
func (r *OrderRepository) AssignCrew(orderID, crewID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("delivery_crew_id", crewID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatus flips the delivered flag on any order.
func (r *OrderRepository) UpdateStatus(orderID uint, status bool) (bool, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdateStatusAssigned(orderID, crewID uint, status bool) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND delivery_crew_id = ?", orderID, crewID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteOrder removes the order and cascades its lines.
func (r *OrderRepository) DeleteOrder(orderID uint) (bool, error) {
	var deleted bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected == 1
		return nil
	})
	return deleted, err
}
