package services

import (
	"time"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// ----- DTOs -----

type AssignCrewIn struct {
	DeliveryCrew uint `json:"delivery_crew" binding:"required"`
}

type UpdateStatusIn struct {
	Status *bool `json:"status" binding:"required"`
}

// OrderSummary is the delivery-crew view of an order.
type OrderSummary struct {
	ID     uint   `json:"id"`
	User   uint   `json:"user"`
	Status bool   `json:"status"`
	Date   string `json:"date"`
}

// OrderItemDeep is the manager view: an order line with its order and
// menu item expanded.
type OrderItemDeep struct {
	ID        uint            `json:"id"`
	Order     OrderSummary    `json:"order"`
	MenuItem  entity.MenuItem `json:"menuitem"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Price     decimal.Decimal `json:"price"`
}

func summarize(o *entity.Order) OrderSummary {
	return OrderSummary{
		ID:     o.ID,
		User:   o.UserID,
		Status: o.Status,
		Date:   o.Date.Format(time.DateOnly),
	}
}

func deepen(items []entity.OrderItem) []OrderItemDeep {
	out := make([]OrderItemDeep, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemDeep{
			ID:        it.ID,
			Order:     summarize(&it.Order),
			MenuItem:  it.MenuItem,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Price:     it.Price,
		})
	}
	return out
}

// ----- Listing -----

// List shapes the result by role: managers and superusers see every
// order line expanded, customers see their own orders' lines, delivery
// crew see the orders assigned to them.
func (s *OrderService) List(principal *entity.User) (any, error) {
	switch {
	case principal.Superuser || principal.HasRole(entity.RoleManager):
		items, err := s.Repo.ListAllItems()
		if err != nil {
			return nil, err
		}
		return deepen(items), nil
	case principal.HasRole(entity.RoleCustomer):
		return s.Repo.ListItemsForUser(principal.ID)
	case principal.HasRole(entity.RoleDeliveryCrew):
		orders, err := s.Repo.ListAssigned(principal.ID)
		if err != nil {
			return nil, err
		}
		out := make([]OrderSummary, 0, len(orders))
		for i := range orders {
			out = append(out, summarize(&orders[i]))
		}
		return out, nil
	}
	return []entity.OrderItem{}, nil
}

// ----- Placement -----

// PlaceFromCart turns every cart line into its own Order with exactly
// one OrderItem, copying the snapshot quantity and prices, then clears
// the cart. The steps are intentionally not wrapped in one transaction:
// lines committed before a failure stay committed and the cart is left
// untouched, preserving the documented behavior of the system this
// replaces.
func (s *OrderService) PlaceFromCart(userID uint) error {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrCartEmpty
	}

	for _, line := range lines {
		order := entity.Order{
			UserID: userID,
			Status: false,
			Total:  line.Price,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(s.DB, &order); err != nil {
			return err
		}

		item := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Price:      line.Price,
		}
		if err := s.Repo.CreateOrderItem(s.DB, &item); err != nil {
			return err
		}
	}

	return s.CartRepo.ClearForUser(s.DB, userID)
}

// ----- Detail -----

// Detail applies the same role scoping as List to a single order id.
func (s *OrderService) Detail(principal *entity.User, orderID uint) (any, error) {
	switch {
	case principal.HasRole(entity.RoleDeliveryCrew):
		o, err := s.Repo.GetAssigned(principal.ID, orderID)
		if err != nil {
			return nil, err
		}
		return summarize(o), nil
	case principal.Superuser || principal.HasRole(entity.RoleManager):
		if _, err := s.Repo.GetOrder(orderID); err != nil {
			return nil, err
		}
		items, err := s.Repo.GetOrderItemsDeep(orderID)
		if err != nil {
			return nil, err
		}
		return deepen(items), nil
	default:
		if _, err := s.Repo.GetOrderForUser(principal.ID, orderID); err != nil {
			return nil, err
		}
		return s.Repo.GetOrderItems(orderID)
	}
}

// ----- Management -----

// AssignCrew reassigns the order's delivery crew. Membership in the
// Delivery crew group is checked here, not at the storage layer.
func (s *OrderService) AssignCrew(orderID uint, in *AssignCrewIn) error {
	isCrew, err := s.UserRepo.HasRole(in.DeliveryCrew, entity.RoleDeliveryCrew)
	if err != nil {
		return err
	}
	if !isCrew {
		return ErrNotDeliveryCrew
	}

	ok, err := s.Repo.AssignCrew(orderID, in.DeliveryCrew)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus marks an order delivered or pending. Managers may touch
// any order, delivery crew only the orders assigned to them.
func (s *OrderService) UpdateStatus(principal *entity.User, orderID uint, in *UpdateStatusIn) error {
	var (
		ok  bool
		err error
	)
	if principal.HasRole(entity.RoleManager) || principal.Superuser {
		ok, err = s.Repo.UpdateStatus(orderID, *in.Status)
	} else {
		ok, err = s.Repo.UpdateStatusAssigned(orderID, principal.ID, *in.Status)
	}
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *OrderService) Delete(orderID uint) error {
	ok, err := s.Repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}
