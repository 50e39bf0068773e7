package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

// BookingService owns the pre-booking core: the daily capacity gate, the
// atomic meal reservation, and the order lifecycle transitions.
type BookingService struct {
	meals    MealStore
	orders   OrderStore
	kitchens KitchenStore
}

func NewBookingService(meals MealStore, orders OrderStore, kitchens KitchenStore) *BookingService {
	return &BookingService{
		meals:    meals,
		orders:   orders,
		kitchens: kitchens,
	}
}

// Prebook reserves qty portions of the (kitchen, day, mealType) offering and
// records a prebooked order.
//
// The capacity count and the reservation are two separate operations: under
// concurrent prebooks the daily limit can overshoot slightly. The reservation
// itself cannot oversell — the remaining-quantity check and the increment
// happen in one conditional write.
func (s *BookingService) Prebook(ctx context.Context, userID, kitchenID primitive.ObjectID, day time.Time, mealType string, qty int, paymentMethod string) (*models.Order, *models.Meal, error) {
	if qty < 1 {
		return nil, nil, ErrInvalidQuantity
	}
	if !models.ValidMealType(mealType) {
		return nil, nil, ErrInvalidMealType
	}
	if paymentMethod != "" && !models.ValidPaymentMethod(paymentMethod) {
		return nil, nil, ErrInvalidPayment
	}

	kitchen, err := s.kitchens.FindActiveByID(ctx, kitchenID)
	if err != nil {
		return nil, nil, err
	}

	count, err := s.orders.CountActiveForDay(ctx, kitchenID, day)
	if err != nil {
		return nil, nil, err
	}
	if count >= int64(kitchen.Daily_order_limit) {
		return nil, nil, ErrCapacityExceeded
	}

	meal, err := s.meals.Reserve(ctx, kitchenID, day, mealType, qty)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:             primitive.NewObjectID(),
		User_id:        userID,
		Kitchen_id:     kitchenID,
		Meal_id:        meal.ID,
		Date:           day,
		Meal_type:      mealType,
		Qty:            qty,
		Status:         models.OrderPrebooked,
		Payment_method: paymentMethod,
		Created_at:     now,
		Updated_at:     now,
	}
	order.Order_id = order.ID.Hex()

	if err := s.orders.Insert(ctx, order); err != nil {
		// Hand the reserved quantity back; the reservation must not leak when
		// no order records it.
		_ = s.meals.Release(ctx, meal.ID, qty)
		return nil, nil, err
	}

	return order, meal, nil
}

// Cancel moves a customer's prebooked order to cancelled and releases its
// quantity. Any other starting status fails, so a cancel can release at most
// once.
func (s *BookingService) Cancel(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.UpdateStatus(ctx, order.ID, models.OrderPrebooked, models.OrderCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}
	order.Status = models.OrderCancelled

	// Status write and ledger release are deliberately not transactional: a
	// crash in between frees capacity rather than leaking it.
	if err := s.meals.Release(ctx, order.Meal_id, order.Qty); err != nil {
		return nil, err
	}

	return order, nil
}

// Decide applies a kitchen's accept/reject to a prebooked order. Decisions on
// already-decided orders fail: re-rejecting would release quantity twice.
func (s *BookingService) Decide(ctx context.Context, kitchen *models.Kitchen, orderID primitive.ObjectID, decision string) (*models.Order, error) {
	if !kitchen.Verified {
		return nil, ErrVerificationRequired
	}

	order, err := s.orders.FindForKitchen(ctx, orderID, kitchen.ID)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(decision) {
	case "accept":
		ok, err := s.orders.UpdateStatus(ctx, order.ID, models.OrderPrebooked, models.OrderAccepted)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidTransition
		}
		order.Status = models.OrderAccepted
		return order, nil

	case "reject":
		ok, err := s.orders.UpdateStatus(ctx, order.ID, models.OrderPrebooked, models.OrderRejected)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidTransition
		}
		order.Status = models.OrderRejected

		if err := s.meals.Release(ctx, order.Meal_id, order.Qty); err != nil {
			return nil, err
		}
		return order, nil
	}

	return nil, ErrInvalidTransition
}

// SetPaymentMethod records the payment method on a still-prebooked order.
func (s *BookingService) SetPaymentMethod(ctx context.Context, orderID, userID primitive.ObjectID, method string) (*models.Order, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, ErrInvalidPayment
	}

	order, err := s.orders.FindForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.SetPaymentMethod(ctx, order.ID, method)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	order.Payment_method = method
	return order, nil
}
