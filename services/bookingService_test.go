package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

// memStore backs all three store interfaces with a mutex-guarded map so the
// service can be exercised without a database.
type memStore struct {
	mu         sync.Mutex
	meals      map[primitive.ObjectID]*models.Meal
	orders     map[primitive.ObjectID]*models.Order
	kitchens   map[primitive.ObjectID]*models.Kitchen
	failInsert bool
}

func newMemStore() *memStore {
	return &memStore{
		meals:    map[primitive.ObjectID]*models.Meal{},
		orders:   map[primitive.ObjectID]*models.Order{},
		kitchens: map[primitive.ObjectID]*models.Kitchen{},
	}
}

func (s *memStore) addKitchen(limit int, active, verified bool) *models.Kitchen {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := "Test Kitchen"
	kitchen := &models.Kitchen{
		ID:                primitive.NewObjectID(),
		Name:              &name,
		Verified:          verified,
		Daily_order_limit: limit,
		Is_active:         active,
	}
	kitchen.Kitchen_id = kitchen.ID.Hex()
	s.kitchens[kitchen.ID] = kitchen
	return kitchen
}

func (s *memStore) addMeal(kitchenID primitive.ObjectID, day time.Time, mealType string, totalQty int) *models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	title := "Dal Chawal"
	price := 120.0
	meal := &models.Meal{
		ID:           primitive.NewObjectID(),
		Kitchen_id:   kitchenID,
		Date:         day,
		Meal_type:    mealType,
		Title:        &title,
		Price:        &price,
		Total_qty:    &totalQty,
		Is_available: true,
	}
	meal.Meal_id = meal.ID.Hex()
	s.meals[meal.ID] = meal
	return meal
}

func (s *memStore) soldQty(mealID primitive.ObjectID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals[mealID].Sold_qty
}

func (s *memStore) Reserve(_ context.Context, kitchenID primitive.ObjectID, day time.Time, mealType string, qty int) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, meal := range s.meals {
		if meal.Kitchen_id != kitchenID || !meal.Date.Equal(day) || meal.Meal_type != mealType {
			continue
		}
		if !meal.Is_available || meal.RemainingQty() < qty {
			return nil, ErrMealUnavailable
		}
		meal.Sold_qty += qty
		copied := *meal
		return &copied, nil
	}
	return nil, ErrMealUnavailable
}

func (s *memStore) Release(_ context.Context, mealID primitive.ObjectID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meal, ok := s.meals[mealID]
	if !ok {
		return ErrMealUnavailable
	}
	meal.Sold_qty -= qty
	if meal.Sold_qty < 0 {
		meal.Sold_qty = 0
	}
	return nil
}

func (s *memStore) CountActiveForDay(_ context.Context, kitchenID primitive.ObjectID, day time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, order := range s.orders {
		if order.Kitchen_id == kitchenID && order.Date.Equal(day) && order.Status != models.OrderCancelled {
			count++
		}
	}
	return count, nil
}

func (s *memStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert {
		return errors.New("insert failed")
	}
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *memStore) FindForUser(_ context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.User_id != userID {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *memStore) FindForKitchen(_ context.Context, orderID, kitchenID primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.Kitchen_id != kitchenID {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *memStore) UpdateStatus(_ context.Context, orderID primitive.ObjectID, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	return true, nil
}

func (s *memStore) FindActiveByID(_ context.Context, id primitive.ObjectID) (*models.Kitchen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kitchen, ok := s.kitchens[id]
	if !ok || !kitchen.Is_active {
		return nil, ErrKitchenNotFound
	}
	copied := *kitchen
	return &copied, nil
}

func (s *memStore) SetPaymentMethod(_ context.Context, orderID primitive.ObjectID, method string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.Status != models.OrderPrebooked {
		return false, nil
	}
	order.Payment_method = method
	return true, nil
}

func newTestService() (*BookingService, *memStore) {
	store := newMemStore()
	return NewBookingService(store, store, store), store
}

func testDay() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestPrebookReservesQuantity(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, got, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 3, models.PaymentUPI)
	require.NoError(t, err)

	assert.Equal(t, models.OrderPrebooked, order.Status)
	assert.Equal(t, 3, order.Qty)
	assert.Equal(t, models.PaymentUPI, order.Payment_method)
	assert.Equal(t, order.ID.Hex(), order.Order_id)
	assert.Equal(t, 3, got.Sold_qty)
	assert.Equal(t, 3, store.soldQty(meal.ID))
}

func TestPrebookRejectsWhenQuantityShort(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	_, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 3, "")
	require.NoError(t, err)

	_, _, err = svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 3, "")
	assert.ErrorIs(t, err, ErrMealUnavailable)
	assert.Equal(t, 3, store.soldQty(meal.ID))
}

func TestPrebookValidation(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	_, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 0, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, _, err = svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), "brunch", 1, "")
	assert.ErrorIs(t, err, ErrInvalidMealType)

	_, _, err = svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "cash")
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestPrebookInactiveKitchen(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, false, true)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)

	_, _, err := svc.Prebook(context.Background(), primitive.NewObjectID(), kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	assert.ErrorIs(t, err, ErrKitchenNotFound)

	// unknown kitchen ids behave the same as suspended ones
	_, _, err = svc.Prebook(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), testDay(), models.MealTypeLunch, 1, "")
	assert.ErrorIs(t, err, ErrKitchenNotFound)
}

func TestPrebookCapacityGate(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(2, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 100)
	userID := primitive.NewObjectID()

	_, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	require.NoError(t, err)
	cancelTarget, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	require.NoError(t, err)

	_, _, err = svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// cancelled orders free up daily capacity
	_, err = svc.Cancel(context.Background(), cancelTarget.ID, userID)
	require.NoError(t, err)

	_, _, err = svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	assert.NoError(t, err)
	assert.Equal(t, 2, store.soldQty(meal.ID))
}

func TestPrebookReleasesOnInsertFailure(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	store.failInsert = true

	_, _, err := svc.Prebook(context.Background(), primitive.NewObjectID(), kitchen.ID, testDay(), models.MealTypeLunch, 2, "")
	require.Error(t, err)
	assert.Equal(t, 0, store.soldQty(meal.ID))
}

func TestCancelReleasesOnce(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeDinner, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeDinner, 3, "")
	require.NoError(t, err)
	require.Equal(t, 3, store.soldQty(meal.ID))

	cancelled, err := svc.Cancel(context.Background(), order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, cancelled.Status)
	assert.Equal(t, 0, store.soldQty(meal.ID))

	// a second cancel must not release again
	_, err = svc.Cancel(context.Background(), order.ID, userID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, store.soldQty(meal.ID))
}

func TestCancelWrongUser(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), order.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDecideAccept(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 2, "")
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), kitchen, order.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, models.OrderAccepted, decided.Status)
	assert.Equal(t, 2, store.soldQty(meal.ID))

	// accepted orders cannot be cancelled by the customer
	_, err = svc.Cancel(context.Background(), order.ID, userID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecideRejectReleasesQuantity(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 2, "")
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), kitchen, order.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, models.OrderRejected, decided.Status)
	assert.Equal(t, 0, store.soldQty(meal.ID))

	// re-deciding a rejected order must not release twice
	_, err = svc.Decide(context.Background(), kitchen, order.ID, "reject")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, store.soldQty(meal.ID))
}

func TestDecideRequiresVerifiedKitchen(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, false)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)

	_, err := svc.Decide(context.Background(), kitchen, primitive.NewObjectID(), "accept")
	assert.ErrorIs(t, err, ErrVerificationRequired)
}

func TestDecideUnknownDecision(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), kitchen, order.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetPaymentMethod(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(50, true, true)
	store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 5)
	userID := primitive.NewObjectID()

	order, _, err := svc.Prebook(context.Background(), userID, kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
	require.NoError(t, err)

	_, err = svc.SetPaymentMethod(context.Background(), order.ID, userID, "cash")
	assert.ErrorIs(t, err, ErrInvalidPayment)

	updated, err := svc.SetPaymentMethod(context.Background(), order.ID, userID, models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCard, updated.Payment_method)

	_, err = svc.Decide(context.Background(), kitchen, order.ID, "accept")
	require.NoError(t, err)

	// payment method locks once the order leaves prebooked
	_, err = svc.SetPaymentMethod(context.Background(), order.ID, userID, models.PaymentUPI)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConcurrentPrebooksNeverOversell(t *testing.T) {
	svc, store := newTestService()
	kitchen := store.addKitchen(1000, true, true)
	meal := store.addMeal(kitchen.ID, testDay(), models.MealTypeLunch, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Prebook(context.Background(), primitive.NewObjectID(), kitchen.ID, testDay(), models.MealTypeLunch, 1, "")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, successes)
	assert.Equal(t, 10, store.soldQty(meal.ID))
}
