package coffeeshop_test

import (
	"strings"
	"testing"

	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShop_NewCustomer(t *testing.T) {
	shop := coffeeshop.NewShop()

	t.Run("should create customer with valid name", func(t *testing.T) {
		for _, name := range []string{"A", "Alice", strings.Repeat("b", 15), "Zoë"} {
			customer, err := shop.NewCustomer(name)

			require.NoError(t, err)
			require.NoError(t, customer.Validate())
			assert.Equal(t, name, customer.Name())
		}
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		customer, err := shop.NewCustomer("")

		require.Error(t, err)
		assert.Nil(t, customer)
		assert.True(t, errs.IsRangeKind(err))
	})

	t.Run("should fail with name longer than 15 characters", func(t *testing.T) {
		customer, err := shop.NewCustomer("Alice VeryLongName")

		assert.Nil(t, customer)
		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 18, rangeErr.Value)
		assert.Equal(t, coffeeshop.CustomerNameMaxLength, rangeErr.Max)
	})
}

func TestCustomer_CreateOrder(t *testing.T) {
	shop := coffeeshop.NewShop()

	t.Run("should create an order linking customer and coffee", func(t *testing.T) {
		charlie, _ := shop.NewCustomer("Charlie")
		espresso, _ := shop.NewCoffee("Espresso")

		order, err := charlie.CreateOrder(espresso, 2.5)

		require.NoError(t, err)
		require.NoError(t, order.Validate())
		assert.Same(t, charlie, order.Customer())
		assert.Same(t, espresso, order.Coffee())
		assert.Equal(t, 2.5, order.Price())
	})

	t.Run("should register the order in all three collections", func(t *testing.T) {
		local := coffeeshop.NewShop()
		diana, _ := local.NewCustomer("Diana")
		latte, _ := local.NewCoffee("Latte")

		order, err := diana.CreateOrder(latte, 3.0)

		require.NoError(t, err)
		assert.Equal(t, []*coffeeshop.Order{order}, diana.Orders())
		assert.Equal(t, []*coffeeshop.Order{order}, latte.Orders())
		assert.Equal(t, []*coffeeshop.Order{order}, local.Orders())
	})

	t.Run("should fail with nil coffee as wrong type", func(t *testing.T) {
		eve, _ := shop.NewCustomer("Eve")

		order, err := eve.CreateOrder(nil, 2.5)

		assert.Nil(t, order)
		require.ErrorIs(t, err, coffeeshop.ErrCoffeeIsNotConstructed)
		assert.True(t, errs.IsTypeKind(err))
		assert.Empty(t, eve.Orders())
	})

	t.Run("should fail with zero value coffee", func(t *testing.T) {
		eve, _ := shop.NewCustomer("Eve")

		_, err := eve.CreateOrder(&coffeeshop.Coffee{}, 2.5)

		assert.True(t, errs.IsTypeKind(err))
	})

	t.Run("should fail on a zero value customer", func(t *testing.T) {
		espresso, _ := shop.NewCoffee("Espresso")
		ghost := &coffeeshop.Customer{}

		_, err := ghost.CreateOrder(espresso, 2.5)

		require.ErrorIs(t, err, coffeeshop.ErrCustomerIsNotConstructed)
		assert.Equal(t, 0, espresso.NumOrders())
	})

	t.Run("should fail with coffee from another shop", func(t *testing.T) {
		frank, _ := shop.NewCustomer("Frank")
		elsewhere, _ := coffeeshop.NewShop().NewCoffee("Espresso")

		_, err := frank.CreateOrder(elsewhere, 2.5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), coffeeshop.ErrCoffeeFromAnotherShop.Error())
		assert.Empty(t, frank.Orders())
		assert.Empty(t, elsewhere.Orders())
	})

	t.Run("should propagate price errors and register nothing", func(t *testing.T) {
		local := coffeeshop.NewShop()
		bob, _ := local.NewCustomer("Bob")
		latte, _ := local.NewCoffee("Latte")

		order, err := bob.CreateOrder(latte, 15.0)

		assert.Nil(t, order)
		assert.True(t, errs.IsRangeKind(err))
		assert.Empty(t, bob.Orders())
		assert.Empty(t, latte.Orders())
		assert.Empty(t, local.Orders())
	})
}

func TestCustomer_Coffees(t *testing.T) {
	shop := coffeeshop.NewShop()

	t.Run("should start empty", func(t *testing.T) {
		eve, _ := shop.NewCustomer("Eve")

		assert.Empty(t, eve.Coffees())
		assert.Empty(t, eve.Orders())
	})

	t.Run("should deduplicate repeat coffees", func(t *testing.T) {
		frank, _ := shop.NewCustomer("Frank")
		mocha, _ := shop.NewCoffee("Mocha")

		_, _ = frank.CreateOrder(mocha, 3.0)
		_, _ = frank.CreateOrder(mocha, 3.0)

		assert.Equal(t, []*coffeeshop.Coffee{mocha}, frank.Coffees())
		assert.Len(t, frank.Orders(), 2)
	})

	t.Run("should list coffees in order of first purchase", func(t *testing.T) {
		grace, _ := shop.NewCustomer("Grace")
		americano, _ := shop.NewCoffee("Americano")
		macchiato, _ := shop.NewCoffee("Macchiato")

		_, _ = grace.CreateOrder(macchiato, 2.5)
		_, _ = grace.CreateOrder(americano, 2.0)
		_, _ = grace.CreateOrder(macchiato, 2.5)

		assert.Equal(t, []*coffeeshop.Coffee{macchiato, americano}, grace.Coffees())
	})
}

func TestCustomer_TotalSpent(t *testing.T) {
	shop := coffeeshop.NewShop()
	henry, _ := shop.NewCustomer("Henry")
	latte, _ := shop.NewCoffee("Latte")
	mocha, _ := shop.NewCoffee("Mocha")

	assert.Equal(t, 0.0, henry.TotalSpent())

	_, _ = henry.CreateOrder(latte, 3.5)
	_, _ = henry.CreateOrder(mocha, 4.25)

	assert.Equal(t, 7.75, henry.TotalSpent())
}

func TestCustomer_Validate(t *testing.T) {
	var customer *coffeeshop.Customer

	err := customer.Validate()

	assert.Equal(t, coffeeshop.ErrCustomerIsNotConstructed, err)
	assert.True(t, errs.IsTypeKind(err))
}
