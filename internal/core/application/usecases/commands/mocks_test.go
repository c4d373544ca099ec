package commands_test

import (
	"log/slog"

	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockShopDirectory struct{ mock.Mock }

func (m *MockShopDirectory) NewCustomer(name string) (*coffeeshop.Customer, error) {
	args := m.Called(name)
	c, _ := args.Get(0).(*coffeeshop.Customer)
	return c, args.Error(1)
}

func (m *MockShopDirectory) NewCoffee(name string) (*coffeeshop.Coffee, error) {
	args := m.Called(name)
	c, _ := args.Get(0).(*coffeeshop.Coffee)
	return c, args.Error(1)
}

func (m *MockShopDirectory) Customer(id kernel.UUID) (*coffeeshop.Customer, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*coffeeshop.Customer)
	return c, args.Error(1)
}

func (m *MockShopDirectory) Coffee(id kernel.UUID) (*coffeeshop.Coffee, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*coffeeshop.Coffee)
	return c, args.Error(1)
}

func (m *MockShopDirectory) SpendByCustomer() []coffeeshop.Spend {
	args := m.Called()
	s, _ := args.Get(0).([]coffeeshop.Spend)
	return s
}

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) EntityCreated(kind string) {
	m.Called(kind)
}

func (m *MockOrderMetrics) OrderCreated(coffee string, price float64) {
	m.Called(coffee, price)
}

func (m *MockOrderMetrics) ValidationFailed(err error) {
	m.Called(err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
