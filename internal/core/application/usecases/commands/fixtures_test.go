package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, area string) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Ravi Kumar", "+91-9820012345", "12 Hill Road")
	require.NoError(t, err)
	item, err := order.NewItem("Thali", 1, 250)
	require.NoError(t, err)

	ord, err := order.NewOrder(
		kernel.NewUUID(), "ORD-100", customer, area,
		[]order.Item{item}, time.Now().Add(time.Hour), 250)
	require.NoError(t, err)
	return ord
}

func activePartner(t *testing.T, areas ...string) *partner.Partner {
	t.Helper()

	shift, err := partner.NewShift("09:00", "21:00")
	require.NoError(t, err)
	p, err := partner.NewPartner(
		kernel.NewUUID(), "Asha Patel", "asha@example.com", "+91-9820098200",
		areas, shift)
	require.NoError(t, err)
	return p
}

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		"ORD-100",
		"Ravi Kumar",
		"+91-9820012345",
		"12 Hill Road",
		"Andheri",
		[]commands.OrderItem{{Name: "Thali", Quantity: 1, Price: 250}},
		time.Now().Add(time.Hour),
		250,
	)
	require.NoError(t, err)
	return cmd
}
