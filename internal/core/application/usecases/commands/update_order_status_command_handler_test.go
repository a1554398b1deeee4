package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	assigned := activePartner(t, "Andheri")
	ord := pendingOrder(t, "Andheri")
	require.NoError(t, assigned.TakeOrder())
	require.NoError(t, ord.Assign(assigned.ID()))
	require.NoError(t, ord.MarkPicked())

	cmd, err := commands.NewUpdateOrderStatusCommand(ord.ID(), "delivered")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, ord.Status())
	assert.Equal(t, 0, assigned.CurrentLoad())
	assert.Equal(t, 1, assigned.Metrics().CompletedOrders())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_BackToPending(t *testing.T) {
	ctx := t.Context()
	assigned := activePartner(t, "Andheri")
	ord := pendingOrder(t, "Andheri")
	require.NoError(t, assigned.TakeOrder())
	require.NoError(t, ord.Assign(assigned.ID()))

	cmd, err := commands.NewUpdateOrderStatusCommand(ord.ID(), "pending")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	partnerRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil).Once()
	partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, ord.Status())
	assert.Nil(t, ord.Partner())
	assert.Equal(t, 0, assigned.CurrentLoad())
	assert.Equal(t, 0, assigned.Metrics().CompletedOrders())
}

func TestUpdateOrderStatusCommandHandler_Handle_Picked(t *testing.T) {
	ctx := t.Context()
	assigned := activePartner(t, "Andheri")
	ord := pendingOrder(t, "Andheri")
	require.NoError(t, assigned.TakeOrder())
	require.NoError(t, ord.Assign(assigned.ID()))

	cmd, err := commands.NewUpdateOrderStatusCommand(ord.ID(), "picked")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Picked, ord.Status())
	assert.Equal(t, 1, assigned.CurrentLoad())
	uow.AssertNotCalled(t, "PartnerRepository")
}

func TestUpdateOrderStatusCommandHandler_Handle_AssignedIsRejected(t *testing.T) {
	ctx := t.Context()
	ord := pendingOrder(t, "Andheri")

	cmd, err := commands.NewUpdateOrderStatusCommand(ord.ID(), "assigned")
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewUpdateOrderStatusCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	ord := pendingOrder(t, "Andheri")

	cmd, err := commands.NewUpdateOrderStatusCommand(ord.ID(), "delivered")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Pending, ord.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(pendingOrder(t, "Andheri").ID(), "en-route")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
