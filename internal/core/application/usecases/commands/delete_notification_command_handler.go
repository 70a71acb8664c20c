package commands

import (
	"context"

	"shop/internal/pkg/errs"
)

// DeleteNotificationCommandHandler removes one notification from its recipient's inbox.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a new DeleteNotificationCommandHandler.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{uowFactory: uowFactory}
}

func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.IsOwnedBy(cmd.Actor().ID) {
		return errs.NewUnauthorizedError("delete another user's notification")
	}

	if err = repo.Delete(ctx, n.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
