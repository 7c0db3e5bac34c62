package commands

import (
	"context"

	"amenade/internal/core/domain/model/packages"
)

// CreatePackageCommandHandler persists a newly posted package.
// The package is created in Draft status and immediately posted, making it
// visible to travelers browsing for packages.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package creation.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pkg, err := packages.NewPackage(
		command.PackageID(),
		command.Title(),
		command.Description(),
		command.Category(),
		command.Dimensions(),
		command.SenderID(),
		command.Pickup(),
		command.PickupDate(),
		command.Delivery(),
		command.DeliveryDate(),
		command.OfferedPrice(),
	)
	if err != nil {
		return err
	}

	if err = pkg.Post(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
