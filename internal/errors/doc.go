// Package errors is the structured error type shared by every layer of the
// catalog service.
//
// An *Error carries a Code, a client-facing message, an optional cause and
// free-form metadata. Codes map to HTTP statuses (Code.HTTPStatus) and gRPC
// codes (Code.GRPCCode), so handlers never decide status codes themselves.
//
// Creating errors:
//
//	err := errors.NotFoundf("character %d not found", id)
//	err := errors.CategoryConflictf("a %s is already equipped", item.Category)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get item").WithMeta("item_id", id)
//	}
//
// Validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateNonNegative("health", input.Health, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Checking outcomes goes through the code, never the message:
//
//	if errors.HasCode(err, errors.CodeAlreadyEquipped, errors.CodeCategoryConflict) {
//	    // the equipped set rejected the item
//	}
//
// Repositories return NotFound, AlreadyExists and FailedPrecondition.
// Orchestrators validate input and translate storage outcomes into domain
// codes such as AlreadyEquipped. Handlers only convert.
package errors
