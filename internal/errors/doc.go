// Package errors provides the coded error type used across the AUS world plugin.
//
// Every failure raised during generation is a configuration defect rather
// than a transient condition, so nothing here retries. The taxonomy maps onto
// codes as follows:
//
//   - OutOfRange: an option value outside its declared domain
//   - NotFound: an item or location name missing from the static tables
//   - AlreadyExists: two table entries share a name or numeric id
//   - InvalidArgument: malformed input (unknown option key, bad alias)
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.OutOfRangeValue("gold_orbs_required", 11, 0, 10)
//	err := errors.UnknownItem("Wall Jmup", aus.ItemNames())
//
// Adding metadata:
//
//	err := errors.NotFound("slot data not found").
//	    WithMeta("seed_name", seed).
//	    WithMeta("player", player)
//
// Wrapping errors keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store slot data")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	vb.FieldError("difficulty", err)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers convert on the way out with ToGRPCError and clients convert back
// with FromGRPCError. Metadata travels as a structpb.Struct status detail.
package errors
