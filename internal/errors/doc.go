// Package errors provides the structured error handling used across praeda-go.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Configuration error codes surfaced by the taxonomy builder
//   - Generation error codes surfaced by the loot engine
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("loot table not found")
//	err := errors.InvalidRangef("min %v is greater than max %v", min, max)
//
// Adding metadata:
//
//	err := errors.NoNamesf("no names for %s/%s", itemType, subtype).
//	    WithMeta("item_type", itemType).
//	    WithMeta("subtype", subtype)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load loot table")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//	if errors.IsConfiguration(err) {
//	    // Builder rejected the mutation; the store is unchanged
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateNonNegative("levelVariance", opts.LevelVariance, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Taxonomy builder:
//   - Return configuration errors (DuplicateKey, UnknownParent, InvalidRange, EmptyValue)
//   - A failed mutation never changes the store
//
// Engine:
//   - Return generation errors (NoQualities, NoItemTypes, NoSubtypes, NoNames,
//     EmptyDistribution, InvalidRange)
//   - Include the failing type/subtype in metadata so configuration gaps are
//     diagnosable from the error alone
//
// Repository layer:
//   - Return NotFound / AlreadyExists with relevant IDs in metadata
//   - Wrap storage errors with context
package errors
