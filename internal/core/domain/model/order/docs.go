// Package order provides domain entities and business logic for table-side
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding identity, cart snapshot, and status
//   - Cart and CartLine: The guest's selection, with prices frozen at add-time
//   - Status and StageSequence: A configurable, forward-only state machine
//   - BonusPolicy: The complimentary-item threshold rule
//
// Key business rules:
//   - Orders must have a positive identifier, a valid table, and a non-empty cart
//   - Status follows the configured stage sequence forward only; skipping stages
//     is allowed, repeating the current stage is idempotent, moving back is not
//   - The terminal stage is exited only via bulk clearing, never via transition
//   - Totals are computed in one place and are independent of line order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
