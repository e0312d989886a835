// Package services provides domain services for the table-side ordering
// system. It implements business logic that spans snapshots rather than
// belonging to a single aggregate root.
//
// The package includes:
//   - ChangeDetector: A stateless diff over order store snapshots that emits
//     status-change and new-order events for the notification layer
//
// Domain services here are pure: they take the caller's previous observation
// and a current read, and return zero or one event. All polling and rendering
// concerns live with external collaborators.
package services
