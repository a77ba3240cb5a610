// Package domain holds the value shapes the backup engine hands to the
// translation layer: paths, operation progress, store and sort enums, and the
// closed set of user-facing errors.
//
// The types carry no behavior beyond what rendering needs. Error kinds are a
// sealed sum type: every kind dispatches through ErrorVisitor, so a new kind
// cannot be added without every visitor learning to phrase it.
package domain
