// Package property implements the property registry and per-instance
// storage layer of the observe framework.
//
// A property is an observable, per-instance state slot with its own
// change-subscriber list. Which properties a type has is declared once, in
// an explicit table (see Declarer), and cached process-wide per concrete
// type: every instance of one type shares the same descriptor identities,
// while each instance carries its own Storage with the current values and
// observer lists.
//
// Two descriptor implementations ship with the package: Value, a generic
// boxed-value property, and Alias, a property computed from other
// properties. Anything implementing Descriptor can participate; richer
// typed properties live with the widget layers built on top.
//
// Linking an instance is two-phase: first every descriptor allocates its
// slot, then every descriptor resolves references to sibling properties.
// The split exists because dependency resolution (Alias) must be able to
// read sibling slots that already exist.
package property
