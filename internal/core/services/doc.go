// Package services implements the driving ports over the driven ones:
// the domain store (favorites, meal plan, shopping list, preferences,
// recent searches) on top of the key-value store, plus nutrition
// aggregation and catalog discovery.
//
// The store is the sole writer of persisted state. Every mutation is a
// read-modify-write of one logical key; storage failures are swallowed by
// the key-value adapter, so the worst outcome of any operation here is
// silently-unpersisted data.
package services
