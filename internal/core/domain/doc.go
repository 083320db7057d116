// Package domain contains the meal-planning entities and the pure
// functions derived from them: ingredient categorisation, shopping-list
// aggregation, and nutrition extraction. Nothing in this package performs
// I/O; persistence lives behind the driven ports.
package domain
