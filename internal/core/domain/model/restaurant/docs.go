// Package restaurant provides domain entities for restaurant and menu
// management in the fulfillment system.
//
// The package includes:
//   - Restaurant: The aggregate root carrying identity and the online flag
//   - MenuItem: A dish belonging to exactly one restaurant, with a decimal
//     price and an availability flag
//
// Only online restaurants accept new orders. The acceptance saga never
// touches this package; it collaborates with orders only.
package restaurant
