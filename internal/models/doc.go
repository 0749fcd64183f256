// Package models defines the value types that leave the ledger core.
//
// The ledger keeps its own linked nodes private; everything handed to the
// service layer, the console driver or the calculator is one of these plain
// snapshots. They carry no pointers back into the ledger, so a caller may hold
// on to them after the group has changed.
//
// # Models
//
//   - Member: a user's name and running balance at the time of the snapshot
//   - Transaction: one posted contribution, newest first in listings
//   - Group: a group's name together with its members and log size
//   - Settlement: a suggested payment that evens out contributions
package models
