// Package engine contains the pet state machine and its decay loop.
//
// ARCHITECTURAL RULE: the Engine is the only owner of the live pet.
// Callers get detached copies from Snapshot and change state only through
// Apply. One RWMutex guards the pet; nothing inside a critical section
// does I/O or takes another engine lock.
package engine
