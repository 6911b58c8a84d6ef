// Package observer broadcasts messages to every registered observer.
//
// Where a handler chain hands a message to exactly one responsible
// handler, a Subject calls the matching method on all of its observers
// and each observer decides whether to act. Failures from individual
// observers do not stop the broadcast; they are combined and returned.
package observer
