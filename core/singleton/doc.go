// Package singleton provides lazy construct-at-most-once cells. A Lazy[T]
// builds its value on the first Get and hands every caller the same value
// afterwards, serializing concurrent first calls. A failed constructor is
// retried on the next Get instead of poisoning the cell.
//
// Example usage:
//
//	pool := singleton.New(func() (*Pool, error) {
//	    return Dial(addr)
//	})
//	p, err := pool.Get() // dials once, no matter how many goroutines race here
package singleton
