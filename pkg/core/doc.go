// Package core provides the shared foundations for the collext helper packages.
//
// It defines the sentinel errors and the CollectionError type returned by
// helpers that cannot complete on the collection they were given, and it owns
// the logrus logger every helper package writes diagnostics to.
//
// Errors are matched with errors.Is:
//
//	v, err := lists.Pop(stack)
//	if errors.Is(err, core.ErrEmptyCollection) {
//		// nothing left to pop
//	}
//
// Diagnostics never change a helper's result. They default to warn level on
// stderr and can be redirected:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	core.SetLogger(log)
package core
