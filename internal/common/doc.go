// Package common provides shared interfaces used throughout the devboot application.
//
// # Core Components
//
// - Logger: the logging contract injected into the domain packages
// - NopLogger: a Logger that discards everything, for library callers and tests
//
// # Usage
//
//	type MyComponent struct {
//	    logger common.Logger
//	}
//
//	func NewMyComponent(logger common.Logger) *MyComponent {
//	    if logger == nil {
//	        logger = common.NopLogger{}
//	    }
//	    return &MyComponent{logger: logger}
//	}
//
// The common package has no dependencies on other internal packages.
package common
