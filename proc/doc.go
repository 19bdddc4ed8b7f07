// Package proc implements process termination for generated code.
//
// Whether Exit actually terminates is selected when the Exiter is
// constructed, not by a build tag: production wiring uses Terminate, tests
// use Report to observe status codes without ending the test process.
package proc
