/*
Package errors implements the error values used by the redemption validator
and its host tooling.

Every error returned by this module wraps one of the registered root errors.
Reuse the root errors declared here where possible and register a custom one
only when an extension needs a category of its own. Use Register(code,
description) during program startup to declare it.

Errors are wrapped with Wrap or Wrapf. The first wrap attaches a stacktrace,
further wraps only add context. Test the category of an error with the root
error Is method:

	if errors.ErrNotFound.Is(err) {
		...
	}

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
