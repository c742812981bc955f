// Package validator is a composable validation engine for structured values.
//
// A validation pass walks a value and builds a Report tree mirroring its shape.
// Every node is labelled with an Accessor (Root, Field, TupleIndex, Index, Key,
// Variant) and carries a Validity: valid, invalid, or errored when the
// validator itself failed. Invalid and errored are independent: an errored
// node is never downgraded to invalid.
//
// # Validators and collectors
//
// A Validator[T, D] checks a target of type T with ambient data D and hands
// the child report it produced to a Collector. The collector is a policy that
// decides what is kept in the parent and whether the pass continues:
//
//   - InvalidsAndErrors keeps invalid and errored children.
//   - FirstInvalidAndPrecedingErrors stops at the first invalid child.
//   - Everything keeps every child, valid ones included.
//
// Stopping is signalled through the returned error. ErrExitGracefully ends the
// pass on purpose and is swallowed by Run; an *ExitError (ExitWithError) aborts
// it and reaches the caller. Combinators return these errors unchanged.
//
// # Structured values
//
// Types implement Validatable and list their fields with Fields:
//
//	func (s Signup) Validate(c validator.Collector, data Env, r *validator.Report) error {
//	    return validator.Fields(c, data, r,
//	        validator.FieldOf("email", s.Email, validator.Email[Env]()),
//	        validator.FieldOf("password", s.Password,
//	            validator.LengthChars(validator.GE[Env](8)),
//	            validator.NotCommonPassword[Env](),
//	        ),
//	        validator.FieldOf("confirm", s.Confirm, validator.EqualsField[Env]("password", s.Password)),
//	    )
//	}
//
//	report, err := validator.Run(validator.Everything{}, "signup", signup, env)
//
// Combinators compose validators: Bundle runs several against one target,
// EachIndexed and EachKeyed descend into collections, OptionSomeThen into
// pointers, Nested into other Validatable values and VariantOf into one arm
// of a sum type.
//
// # Inspecting reports
//
// Reports are queried by Path, parsed from expressions such as
// `signup.addresses[0]["home"].0[Some]`. ReportsAtPath, IsAnyInvalidAtPath and
// CountLeavesAtPath answer questions about a location; Report.Err flattens the
// failed leaves into a ReportError.
//
// # Messages
//
// Built-in validators tag their leaves ("string:ascii", "length:chars > compare:ge")
// and attach details. An Interpreter maps tags, optionally per type and field,
// to messages and rewrites a finished report with Apply.
//
// # Observability
//
// The engine does not log by itself. Traced wraps a collector with slog
// logging and Metered with Prometheus counters. Config selects both from the
// environment.
package validator
