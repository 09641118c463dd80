// Package structerrors provides structured error types for structify.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of conversion failures.
//
// # Error Categories
//
//   - TargetError: a conversion target does not denote a constructible
//     record type
//   - KeyError: a key-set validation failure from the strict engine, in one
//     of four mutually exclusive categories (unknown, missing, unresolvable,
//     invalid keys)
//   - ConfigError: a malformed nested conversion configuration
//
// # Usage with errors.Is
//
//	out := strictEngine.Apply(input, rules.To("User"), cfg)
//	if errors.Is(out.Err, structerrors.ErrUnknownKeys) {
//	    var keyErr *structerrors.KeyError
//	    if errors.As(out.Err, &keyErr) {
//	        reject(keyErr.Keys)
//	    }
//	}
package structerrors
