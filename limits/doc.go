// Package limits provides centralized size limits for the bootstrap
// request envelope. Keeping the budget in one place ensures the codec and
// its callers validate against the same numbers.
package limits
