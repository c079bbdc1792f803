// Package conv converts leaf values into representations safe for structured-data encoding.
// Protected scalars (nil, booleans, numbers, time values and decimals) pass through unchanged,
// every other value is reduced to its text form.
package conv
