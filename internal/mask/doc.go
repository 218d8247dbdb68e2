// Package mask conforms raw field text to a number mask.
//
// A Strategy turns the text a user just edited (plus the text that was
// displayed before the edit) into a Result. A Result is either a string to
// display verbatim, for intermediate states such as a lone minus sign or a
// trailing decimal symbol, or a parsed number together with the fraction
// digits typed so far.
//
// Two strategies exist:
//   - Default: free-form entry; the user types the decimal symbol.
//   - AutoDecimal: fixed fraction digits; typed digits shift in from the
//     right ("1", "12", "123" become 0.01, 0.12, 1.23).
//
// The strategy is chosen once per configuration with For.
package mask
