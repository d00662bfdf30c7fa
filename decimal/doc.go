// Package decimal provides truncation of binary floating point numbers to a
// fixed number of base 10 digits.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ scale
//
// Where number is the truncated number, value is an unscaled integer, and
// scale is the base 10 exponent. For example:
//
//  1.23 = 123 * 10^-2
//
// Truncation
//
// A float64 is an exact binary fraction. Truncate works on that exact value
// (not on its shortest printed form) and drops every digit past the requested
// precision, rounding toward zero:
//
//  | x                     | Schema                  | value        | scale |
//  |-----------------------|-------------------------|--------------|-------|
//  | 1.999999999998181...  | Digits: 11              | 19999999999  | -10   |
//  | -1.999999999998181... | Digits: 11              | -19999999999 | -10   |
//  | 0.1000000000000227... | Digits: 11              | 10000000000  | -11   |
//  | 1234.5678             | Digits: 2, Fixed: true  | 123456       | -2    |
//  | 0.000001              | Digits: 2, Fixed: true  | 0            | -2    |
//  |-----------------------|-------------------------|--------------|-------|
//
// Significant digit truncation always yields exactly Digits digits in value
// (trailing zeros included). Fixed truncation keeps Digits fractional digits
// and may yield zero.
package decimal
