// Package real48 decodes the 6 byte Turbo Pascal / Delphi Real type into a
// float64.
//
// Layout
//
// The six bytes are given most significant first: the sign and the top of
// the mantissa lead, the biased exponent trails. The mantissa has an implied
// leading 1 (like IEEE 754) and the exponent bias is 129.
//
//  | b0              | b1 .. b4         | b5              |
//  |-----------------|------------------|-----------------|
//  | s | m38 .. m32  | m31 .. m0        | e7 .. e0        |
//  |---|-------------|------------------|-----------------|
//  | 1 | 7 bits      | 32 bits          | 8 bits          |
//  |-----------------|------------------|-----------------|
//
//  value = (-1)^s * 1.m * 2^(e - 129)
//
// An exponent of zero is the value zero regardless of the other bits.
//
// Conversion
//
// The fields are moved into an IEEE 754 binary64 pattern:
//
//  | 63 | 62 .. 52          | 51 .. 13 | 12 .. 0 |
//  |----|-------------------|----------|---------|
//  | s  | e + 894           | m        | 0       |
//  |----|-------------------|----------|---------|
//
// 894 is the difference of the biases (1023 - 129). The rebiased exponent
// ranges from 895 (e = 1) to 1149 (e = 255), always a normal binary64
// exponent, so conversion never overflows or underflows.
//
// Precision
//
// The 39 bit mantissa carries between 11 and 12 significant decimal digits.
// Decode truncates its result toward zero to 11 significant digits so that
// values read back match what the Pascal runtime would print. DecodeBits
// returns the untruncated reinterpretation; Schema selects other precisions.
package real48
