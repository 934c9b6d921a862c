// Package generator turns random tokens into the display identifiers shown
// for each nominal UUID version.
//
// Only v4 output is a real UUID. The v1, v2 and v3 formats are simulations
// built by prefixing or truncating a v4 token, and the descriptions returned
// by Describe say so:
//
//	v1  v1-<36-char token>
//	v2  v2-<first 8 chars>
//	v3  v3-<first 12 chars>
//	v4  <36-char token>
//
// Any tag outside v1..v3, including Unset, formats like v4.
package generator
