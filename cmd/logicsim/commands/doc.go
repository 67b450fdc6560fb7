// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package commands defines the logicsim command line.
//
// Commands
//
//   - parts     List the parts available to circuit files
//   - table     Print the truth table of a circuit
//   - eval      Drive the inputs of a circuit and print its outputs
//   - convert   Convert a circuit file between YAML and CBOR
//   - shell     Edit and simulate a circuit interactively
//
// Circuit files may use the built-in gates and the parts of package chiplib by
// name.
package commands
