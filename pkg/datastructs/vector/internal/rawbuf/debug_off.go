//go:build !rawbufdebug

package rawbuf

// debug enables slot bounds assertions in At.
const debug = false
