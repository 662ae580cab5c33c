// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Caller-side observability for ring consumers. The ring itself never
// logs or counts anything inside its operations; adapters and
// application code record drops, drains, and overwrites here instead.
package control
