// Package dto holds the wire payloads of the API and their mapping to and from models.
// Request types carry only client writable fields; keys and timestamps are assigned
// server side. Response types flatten one level of relation into display fields.
package dto

// mapAll converts every item with fn. The result is never nil so empty lists encode as [].
func mapAll[M any, R any](items []M, fn func(*M) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
