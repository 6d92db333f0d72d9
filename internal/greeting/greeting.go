// Package greeting holds the name substitution rule shared by the HTML
// pages and the JSON API.
package greeting

import "fmt"

// DefaultName is substituted whenever a request supplies no name.
const DefaultName = "world"

// OrDefault returns name, or DefaultName when name is empty. An empty
// string is treated exactly like an absent value, so a blank form field
// never produces a blank greeting.
func OrDefault(name string) string {
	if name == "" {
		return DefaultName
	}
	return name
}

// Message formats the greeting line for the given name.
func Message(name string) string {
	return fmt.Sprintf("hello, %s!", OrDefault(name))
}
