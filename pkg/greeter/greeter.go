// Package greeter answers the frontend's greeting command.
package greeter

import "fmt"

// Greet returns the greeting shown by the frontend. Any name is accepted, including "".
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
