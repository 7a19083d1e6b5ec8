package worker

import (
	"fmt"
	"strconv"
)

// DefaultRegistry returns a registry with the built-in task kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("hello", HelloHandler)
	r.Register("math", MathHandler)
	r.Register("echo", EchoHandler)
	return r
}

// HelloHandler greets back the task content.
func HelloHandler(content string) (string, error) {
	return fmt.Sprintf("Hello! You said: %s", content), nil
}

// MathHandler squares a non-negative integer payload.
func MathHandler(content string) (string, error) {
	n, err := strconv.Atoi(content)
	if err != nil || n < 0 {
		return "", fmt.Errorf("math task needs a non-negative number, got %q", content)
	}
	return fmt.Sprintf("Square of %d is %d", n, n*n), nil
}

// EchoHandler repeats the task content.
func EchoHandler(content string) (string, error) {
	return "Echo: " + content, nil
}
