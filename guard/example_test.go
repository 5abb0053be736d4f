package guard_test

import (
	"fmt"
	"strings"

	"github.com/rise-and-shine/disposeguard/guard"
)

// Conn is a toy database connection.
type Conn struct {
	guard.Flag

	dsn     string
	queries []string
}

func (c *Conn) Query(q string) (int, error) {
	c.queries = append(c.queries, q)
	return len(c.queries), nil
}

// Close releases the connection and marks it disposed.
func (c *Conn) Close() error {
	if !c.Dispose() {
		return nil
	}
	c.queries = nil
	return nil
}

// Example demonstrates guarding a method of a connection that gets closed.
func Example() {
	conn := &Conn{dsn: "postgres://localhost/app"}
	query := guard.Method1("Query", (*Conn).Query)

	n, err := query(conn, "select 1")
	fmt.Println(n, err)

	_ = conn.Close()

	_, err = query(conn, "select 2")
	fmt.Println(guard.IsDisposedError(err))

	// Output:
	// 1 <nil>
	// true
}

// FileHandler is a toy file handler guarded through Create.
type FileHandler struct {
	guard.Flag

	Label string
	lines []string
}

func (h *FileHandler) Write(line string) (int, error) {
	h.lines = append(h.lines, line)
	return len(line), nil
}

func (h *FileHandler) Contents() string {
	return strings.Join(h.lines, "\n")
}

// ExampleCreate decorates the members of a type by name, the way a class
// decorator would.
func ExampleCreate() {
	h := &FileHandler{Label: "audit.log"}

	members := map[string]any{
		"Write":                (*FileHandler).Write,
		"Label":                h.Label,
		guard.DisposeCheckName: (*FileHandler).IsDisposed,
	}

	for name, member := range members {
		members[name] = guard.Create(name, member)
	}

	write := members["Write"].(func(*FileHandler, string) (int, error))
	isDisposed := members[guard.DisposeCheckName].(func(*FileHandler) bool)

	_, _ = write(h, "opened")
	fmt.Println(h.Contents())
	fmt.Println(members["Label"])

	h.Dispose()
	_, err := write(h, "late")
	fmt.Println(guard.IsDisposedError(err), isDisposed(h))

	// Output:
	// opened
	// audit.log
	// true true
}
