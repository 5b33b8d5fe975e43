// Package conntest provides a conformance test suite for validating
// Connector implementations against the textfile contracts.
//
// This package contains test functions that can be imported and executed by
// connector packages to verify they honor the Connector contract: Open
// yields a usable text stream, Close releases exactly the resources the
// connector acquired, and Name reporting is stable.
//
// Example usage:
//
//	func TestMyConnector(t *testing.T) {
//	    conntest.TestConnector(t, conntest.Target{
//	        NewConn: func(t testing.TB) textfile.Connector { ... },
//	        Content: "expected content",
//	        Named:   true,
//	    })
//	}
package conntest

import (
	"testing"

	"github.com/go-textfile/textfile"
)

// Target describes one connector under test.
type Target struct {
	// NewConn returns a fresh connector for a resource whose text content
	// is Content. Each invocation must yield an independent connector.
	NewConn func(t testing.TB) textfile.Connector

	// Content is the text the referenced resource holds.
	Content string

	// Named reports whether the connector is expected to determine a name
	// for the resource.
	Named bool
}

// TestConnector runs all applicable contract tests against the target.
func TestConnector(t *testing.T, target Target) {
	t.Run("OpenRead", func(t *testing.T) {
		testOpenRead(t, target)
	})
	t.Run("Name", func(t *testing.T) {
		testName(t, target)
	})
	t.Run("CloseIdempotent", func(t *testing.T) {
		testCloseIdempotent(t, target)
	})
	t.Run("CloseUnopened", func(t *testing.T) {
		testCloseUnopened(t, target)
	})
}

// testOpenRead verifies Open in reading mode yields a text stream holding
// the expected content.
func testOpenRead(t *testing.T, target Target) {
	conn := target.NewConn(t)
	stream, err := conn.Open("rt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ts, ok := stream.(textfile.TextStream)
	if !ok {
		t.Fatalf("Open returned %T, want a TextStream", stream)
	}
	got, err := ts.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got != target.Content {
		t.Errorf("ReadAll = %q, want %q", got, target.Content)
	}
	if cerr := conn.Close(); cerr != nil {
		t.Fatalf("Close failed: %v", cerr)
	}
}

// testName verifies name determinability matches the target description.
func testName(t *testing.T, target Target) {
	conn := target.NewConn(t)
	defer func() { _ = conn.Close() }()

	name, ok := conn.Name()
	if ok != target.Named {
		t.Fatalf("Name ok = %v, want %v", ok, target.Named)
	}
	if ok && name == "" {
		t.Errorf("Name reported determinable but returned an empty name")
	}
}

// testCloseIdempotent verifies a second Close after an Open/Close cycle is a
// no-op.
func testCloseIdempotent(t *testing.T, target Target) {
	conn := target.NewConn(t)
	if _, err := conn.Open("rt"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

// testCloseUnopened verifies closing a connector that never opened anything
// is a no-op.
func testCloseUnopened(t *testing.T, target Target) {
	conn := target.NewConn(t)
	if err := conn.Close(); err != nil {
		t.Errorf("Close of unopened connector failed: %v", err)
	}
}
