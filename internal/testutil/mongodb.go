//go:build integration

// Package testutil starts the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the image used for the log store in tests.
const MongoImage = "mongo:7.0"

// maxDBNameLen keeps generated names well below MongoDB's 64 byte limit.
const maxDBNameLen = 48

// MongoDBContainer is a running MongoDB container and its connection URI.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated MongoDB container.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	c, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}
	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: c, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

var (
	sharedMu  sync.Mutex
	shared    *MongoDBContainer
	sharedErr error
	started   bool
)

func sharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if !started {
		shared, sharedErr = SetupMongoDB(ctx)
		started = true
	}
	return shared, sharedErr
}

// SetupTestMainWithMongoDB runs m against one container shared by the whole
// package and terminates it afterwards. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	c, err := sharedMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration tests need docker: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := c.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "terminate shared mongodb container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the package's shared container.
// It panics when called outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		panic("testutil: shared mongodb container not started")
	}
	return shared.URI
}

// SanitizeDBName derives a unique database name from a test name.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)
	if len(name) > maxDBNameLen {
		name = name[:maxDBNameLen]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
