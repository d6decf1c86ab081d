package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format  string
	Engine  string
	Elapsed time.Duration
	Scale   float64

	// Settings is any JSON-encodable description of the remaining render
	// configuration (size, margins, style).
	Settings any
}

// ArtifactKey returns the cache key for one rendered format of a tree
// identified by treeHash.
func ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", treeHash, opts.Format, opts.Engine, int64(opts.Elapsed), opts.Scale, opts.Settings)
}
